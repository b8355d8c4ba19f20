// Package matching classifies job keywords against a parsed resume and
// scores coverage.
package matching

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var wsRE = regexp.MustCompile(`\s+`)

func canon(s string) string {
	return strings.ToLower(strings.TrimSpace(wsRE.ReplaceAllString(s, " ")))
}

// canonList canonicalizes and deduplicates, preserving first-seen order.
func canonList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		t := canon(item)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// ClassifyAndScore buckets each job keyword by where it was found in the
// resume and computes the coverage percentage. Skills membership is exact;
// the resume text check is substring containment over canonicalized text.
// Pure and deterministic; safe for concurrent use.
func ClassifyAndScore(jobKeywords, resumeSkills []string, resumeText string) types.MatchResult {
	kws := canonList(jobKeywords)
	skills := make(map[string]struct{})
	for _, s := range canonList(resumeSkills) {
		skills[s] = struct{}{}
	}
	text := canon(resumeText)

	inSkills := []string{}
	inTextNotSkills := []string{}
	missing := []string{}

	for _, k := range kws {
		if _, ok := skills[k]; ok {
			inSkills = append(inSkills, k)
		} else if strings.Contains(text, k) {
			inTextNotSkills = append(inTextNotSkills, k)
		} else {
			missing = append(missing, k)
		}
	}

	matched := len(inSkills) + len(inTextNotSkills)
	total := len(kws)
	if total == 0 {
		total = 1 // keeps the empty-keyword case at 0 instead of a division fault
	}
	coverage := round2(100 * float64(matched) / float64(total))

	return types.MatchResult{
		InSkills:           inSkills,
		InTextNotSkills:    inTextNotSkills,
		Missing:            missing,
		SuggestAddToSkills: inTextNotSkills,
		Scores: types.Scores{
			Coverage: coverage,
			Overall:  coverage, // no separate weighting yet
		},
		Meta: types.MatchMeta{
			NumKeywords: len(kws),
			ResumeChars: len(text),
		},
	}
}
