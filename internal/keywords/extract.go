// Package keywords extracts ranked technical keywords from job-description
// text.
package keywords

import (
	"regexp"
	"sort"
	"strings"
)

// tokenRE keeps compound tech tokens such as c++, node.js, and ci/cd intact.
var tokenRE = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+#.\-/]*`)

var wsRE = regexp.MustCompile(`\s+`)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(wsRE.ReplaceAllString(s, " ")))
}

// cleanToken strips leading/trailing punctuation while keeping the internal
// symbols that make tokens like node.js and c++ meaningful.
func cleanToken(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	t = strings.TrimRight(t, ".,;:!?)”’\"\\]}>")
	t = strings.TrimLeft(t, "([<{“‘\"")
	return t
}

func applyAlias(t string) string {
	if canonical, ok := aliases[t]; ok {
		return canonical
	}
	return t
}

// isTechy reports whether a cleaned, aliased token is worth keeping:
// allow-listed, a known slash form, symbol-bearing, or a sql/api/db suffix.
func isTechy(tok string) bool {
	if _, ok := techTerms[tok]; ok {
		return true
	}
	if _, ok := slashExceptions[tok]; ok {
		return true
	}
	if len(tok) > 1 && strings.ContainsAny(tok, ".+#") {
		return true
	}
	return strings.HasSuffix(tok, "sql") || strings.HasSuffix(tok, "api") || strings.HasSuffix(tok, "db")
}

// Extract returns an ordered list of canonical technical keywords from
// job-description text, at most maxK long. Tokens are ranked by frequency
// descending with lexical order as the tie-break. Custom keywords are merged
// in unconditionally, bypassing the allow-list; blank input yields an empty
// list.
func Extract(jobText string, maxK int, customKeywords []string) []string {
	txt := normalize(jobText)
	if txt == "" {
		return []string{}
	}

	freqs := make(map[string]int)

	for _, raw := range tokenRE.FindAllString(txt, -1) {
		tok := applyAlias(cleanToken(raw))
		if len(tok) <= 1 || !isTechy(tok) {
			continue
		}
		freqs[tok]++
	}

	// Phrase hits count once, so a present phrase survives ranking even
	// when its individual words do not.
	for _, p := range phrases {
		if strings.Contains(txt, p) {
			k := applyAlias(p)
			if freqs[k] < 1 {
				freqs[k] = 1
			}
		}
	}

	for _, ck := range customKeywords {
		k := applyAlias(cleanToken(normalize(ck)))
		if k == "" {
			continue
		}
		if freqs[k] < 1 {
			freqs[k] = 1
		}
	}

	ranked := make([]string, 0, len(freqs))
	for tok := range freqs {
		ranked = append(ranked, tok)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if freqs[ranked[i]] != freqs[ranked[j]] {
			return freqs[ranked[i]] > freqs[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	if maxK < 0 {
		maxK = 0
	}
	if len(ranked) > maxK {
		ranked = ranked[:maxK]
	}
	return ranked
}
