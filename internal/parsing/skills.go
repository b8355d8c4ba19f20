package parsing

import (
	"regexp"
	"strings"
)

// Bounds for the skills-section scan.
const (
	// headerScoreThreshold is the minimum header-ness score for a line to
	// qualify as the Skills section header.
	headerScoreThreshold = 3
	// maxBlockLines caps how many lines after the header are collected,
	// keeping sections bounded even in odd layouts.
	maxBlockLines = 40

	maxHeaderLen   = 40
	maxHeaderWords = 6
)

// bulletMarkers disqualify a line from being a section header.
var bulletMarkers = []string{"•", "-", "–", "—", "*", "∙", "·"}

var (
	skillsWordRE = regexp.MustCompile(`(?i)\bskills?\b`)
	// categoryLineRE matches "Languages: Python, ..." style lines, which
	// live inside a Skills section rather than starting a new one.
	categoryLineRE = regexp.MustCompile(`^\s*\w[\w &/+-]*\s*:\s*`)
	// titleCaseRE matches headers like "Technical Skills".
	titleCaseRE  = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*$`)
	headerWordRE = regexp.MustCompile(`^[A-Z][A-Za-z ]{2,}$`)
	wordRE       = regexp.MustCompile(`\w+`)
)

// ExtractSkills pulls the skill tokens out of a detected Skills section:
// the block is split on commas and newlines, "Category:" prefixes dropped,
// tokens lowercased and deduplicated preserving order. No detectable
// section yields an empty list, not an error.
func ExtractSkills(text string) []string {
	block, ok := findSkillsBlock(text)
	if !ok {
		return nil
	}

	var tokens []string
	for _, part := range strings.Split(block, ",") {
		for _, sub := range strings.Split(part, "\n") {
			token := strings.TrimSpace(sub)
			if token == "" {
				continue
			}
			// Drop category labels like "Languages: Python".
			if idx := strings.Index(token, ":"); idx >= 0 {
				token = strings.TrimSpace(token[idx+1:])
			}
			token = strings.ToLower(token)
			if len(token) > 1 {
				tokens = append(tokens, token)
			}
		}
	}

	return dedupe(tokens)
}

// findSkillsBlock locates the Skills header and collects the lines that
// follow until a double blank, another header-like line, or the hard cap.
func findSkillsBlock(text string) (string, bool) {
	lines := strings.Split(text, "\n")

	headerIdx := -1
	for i := range lines {
		// The earliest qualifying header wins, not the best-scoring one.
		if scoreSkillsHeader(lines, i) >= headerScoreThreshold {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return "", false
	}

	var block []string
	blanks := 0
	end := headerIdx + 1 + maxBlockLines
	if end > len(lines) {
		end = len(lines)
	}

	for j := headerIdx + 1; j < end; j++ {
		line := lines[j]
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks >= 2 {
				break
			}
			block = append(block, "") // keep a single blank as separator
			continue
		}
		blanks = 0

		// Another section begins; category lines stay inside the block.
		if looksLikeHeader(line) && !categoryLineRE.MatchString(line) {
			break
		}
		block = append(block, line)
	}

	joined := strings.TrimSpace(strings.Join(block, "\n"))
	return joined, joined != ""
}

// scoreSkillsHeader rates lines[i] for header-ness. Lines that do not
// mention "skill" as a whole word are never candidates.
func scoreSkillsHeader(lines []string, i int) int {
	s := strings.TrimSpace(lines[i])
	if s == "" || !skillsWordRE.MatchString(s) {
		return -1
	}

	score := 0
	if len(s) <= maxHeaderLen {
		score++
	}
	if len(wordRE.FindAllString(s, -1)) <= maxHeaderWords {
		score++
	}
	if isAllUpper(s) || titleCaseRE.MatchString(s) {
		score += 2
	}
	if i > 0 && strings.TrimSpace(lines[i-1]) == "" {
		score++
	}
	if i+1 < len(lines) && strings.TrimSpace(lines[i+1]) == "" {
		score++
	}

	if startsWithBullet(s) {
		score -= 3
	}
	if categoryLineRE.MatchString(s) {
		score -= 2
	}
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		score -= 2
	}
	if strings.Count(s, ",") >= 2 || len(s) > 60 {
		score--
	}

	return score
}

// looksLikeHeader reports whether a line reads like a new section title:
// short, and either ALL CAPS or title-shaped without punctuation.
func looksLikeHeader(line string) bool {
	s := strings.TrimSpace(line)
	if len(s) > 60 {
		return false
	}
	return isAllUpper(s) || headerWordRE.MatchString(s)
}

// isAllUpper reports whether s contains letters and none of them lowercase.
func isAllUpper(s string) bool {
	return s != strings.ToLower(s) && s == strings.ToUpper(s)
}

func startsWithBullet(s string) bool {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(s, marker) {
			return true
		}
	}
	return false
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
