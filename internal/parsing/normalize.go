package parsing

import (
	"regexp"
	"strings"
)

// ligatures maps glyphs PDF extractors commonly emit to their ASCII expansions.
var ligatures = map[string]string{
	"ﬁ": "fi",
	"ﬂ": "fl",
}

var (
	// controlRE matches ASCII control characters except tab, newline, and
	// carriage return, which are handled separately.
	controlRE = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`)
	// hspaceRE matches runs of horizontal whitespace within a line.
	hspaceRE = regexp.MustCompile(`[ \t\f\v]+`)
)

// NormalizeText cleans text produced by a document extractor: ligatures are
// expanded, line endings unified, control characters stripped, and runs of
// horizontal whitespace collapsed per line. Line breaks are preserved and
// every line is trimmed.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	for glyph, expansion := range ligatures {
		text = strings.ReplaceAll(text, glyph, expansion)
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = controlRE.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(hspaceRE.ReplaceAllString(line, " "))
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
