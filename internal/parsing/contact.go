package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// nameScanLines bounds how far into the resume the name guess looks.
const nameScanLines = 20

var (
	emailRE = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	// phoneRE accepts an optional country code and flexible separators
	// around a 3-3-4 grouping.
	phoneRE    = regexp.MustCompile(`(\+?\d{1,3}[\s\-.]?)?\(?\d{3}\)?[\s\-.]?\d{3}[\s\-.]?\d{4}`)
	linkedinRE = regexp.MustCompile(`(?i)linkedin\.com/[^\s|,;]+`)
	githubRE   = regexp.MustCompile(`(?i)github\.com/[^\s|,;]+`)
)

// nameLabelPrefixes disqualify a line from being a name guess.
var nameLabelPrefixes = []string{"email", "phone", "tel", "portfolio"}

// ExtractContact recovers contact fields from normalized resume text. Every
// field is optional; for each field the first match wins.
func ExtractContact(text string) types.ContactInfo {
	lines := strings.Split(text, "\n")

	contact := types.ContactInfo{
		Name:  guessName(lines),
		Email: emailRE.FindString(text),
		Phone: phoneRE.FindString(text),
	}

	for _, line := range lines {
		if contact.LinkedIn == "" {
			if m := linkedinRE.FindString(line); m != "" {
				contact.LinkedIn = cleanURL(m)
			}
		}
		if contact.GitHub == "" {
			if m := githubRE.FindString(line); m != "" {
				contact.GitHub = cleanURL(m)
			}
		}
		if contact.LinkedIn != "" && contact.GitHub != "" {
			break
		}
	}

	return contact
}

// guessName returns the first line near the top of the resume that reads
// like a person's name: non-empty, not contact-ish, and one to six words.
func guessName(lines []string) string {
	top := lines
	if len(top) > nameScanLines {
		top = top[:nameScanLines]
	}

	for _, line := range top {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		low := strings.ToLower(line)
		if strings.Contains(line, "@") || strings.Contains(low, "linkedin") || strings.Contains(low, "github") {
			continue
		}
		if hasLabelPrefix(low) {
			continue
		}
		if n := len(strings.Fields(line)); n >= 1 && n <= 6 {
			return line
		}
	}
	return ""
}

func hasLabelPrefix(line string) bool {
	for _, prefix := range nameLabelPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// cleanURL trims trailing punctuation and prefixes https:// when the match
// carries no scheme.
func cleanURL(u string) string {
	u = strings.Trim(strings.TrimSpace(u), `).,;:!?"'`)
	if !strings.HasPrefix(u, "http") {
		u = "https://" + u
	}
	return u
}
