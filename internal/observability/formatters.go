// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeProfile outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintResumeProfile(profile *types.ResumeProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(profile.Contact.Name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(profile.Contact.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(profile.Contact.Phone)))
	sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", orDash(profile.Contact.LinkedIn)))
	sb.WriteString(fmt.Sprintf("GitHub:   %s\n", orDash(profile.Contact.GitHub)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills (%d): %s", len(profile.Skills), previewList(profile.Skills)))

	p.printBox("PARSED RESUME", sb.String())
}

// PrintKeywords outputs the ranked keyword list extracted from the job text.
func (p *Printer) PrintKeywords(kws []string) {
	content := previewList(kws)
	if len(kws) == 0 {
		content = "(none found)"
	}
	p.printBox(fmt.Sprintf("JOB KEYWORDS (%d)", len(kws)), content)
}

// PrintMatchResult outputs the match buckets and the coverage score.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Coverage: %.2f%%\n", result.Scores.Coverage))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("In skills (%d):      %s\n", len(result.InSkills), previewList(result.InSkills)))
	sb.WriteString(fmt.Sprintf("In text only (%d):   %s\n", len(result.InTextNotSkills), previewList(result.InTextNotSkills)))
	sb.WriteString(fmt.Sprintf("Missing (%d):        %s", len(result.Missing), previewList(result.Missing)))

	if len(result.SuggestAddToSkills) > 0 {
		sb.WriteString("\n\nConsider adding to your Skills section:\n")
		sb.WriteString("  " + strings.Join(result.SuggestAddToSkills, ", "))
	}

	p.printBox("MATCH RESULT", sb.String())
}

// previewList joins up to maxItemsToShow items, noting how many were elided.
func previewList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	if len(items) <= maxItemsToShow {
		return strings.Join(items, ", ")
	}
	shown := strings.Join(items[:maxItemsToShow], ", ")
	return fmt.Sprintf("%s … (+%d more)", shown, len(items)-maxItemsToShow)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
