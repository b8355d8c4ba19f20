// Package parsing turns extracted resume text into structured contact and
// skills data.
package parsing

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// StructureResume normalizes already-extracted resume text and recovers the
// contact fields and skills list. It fails with EmptyTextError when the
// normalized text is blank.
func StructureResume(raw string) (*types.ResumeProfile, error) {
	text := NormalizeText(raw)
	if text == "" {
		return nil, &EmptyTextError{}
	}

	skills := ExtractSkills(text)
	if skills == nil {
		skills = []string{}
	}

	return &types.ResumeProfile{
		Text:    text,
		Contact: ExtractContact(text),
		Skills:  skills,
		Meta: types.ResumeMeta{
			Chars: len(text),
			Words: len(strings.Fields(text)),
		},
	}, nil
}

// ParseResume decodes a resume document and structures its text.
func ParseResume(data []byte, filename, contentType string) (*types.ResumeProfile, error) {
	doc, err := extract.Text(data, contentType)
	if err != nil {
		return nil, err
	}

	profile, err := StructureResume(doc.Text)
	if err != nil {
		return nil, err
	}

	profile.Meta.Kind = doc.Kind
	profile.Meta.Filename = filename
	profile.Meta.Pages = doc.Pages
	return profile, nil
}
