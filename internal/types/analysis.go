// Package types provides type definitions for structured data used throughout the resume analyzer.
package types

import (
	"github.com/go-playground/validator/v10"
)

// DefaultMaxKeywords is the keyword-list cap used when the caller does not supply one.
const DefaultMaxKeywords = 10

// ContactInfo holds the contact fields recovered from a resume. Each field is
// independently optional; for every field the first match in the text wins.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ResumeMeta describes the parsed resume document.
type ResumeMeta struct {
	Kind     string `json:"kind,omitempty"`
	Filename string `json:"filename,omitempty"`
	Pages    int    `json:"pages,omitempty"`
	Chars    int    `json:"chars"`
	Words    int    `json:"words"`
}

// ResumeProfile is the structured view of a parsed resume: the normalized
// text, the contact fields, and the skills declared in a Skills section.
type ResumeProfile struct {
	Text    string      `json:"text"`
	Contact ContactInfo `json:"contact"`
	Skills  []string    `json:"skills"`
	Meta    ResumeMeta  `json:"meta"`
}

// Scores holds percentage scores in [0, 100].
type Scores struct {
	Coverage float64 `json:"coverage"`
	Overall  float64 `json:"overall"`
}

// MatchMeta carries counts describing a match run.
type MatchMeta struct {
	NumKeywords int `json:"num_keywords"`
	ResumeChars int `json:"resume_chars"`
}

// MatchResult buckets job keywords by where they were found in the resume.
// The three buckets partition the deduplicated canonical keyword list.
type MatchResult struct {
	InSkills           []string  `json:"in_skills"`
	InTextNotSkills    []string  `json:"in_text_not_skills"`
	Missing            []string  `json:"missing"`
	SuggestAddToSkills []string  `json:"suggest_add_to_skills"`
	Scores             Scores    `json:"scores"`
	Meta               MatchMeta `json:"meta"`
}

// AnalyzeOptions are the caller-tunable knobs for an analysis run.
type AnalyzeOptions struct {
	MaxKeywords    int      `json:"max_keywords" validate:"required,min=1,max=50"`
	CustomKeywords []string `json:"custom_keywords,omitempty" validate:"omitempty,max=25,dive,min=1"`
}

// DefaultAnalyzeOptions returns the options used when the caller supplies none.
func DefaultAnalyzeOptions() AnalyzeOptions {
	return AnalyzeOptions{MaxKeywords: DefaultMaxKeywords}
}

// Validate validates the AnalyzeOptions using the validator.
func (o *AnalyzeOptions) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

// AnalyzeResponse is the combined record returned by the analyze endpoint:
// contact fields, the extracted keyword list, and the match buckets/scores.
type AnalyzeResponse struct {
	AnalysisID string      `json:"analysis_id"`
	Contact    ContactInfo `json:"contact"`
	Keywords   []string    `json:"keywords"`
	MatchResult
}
