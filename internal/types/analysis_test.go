package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    AnalyzeOptions
		wantErr bool
	}{
		{"defaults", DefaultAnalyzeOptions(), false},
		{"custom keywords", AnalyzeOptions{MaxKeywords: 5, CustomKeywords: []string{"grpc"}}, false},
		{"zero max", AnalyzeOptions{MaxKeywords: 0}, true},
		{"negative max", AnalyzeOptions{MaxKeywords: -1}, true},
		{"max too large", AnalyzeOptions{MaxKeywords: 51}, true},
		{"blank custom keyword", AnalyzeOptions{MaxKeywords: 10, CustomKeywords: []string{""}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalyzeResponse_JSONShape(t *testing.T) {
	resp := AnalyzeResponse{
		AnalysisID: "id-1",
		Contact:    ContactInfo{Name: "Jane Doe"},
		Keywords:   []string{"python"},
		MatchResult: MatchResult{
			InSkills:           []string{"python"},
			InTextNotSkills:    []string{},
			Missing:            []string{},
			SuggestAddToSkills: []string{},
			Scores:             Scores{Coverage: 100, Overall: 100},
			Meta:               MatchMeta{NumKeywords: 1, ResumeChars: 40},
		},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	// The match result is flattened into the top-level record.
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Contains(t, m, "in_skills")
	assert.Contains(t, m, "suggest_add_to_skills")
	assert.Contains(t, m, "scores")
	assert.Contains(t, m, "meta")
	assert.Contains(t, m, "contact")
	assert.Contains(t, m, "keywords")
	assert.Contains(t, m, "analysis_id")
}

func TestContactInfo_OmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(ContactInfo{Name: "Jane Doe"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Jane Doe"}`, string(data))
}
