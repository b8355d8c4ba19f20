package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyAndScore_Example(t *testing.T) {
	result := ClassifyAndScore(
		[]string{"python", "kubernetes", "graphql"},
		[]string{"python"},
		"Built a graphql gateway for internal services.",
	)

	assert.Equal(t, []string{"python"}, result.InSkills)
	assert.Equal(t, []string{"graphql"}, result.InTextNotSkills)
	assert.Equal(t, []string{"kubernetes"}, result.Missing)
	assert.Equal(t, []string{"graphql"}, result.SuggestAddToSkills)
	assert.InDelta(t, 66.67, result.Scores.Coverage, 0.001)
	assert.Equal(t, result.Scores.Coverage, result.Scores.Overall)
	assert.Equal(t, 3, result.Meta.NumKeywords)
}

func TestClassifyAndScore_BucketsPartitionKeywords(t *testing.T) {
	keywords := []string{"go", "Go", "python", "rust", "kafka", "  kafka "}
	result := ClassifyAndScore(keywords, []string{"go"}, "shipped python services")

	all := make([]string, 0)
	all = append(all, result.InSkills...)
	all = append(all, result.InTextNotSkills...)
	all = append(all, result.Missing...)

	// Deduplicated canonical keyword list, exactly once each.
	assert.ElementsMatch(t, []string{"go", "python", "rust", "kafka"}, all)
	assert.Equal(t, 4, result.Meta.NumKeywords)
}

func TestClassifyAndScore_FullCoverage(t *testing.T) {
	result := ClassifyAndScore([]string{"go", "python"}, []string{"go", "python"}, "")
	assert.Equal(t, 100.0, result.Scores.Coverage)
}

func TestClassifyAndScore_ZeroCoverage(t *testing.T) {
	result := ClassifyAndScore([]string{"cobol", "fortran"}, []string{"go"}, "modern stack only")
	assert.Equal(t, 0.0, result.Scores.Coverage)
	assert.Len(t, result.Missing, 2)
}

func TestClassifyAndScore_EmptyKeywords(t *testing.T) {
	result := ClassifyAndScore(nil, []string{"go"}, "some resume text")

	require.NotNil(t, result.Missing)
	assert.Empty(t, result.InSkills)
	assert.Empty(t, result.InTextNotSkills)
	assert.Empty(t, result.Missing)
	assert.Equal(t, 0.0, result.Scores.Coverage)
	assert.Equal(t, 0, result.Meta.NumKeywords)
}

func TestClassifyAndScore_CanonicalizesBeforeComparing(t *testing.T) {
	result := ClassifyAndScore(
		[]string{"  Machine   Learning "},
		[]string{"MACHINE LEARNING"},
		"",
	)
	assert.Equal(t, []string{"machine learning"}, result.InSkills)
}

func TestClassifyAndScore_TextMatchIsSubstringContainment(t *testing.T) {
	result := ClassifyAndScore([]string{"sql"}, nil, "experience with PostgreSQL clusters")
	// "sql" occurs inside "postgresql"; containment is intentional.
	assert.Equal(t, []string{"sql"}, result.InTextNotSkills)
}

func TestClassifyAndScore_ResumeCharsCountsCanonicalText(t *testing.T) {
	result := ClassifyAndScore(nil, nil, "  a   b  ")
	assert.Equal(t, len("a b"), result.Meta.ResumeChars)
}

func TestClassifyAndScore_CoverageWithinBounds(t *testing.T) {
	cases := [][]string{
		{"go"},
		{"go", "zig", "nim"},
		{"a", "b", "c", "d", "e", "f", "g"},
	}
	for _, kws := range cases {
		result := ClassifyAndScore(kws, []string{"go"}, "zig zag")
		assert.GreaterOrEqual(t, result.Scores.Coverage, 0.0)
		assert.LessOrEqual(t, result.Scores.Coverage, 100.0)
	}
}
