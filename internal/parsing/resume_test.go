package parsing

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (415) 555-0100
github.com/janedoe

SKILLS
Python, SQL, Docker

EXPERIENCE
Acme Corp — built the billing pipeline in Python and Kafka.`

func TestStructureResume(t *testing.T) {
	profile, err := StructureResume(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", profile.Contact.Name)
	assert.Equal(t, "jane.doe@example.com", profile.Contact.Email)
	assert.Equal(t, "https://github.com/janedoe", profile.Contact.GitHub)
	assert.Equal(t, []string{"python", "sql", "docker"}, profile.Skills)
	assert.Equal(t, len(profile.Text), profile.Meta.Chars)
	assert.Positive(t, profile.Meta.Words)
}

func TestStructureResume_EmptyText(t *testing.T) {
	_, err := StructureResume("  \n \x00 \n  ")
	require.Error(t, err)

	var emptyErr *EmptyTextError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestStructureResume_NoSkillsSectionIsNotAnError(t *testing.T) {
	profile, err := StructureResume("Jane Doe\nI build things.")
	require.NoError(t, err)
	assert.Empty(t, profile.Skills)
	assert.NotNil(t, profile.Skills)
}

func TestParseResume_PlainText(t *testing.T) {
	profile, err := ParseResume([]byte(sampleResume), "resume.txt", extract.TypePlain)
	require.NoError(t, err)

	assert.Equal(t, "text", profile.Meta.Kind)
	assert.Equal(t, "resume.txt", profile.Meta.Filename)
	assert.Equal(t, 0, profile.Meta.Pages)
	assert.Equal(t, []string{"python", "sql", "docker"}, profile.Skills)
}

func TestParseResume_UnsupportedType(t *testing.T) {
	_, err := ParseResume([]byte("x"), "resume.png", "image/png")
	require.Error(t, err)

	var typeErr *extract.UnsupportedTypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestParseResume_EmptyDocument(t *testing.T) {
	_, err := ParseResume([]byte("   "), "blank.txt", extract.TypePlain)
	require.Error(t, err)

	var emptyErr *EmptyTextError
	assert.ErrorAs(t, err, &emptyErr)
}
