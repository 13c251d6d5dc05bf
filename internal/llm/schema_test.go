package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCourseGraphJSON(t *testing.T) {
	valid := []byte(`{
		"course": {"title": "Coastal Weather"},
		"lessons": [{"title": "Reading clouds", "content": "<p>x</p>"}]
	}`)
	require.NoError(t, ValidateCourseGraphJSON(valid))

	missingLessons := []byte(`{"course": {"title": "Coastal Weather"}}`)
	err := ValidateCourseGraphJSON(missingLessons)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match schema")

	badQuizType := []byte(`{
		"course": {"title": "C"},
		"lessons": [{"title": "L", "content": "x", "quiz_type": "essay"}]
	}`)
	assert.Error(t, ValidateCourseGraphJSON(badQuizType))

	notJSON := []byte("nope")
	err = ValidateCourseGraphJSON(notJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode for validation")
}
