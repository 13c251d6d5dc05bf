package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalDifficulty(t *testing.T) {
	d, ok := CanonicalDifficulty("  Intermediate ")
	assert.True(t, ok)
	assert.Equal(t, Intermediate, d)

	d, ok = CanonicalDifficulty("ninja")
	assert.False(t, ok)
	assert.Equal(t, Beginner, d)

	d, ok = CanonicalDifficulty("")
	assert.False(t, ok)
	assert.Equal(t, Beginner, d)
}

func TestDifficultyLabel(t *testing.T) {
	assert.Equal(t, "Advanced", Advanced.Label())
	assert.Equal(t, "Beginner", Difficulty("unknown").Label())
}

func TestCanonicalQuizType(t *testing.T) {
	assert.Equal(t, QuizMultipleChoice, CanonicalQuizType(" Multiple_Choice "))
	assert.Equal(t, QuizSingleChoice, CanonicalQuizType(""))
	assert.Equal(t, QuizSingleChoice, CanonicalQuizType("essay"))
}

func TestJobStatusIsTerminal(t *testing.T) {
	assert.False(t, JobStatusPending.IsTerminal())
	assert.False(t, JobStatusProcessing.IsTerminal())
	assert.True(t, JobStatusCompleted.IsTerminal())
	assert.True(t, JobStatusFailed.IsTerminal())
}
