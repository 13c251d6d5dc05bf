package constants

import "strings"

// QuizType enumerates the question widgets the lesson player understands.
// Generation only ever produces the first two; the others exist for
// manually-authored lessons and must survive import validation.
type QuizType string

const (
	QuizSingleChoice   QuizType = "single_choice"
	QuizMultipleChoice QuizType = "multiple_choice"
	QuizDragDrop       QuizType = "drag_drop"
	QuizImageChoice    QuizType = "image_choice"
)

var allQuizTypes = []QuizType{QuizSingleChoice, QuizMultipleChoice, QuizDragDrop, QuizImageChoice}

// QuizTypes returns the allowed quiz type values as strings.
func QuizTypes() []string {
	result := make([]string, len(allQuizTypes))
	for i, q := range allQuizTypes {
		result[i] = string(q)
	}
	return result
}

// CanonicalQuizType maps free-form input to a known quiz type.
// Unknown or missing values resolve to single_choice.
func CanonicalQuizType(input string) QuizType {
	normalized := QuizType(strings.ToLower(strings.TrimSpace(input)))
	for _, q := range allQuizTypes {
		if q == normalized {
			return q
		}
	}
	return QuizSingleChoice
}

// Answer slot bounds for generated quizzes.
const (
	MinQuizAnswers = 3
	MaxQuizAnswers = 5
)

// DefaultLessonDurationMinutes is applied when the model omits a duration.
const DefaultLessonDurationMinutes = 5
