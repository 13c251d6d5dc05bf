package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amara-obi/course-gen/constants"
)

func TestParseCourseGraph_DirectJSON(t *testing.T) {
	raw := `{
		"course": {"title": "Intro to Go", "difficulty": "intermediate", "duration_minutes": 120},
		"lessons": [
			{"title": "Syntax", "content": "<p>Basics</p>", "duration_minutes": 10, "sort_order": 1},
			{"title": "Types", "content": "<p>Types</p>", "duration_minutes": 15, "sort_order": 2}
		]
	}`

	graph, err := ParseCourseGraph(raw)
	require.NoError(t, err)
	require.NotNil(t, graph.Course)
	assert.Equal(t, "Intro to Go", graph.Course.Title)
	assert.Equal(t, "intermediate", graph.Course.Difficulty)
	require.Len(t, graph.Lessons, 2)
	assert.Equal(t, "Syntax", graph.Lessons[0].Title)
	assert.Equal(t, 2, graph.Lessons[1].SortOrder)
}

func TestParseCourseGraph_WrappedInProse(t *testing.T) {
	raw := "Sure! Here is your course:\n```json\n" +
		`{"course": {"title": "Knots"}, "lessons": [{"title": "Bowline", "content": "x"}]}` +
		"\n```\nLet me know if you need changes."

	graph, err := ParseCourseGraph(raw)
	require.NoError(t, err)
	assert.Equal(t, "Knots", graph.Course.Title)
	require.Len(t, graph.Lessons, 1)
}

func TestParseCourseGraph_BracesInsideStrings(t *testing.T) {
	// the scanner must not terminate on a "}" inside a string literal
	raw := `noise {"course": {"title": "JSON {for} beginners", "description": "covers { and }"}, "lessons": []} trailing`

	graph, err := ParseCourseGraph(raw)
	require.NoError(t, err)
	assert.Equal(t, "JSON {for} beginners", graph.Course.Title)
}

func TestParseCourseGraph_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"no json at all": "I could not generate a course, sorry.",
		"missing course": `{"lessons": "oops"}`,
		"unbalanced":     `{"course": {"title": "x"`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCourseGraph(raw)
			require.Error(t, err)
			var perr *ParseError
			assert.ErrorAs(t, err, &perr)
		})
	}
}

func TestParseCourseGraph_NumericStringCoercion(t *testing.T) {
	raw := `{
		"course": {"title": "C", "duration_minutes": "90"},
		"lessons": [
			{"title": "L", "content": "x", "duration_minutes": "20", "sort_order": "3", "correct_answer": "2",
			 "question": "pick", "answers": [1, 2, 3]}
		]
	}`

	graph, err := ParseCourseGraph(raw)
	require.NoError(t, err)
	assert.Equal(t, 90, graph.Course.DurationMinutes)
	l := graph.Lessons[0]
	assert.Equal(t, 20, l.DurationMinutes)
	assert.Equal(t, 3, l.SortOrder)
	assert.Equal(t, 2, l.CorrectAnswer)
	assert.Equal(t, []string{"1", "2", "3"}, l.Answers)
}

func TestParseCourseGraph_NormalizeDefaults(t *testing.T) {
	raw := `{
		"course": {"title": "Defaults", "difficulty": "expert", "duration_minutes": -5},
		"lessons": [
			{"content": "a"},
			{"title": "  ", "content": "b", "question": "q?", "quiz_type": "weird",
			 "answers": ["yes", "no", "", ""]}
		]
	}`

	graph, err := ParseCourseGraph(raw)
	require.NoError(t, err)

	// unknown difficulty falls back to beginner, negative duration clamps
	assert.Equal(t, string(constants.Beginner), graph.Course.Difficulty)
	assert.Equal(t, 0, graph.Course.DurationMinutes)
	assert.Equal(t, constants.CourseStatusInactive, graph.Course.Status)

	first := graph.Lessons[0]
	assert.Equal(t, "Lesson 1", first.Title)
	assert.Equal(t, constants.DefaultLessonDurationMinutes, first.DurationMinutes)
	assert.Equal(t, 1, first.SortOrder)

	second := graph.Lessons[1]
	assert.Equal(t, "Lesson 2", second.Title)
	assert.Equal(t, 2, second.SortOrder)
	assert.Equal(t, []string{"yes", "no"}, second.Answers, "trailing empty answers dropped")
	assert.Equal(t, string(constants.QuizSingleChoice), second.QuizType)
}

func TestParseCourseGraph_CorrectIndexDefaults(t *testing.T) {
	raw := `{
		"course": {"title": "Indices"},
		"lessons": [
			{"title": "Missing", "content": "x", "question": "q?",
			 "answers": ["a", "b", "c"]},
			{"title": "OutOfRange", "content": "x", "question": "q?",
			 "answers": ["a", "b", "", ""], "correct_answer": 4},
			{"title": "Multi", "content": "x", "question": "q?", "quiz_type": "multiple_choice",
			 "answers": ["a", "b", "c"], "correct_answers": [1, 7, 3]}
		]
	}`

	graph, err := ParseCourseGraph(raw)
	require.NoError(t, err)
	require.Len(t, graph.Lessons, 3)

	// absent index defaults to the first slot
	assert.Equal(t, 1, graph.Lessons[0].CorrectAnswer)

	// index past the trimmed answers also lands on the first slot
	assert.Equal(t, []string{"a", "b"}, graph.Lessons[1].Answers)
	assert.Equal(t, 1, graph.Lessons[1].CorrectAnswer)

	// multi-select keeps only indices that reference a real slot
	assert.Equal(t, []int{1, 3}, graph.Lessons[2].CorrectAnswers)
}

func TestParseCourseGraph_AnswerCap(t *testing.T) {
	raw := `{
		"course": {"title": "Caps"},
		"lessons": [{"title": "L", "content": "x", "question": "q?",
			"answers": ["a", "b", "c", "d", "e", "f", "g"]}]
	}`

	graph, err := ParseCourseGraph(raw)
	require.NoError(t, err)
	assert.Len(t, graph.Lessons[0].Answers, constants.MaxQuizAnswers)
}

func TestHasQuiz(t *testing.T) {
	assert.False(t, (&LessonFields{}).HasQuiz())
	assert.False(t, (&LessonFields{Question: "q?"}).HasQuiz())
	assert.False(t, (&LessonFields{Question: "q?", Answers: []string{""}}).HasQuiz())
	assert.True(t, (&LessonFields{Question: "q?", Answers: []string{"a", "b", "c"}}).HasQuiz())
}
