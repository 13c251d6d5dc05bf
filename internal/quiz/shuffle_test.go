package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amara-obi/course-gen/internal/llm"
)

func TestShuffle_PreservesCorrectAnswerByContent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for seed := int64(0); seed < 50; seed++ {
		rng.Seed(seed)
		l := &llm.LessonFields{
			Question:      "Which knot holds under load?",
			QuizType:      "single_choice",
			Answers:       []string{"Bowline", "Granny", "Slip", "Thief"},
			CorrectAnswer: 1,
		}
		Shuffle(l, rng)

		require.Len(t, l.Answers, 4)
		require.GreaterOrEqual(t, l.CorrectAnswer, 1)
		require.LessOrEqual(t, l.CorrectAnswer, 4)
		assert.Equal(t, "Bowline", l.Answers[l.CorrectAnswer-1])
		assert.ElementsMatch(t, []string{"Bowline", "Granny", "Slip", "Thief"}, l.Answers)
	}
}

func TestShuffle_MultipleChoiceRemapsAll(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for seed := int64(0); seed < 50; seed++ {
		rng.Seed(seed)
		l := &llm.LessonFields{
			Question:       "Select the sailing knots",
			QuizType:       "multiple_choice",
			Answers:        []string{"Bowline", "Granny", "Cleat hitch", "Thief", "Figure eight"},
			CorrectAnswers: []int{1, 3, 5},
		}
		Shuffle(l, rng)

		require.Len(t, l.CorrectAnswers, 3)
		got := make([]string, 0, 3)
		for _, idx := range l.CorrectAnswers {
			require.GreaterOrEqual(t, idx, 1)
			require.LessOrEqual(t, idx, 5)
			got = append(got, l.Answers[idx-1])
		}
		assert.ElementsMatch(t, []string{"Bowline", "Cleat hitch", "Figure eight"}, got)
		assert.IsIncreasing(t, l.CorrectAnswers)
	}
}

func TestShuffle_OnlyPopulatedSlotsMove(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	l := &llm.LessonFields{
		Question:      "Pick one",
		QuizType:      "single_choice",
		Answers:       []string{"A", "B", "C", "", ""},
		CorrectAnswer: 2,
	}
	Shuffle(l, rng)

	// trailing empty slots stay in place
	assert.Equal(t, "", l.Answers[3])
	assert.Equal(t, "", l.Answers[4])
	assert.ElementsMatch(t, []string{"A", "B", "C"}, l.Answers[:3])
	assert.Equal(t, "B", l.Answers[l.CorrectAnswer-1])
}

func TestShuffle_SkipsLessonsWithoutQuiz(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	noQuestion := &llm.LessonFields{Answers: []string{"A", "B", "C"}, CorrectAnswer: 2}
	Shuffle(noQuestion, rng)
	assert.Equal(t, []string{"A", "B", "C"}, noQuestion.Answers)
	assert.Equal(t, 2, noQuestion.CorrectAnswer)

	oneAnswer := &llm.LessonFields{Question: "q?", Answers: []string{"only"}, CorrectAnswer: 1}
	Shuffle(oneAnswer, rng)
	assert.Equal(t, []string{"only"}, oneAnswer.Answers)
	assert.Equal(t, 1, oneAnswer.CorrectAnswer)
}

func TestShuffle_OutOfRangeIndexFallsBackToFirstSlot(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	l := &llm.LessonFields{
		Question:      "q?",
		QuizType:      "single_choice",
		Answers:       []string{"A", "B", "C"},
		CorrectAnswer: 9,
	}
	Shuffle(l, rng)
	assert.Equal(t, "A", l.Answers[l.CorrectAnswer-1])
}
