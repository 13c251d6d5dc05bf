// Package quiz rewrites the answer order of generated quizzes so the
// correct option does not always land in the same slot.
package quiz

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/amara-obi/course-gen/constants"
	"github.com/amara-obi/course-gen/internal/llm"
)

// Shuffle permutes every populated answer slot of the lesson's quiz while
// preserving the correct answer by content: after the shuffle, the answer
// at the (rewritten) correct index is the same text as before. Lessons
// without a question or a first answer are left untouched.
func Shuffle(l *llm.LessonFields, rng *rand.Rand) {
	if !l.HasQuiz() {
		return
	}
	n := populatedAnswers(l.Answers)
	if n < 2 {
		return
	}

	perm := rng.Perm(n)
	// oldToNew[i] is the 1-based slot where the answer previously at
	// 0-based slot i ended up.
	oldToNew := make([]int, n)
	shuffled := make([]string, n)
	for newIdx, oldIdx := range perm {
		shuffled[newIdx] = l.Answers[oldIdx]
		oldToNew[oldIdx] = newIdx + 1
	}
	copy(l.Answers, shuffled)

	if constants.CanonicalQuizType(l.QuizType) == constants.QuizMultipleChoice && len(l.CorrectAnswers) > 0 {
		remapped := make([]int, 0, len(l.CorrectAnswers))
		for _, idx := range l.CorrectAnswers {
			if idx < 1 || idx > n {
				continue
			}
			remapped = append(remapped, oldToNew[idx-1])
		}
		sort.Ints(remapped)
		l.CorrectAnswers = remapped
		return
	}

	// single_choice: out-of-range or missing index falls back to slot 1
	idx := l.CorrectAnswer
	if idx < 1 || idx > n {
		idx = 1
	}
	l.CorrectAnswer = oldToNew[idx-1]
}

func populatedAnswers(answers []string) int {
	n := 0
	for _, a := range answers {
		if strings.TrimSpace(a) == "" {
			break
		}
		n++
	}
	return n
}
