package constants

import "strings"

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

var allDifficulties = []Difficulty{Beginner, Intermediate, Advanced}

var difficultyLabels = map[Difficulty]string{
	Beginner:     "Beginner",
	Intermediate: "Intermediate",
	Advanced:     "Advanced",
}

// Difficulties returns the allowed difficulty keys as strings.
func Difficulties() []string {
	result := make([]string, len(allDifficulties))
	for i, d := range allDifficulties {
		result[i] = string(d)
	}
	return result
}

// CanonicalDifficulty maps free-form input to a known difficulty key.
// Unknown values resolve to Beginner, reported via the second return.
func CanonicalDifficulty(input string) (Difficulty, bool) {
	normalized := Difficulty(strings.ToLower(strings.TrimSpace(input)))
	for _, d := range allDifficulties {
		if d == normalized {
			return d, true
		}
	}
	return Beginner, false
}

// Label returns the display string used in prompts and exports.
func (d Difficulty) Label() string {
	if l, ok := difficultyLabels[d]; ok {
		return l
	}
	return difficultyLabels[Beginner]
}
