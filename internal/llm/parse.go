package llm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/amara-obi/course-gen/constants"
)

// ParseCourseGraph extracts a course graph from raw model output. It first
// tries a direct decode of the whole text; when that fails, or yields
// neither a course object nor a lessons sequence, it falls back to the
// first brace-balanced {...} substring. Models that wrap their JSON in
// prose or markdown fences are handled by the fallback. The returned graph
// is normalized: every import default is applied here, once.
func ParseCourseGraph(raw string) (*CourseGraph, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, &ParseError{Reason: "empty response"}
	}

	graph, err := decodeGraph([]byte(text))
	if err != nil || (graph.Course == nil && len(graph.Lessons) == 0) {
		candidate := extractJSONObject(text)
		if candidate == "" {
			return nil, &ParseError{Reason: "no JSON object found in response"}
		}
		graph, err = decodeGraph([]byte(candidate))
		if err != nil {
			return nil, &ParseError{Reason: err.Error()}
		}
	}
	if graph.Course == nil {
		return nil, &ParseError{Reason: "response is missing the course object"}
	}

	graph.normalize()
	return graph, nil
}

func decodeGraph(data []byte) (*CourseGraph, error) {
	cleaned, err := sanitizeGraphJSON(data)
	if err != nil {
		return nil, err
	}
	var g CourseGraph
	if err := json.Unmarshal(cleaned, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// sanitizeGraphJSON coerces near-miss values at the map level before the
// typed decode: numeric strings for counts and indices, numbers inside the
// answers array. Unknown keys pass through untouched.
func sanitizeGraphJSON(data []byte) ([]byte, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	if course, ok := m["course"].(map[string]any); ok {
		coerceNumber(course, "duration_minutes")
	}
	if lessons, ok := m["lessons"].([]any); ok {
		for _, raw := range lessons {
			lesson, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			coerceNumber(lesson, "duration_minutes")
			coerceNumber(lesson, "sort_order")
			coerceNumber(lesson, "correct_answer")
			if answers, ok := lesson["answers"].([]any); ok {
				for i, a := range answers {
					if f, isNum := a.(float64); isNum {
						answers[i] = strconv.FormatFloat(f, 'f', -1, 64)
					}
				}
			}
		}
	}
	return json.Marshal(m)
}

func coerceNumber(m map[string]any, key string) {
	s, ok := m[key].(string)
	if !ok {
		return
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		m[key] = f
	} else {
		delete(m, key)
	}
}

// extractJSONObject returns the first brace-balanced {...} substring,
// skipping braces inside string literals, or "" when none exists.
func extractJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// normalize applies every import default in one place: course difficulty
// and status, lesson titles, durations, ordering, quiz types, and correct
// answer indices.
func (g *CourseGraph) normalize() {
	c := g.Course
	difficulty, _ := constants.CanonicalDifficulty(c.Difficulty)
	c.Difficulty = string(difficulty)
	if c.Status == "" {
		c.Status = constants.CourseStatusInactive
	}
	if c.DurationMinutes < 0 {
		c.DurationMinutes = 0
	}

	for i := range g.Lessons {
		l := &g.Lessons[i]
		if strings.TrimSpace(l.Title) == "" {
			l.Title = fmt.Sprintf("Lesson %d", i+1)
		}
		if l.DurationMinutes <= 0 {
			l.DurationMinutes = constants.DefaultLessonDurationMinutes
		}
		if l.SortOrder <= 0 {
			l.SortOrder = i + 1
		}
		// answers: drop empty trailing slots, cap at the schema maximum
		for len(l.Answers) > 0 && strings.TrimSpace(l.Answers[len(l.Answers)-1]) == "" {
			l.Answers = l.Answers[:len(l.Answers)-1]
		}
		if len(l.Answers) > constants.MaxQuizAnswers {
			l.Answers = l.Answers[:constants.MaxQuizAnswers]
		}
		if l.Question != "" {
			l.QuizType = string(constants.CanonicalQuizType(l.QuizType))
			if len(l.CorrectAnswers) > 0 {
				kept := l.CorrectAnswers[:0]
				for _, idx := range l.CorrectAnswers {
					if idx >= 1 && idx <= len(l.Answers) {
						kept = append(kept, idx)
					}
				}
				l.CorrectAnswers = kept
			}
			// the stored index must reference a populated slot
			if l.CorrectAnswer < 1 || l.CorrectAnswer > len(l.Answers) {
				l.CorrectAnswer = 1
			}
		}
	}
}
