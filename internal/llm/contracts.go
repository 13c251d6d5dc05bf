package llm

import "context"

// CourseFields is the course-level shape we want from the LLM.
type CourseFields struct {
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	Difficulty      string   `json:"difficulty,omitempty"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	Prerequisites   string   `json:"prerequisites,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Image           string   `json:"image,omitempty"`
	Status          string   `json:"status,omitempty"`
	Featured        bool     `json:"featured,omitempty"`
}

// LessonFields is one lesson of the generated course, quiz included.
// Correct answer indices are 1-based, matching the answer slot numbering
// the lesson player uses.
type LessonFields struct {
	Title            string   `json:"title"`
	DurationMinutes  int      `json:"duration_minutes,omitempty"`
	Content          string   `json:"content"`
	VideoURL         string   `json:"video_url,omitempty"`
	Resources        []string `json:"resources,omitempty"`
	SortOrder        int      `json:"sort_order,omitempty"`
	TutorInstruction string   `json:"tutor_instruction,omitempty"`
	TutorPrompt      string   `json:"tutor_prompt,omitempty"`
	QuizType         string   `json:"quiz_type,omitempty"`
	Question         string   `json:"question,omitempty"`
	Answers          []string `json:"answers,omitempty"`
	CorrectAnswer    int      `json:"correct_answer,omitempty"`
	CorrectAnswers   []int    `json:"correct_answers,omitempty"`
}

// CourseGraph is the structured result of one generation call: a course
// object plus its lessons, prior to persistence.
type CourseGraph struct {
	Course  *CourseFields  `json:"course"`
	Lessons []LessonFields `json:"lessons"`
}

// HasQuiz reports whether the lesson carries a shuffleable quiz.
func (l *LessonFields) HasQuiz() bool {
	return l.Question != "" && len(l.Answers) > 0 && l.Answers[0] != ""
}

// CourseGenerator is the interface the job runner depends on.
type CourseGenerator interface {
	GenerateCourse(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
