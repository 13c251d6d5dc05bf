package llm

import (
	"fmt"
	"strings"

	"github.com/amara-obi/course-gen/constants"
	"github.com/amara-obi/course-gen/internal/entity"
)

// DefaultPromptTemplate is the built-in system prompt. Operators can
// override it via the course_prompt_template app setting; the same
// placeholders are substituted either way.
const DefaultPromptTemplate = `You are a course author for an online learning platform.
Create a complete course with exactly {lesson_count} lessons at {difficulty_label} level (difficulty key: "{difficulty}").

Respond with a SINGLE JSON object and nothing else. No prose, no markdown fences. The object must have this shape:
{
  "course": {
    "title": "...",
    "description": "...",
    "difficulty": "{difficulty}",
    "duration_minutes": 0,
    "tags": ["..."]
  },
  "lessons": [
    {
      "title": "...",
      "duration_minutes": 0,
      "content": "<rich-text HTML lesson body>",
      "sort_order": 1,
      "tutor_instruction": {tutor_instruction},
      "tutor_prompt": {tutor_prompt},
      "quiz_type": "single_choice",
      "question": "...",
      "answers": ["...", "...", "..."],
      "correct_answer": 1
    }
  ]
}

Each lesson quiz has 3 to 5 answers; "correct_answer" is the 1-based index of the right one. Use "multiple_choice" with a "correct_answers" index array when more than one answer is right.
Lesson content should be substantial enough to teach the topic, written as clean HTML paragraphs and lists.`

const quizFallbackParagraph = `
Every lesson must include a quiz: a "question", 3 to 5 "answers", and the 1-based "correct_answer" index (or "correct_answers" array for multiple_choice).`

const tutorFallbackParagraph = `
Every lesson must include "tutor_instruction" (how an AI tutor should behave for this lesson) and "tutor_prompt" (an opening question the tutor asks the learner).`

// BuildPrompt composes the system/user prompt pair for one job. The
// template defaults to DefaultPromptTemplate when empty (no stored
// override).
func BuildPrompt(job *entity.GenerationJob, template string) (systemPrompt, userPrompt string) {
	if strings.TrimSpace(template) == "" {
		template = DefaultPromptTemplate
	}

	difficulty, _ := constants.CanonicalDifficulty(job.DifficultyLevel)

	tutorInstruction := "null"
	tutorPrompt := "null"
	if job.IncludeAITutor {
		tutorInstruction = `"<instruction for the AI tutor persona of this lesson>"`
		tutorPrompt = `"<opening question the tutor asks the learner>"`
	}

	r := strings.NewReplacer(
		"{lesson_count}", fmt.Sprintf("%d", job.LessonCount),
		"{difficulty_label}", difficulty.Label(),
		"{difficulty}", string(difficulty),
		"{tutor_instruction}", tutorInstruction,
		"{tutor_prompt}", tutorPrompt,
	)
	systemPrompt = r.Replace(template)

	// A custom template may omit instructions for requested extras.
	lower := strings.ToLower(systemPrompt)
	if job.IncludeQuiz && !strings.Contains(lower, "quiz") {
		systemPrompt += quizFallbackParagraph
	}
	if job.IncludeAITutor && !strings.Contains(lower, "tutor") {
		systemPrompt += tutorFallbackParagraph
	}

	var b strings.Builder
	b.WriteString("Course name: ")
	b.WriteString(job.CourseName)
	b.WriteString("\nCourse description: ")
	b.WriteString(job.CourseDescription)
	fmt.Fprintf(&b, "\n\nGenerate exactly %d lessons.", job.LessonCount)
	userPrompt = b.String()

	return systemPrompt, userPrompt
}
