package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amara-obi/course-gen/internal/entity"
)

func baseJob() *entity.GenerationJob {
	return &entity.GenerationJob{
		CourseName:        "Sailing Basics",
		CourseDescription: "Coastal sailing for newcomers",
		DifficultyLevel:   "intermediate",
		LessonCount:       4,
	}
}

func TestBuildPrompt_DefaultTemplate(t *testing.T) {
	system, user := BuildPrompt(baseJob(), "")

	assert.Contains(t, system, "exactly 4 lessons")
	assert.Contains(t, system, "Intermediate")
	assert.Contains(t, system, `"intermediate"`)
	assert.NotContains(t, system, "{lesson_count}")
	assert.NotContains(t, system, "{difficulty}")

	assert.Contains(t, user, "Course name: Sailing Basics")
	assert.Contains(t, user, "Coastal sailing for newcomers")
	assert.Contains(t, user, "Generate exactly 4 lessons.")
}

func TestBuildPrompt_TutorPlaceholders(t *testing.T) {
	job := baseJob()
	system, _ := BuildPrompt(job, "")
	// tutor disabled: placeholders become JSON null literals
	assert.Contains(t, system, `"tutor_instruction": null`)
	assert.Contains(t, system, `"tutor_prompt": null`)

	job.IncludeAITutor = true
	system, _ = BuildPrompt(job, "")
	assert.NotContains(t, system, `"tutor_instruction": null`)
	assert.Contains(t, system, "AI tutor persona")
}

func TestBuildPrompt_CustomTemplate(t *testing.T) {
	job := baseJob()
	system, _ := BuildPrompt(job, "Write {lesson_count} lessons about knots at {difficulty_label} level.")
	assert.Equal(t, "Write 4 lessons about knots at Intermediate level.", system)
}

func TestBuildPrompt_FallbackParagraphs(t *testing.T) {
	job := baseJob()
	job.IncludeQuiz = true
	job.IncludeAITutor = true

	// custom template that never mentions quizzes or tutors
	system, _ := BuildPrompt(job, "Write {lesson_count} lessons.")
	assert.Contains(t, strings.ToLower(system), "quiz")
	assert.Contains(t, strings.ToLower(system), "tutor")

	// default template already covers both; fallbacks stay out
	system, _ = BuildPrompt(job, "")
	assert.NotContains(t, system, "Every lesson must include a quiz")
}

func TestBuildPrompt_UnknownDifficultyDefaultsToBeginner(t *testing.T) {
	job := baseJob()
	job.DifficultyLevel = "ninja"
	system, _ := BuildPrompt(job, "")
	assert.Contains(t, system, "Beginner")
}
