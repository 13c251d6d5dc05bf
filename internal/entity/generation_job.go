package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GenerationJob represents a course-generation request for data transfer
// between layers.
type GenerationJob struct {
	ID                 uuid.UUID       `json:"id"`
	CourseName         string          `json:"course_name"`
	CourseDescription  string          `json:"course_description"`
	DifficultyLevel    string          `json:"difficulty_level"`
	LessonCount        int             `json:"lesson_count"`
	IncludeQuiz        bool            `json:"include_quiz"`
	IncludeAITutor     bool            `json:"include_ai_tutor"`
	IncludeVideoLinks  bool            `json:"include_video_links"`
	RequesterID        uuid.UUID       `json:"requester_id"`
	OrganizationDomain string          `json:"organization_domain"`
	Status             string          `json:"status"`
	ProgressPercent    int             `json:"progress_percent"`
	ProgressMessage    string          `json:"progress_message"`
	GeneratedPayload   json.RawMessage `json:"generated_payload,omitempty"`
	ResultCourseID     *uuid.UUID      `json:"result_course_id,omitempty"`
	ErrorMessage       *string         `json:"error_message,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	StartedAt          *time.Time      `json:"started_at,omitempty"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty"`
}
