package entity

import (
	"time"

	"github.com/google/uuid"
)

// Course is the read-side shape used by the export service and admin API.
type Course struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Difficulty         string    `json:"difficulty"`
	DurationMinutes    int       `json:"duration_minutes"`
	Status             string    `json:"status"`
	SortOrder          int       `json:"sort_order"`
	Featured           bool      `json:"featured"`
	AuthorID           uuid.UUID `json:"author_id"`
	OrganizationDomain string    `json:"organization_domain"`
	LessonCount        int       `json:"lesson_count"`
	CreatedAt          time.Time `json:"created_at"`
}
