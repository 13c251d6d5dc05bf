package utils

import (
	"github.com/amara-obi/course-gen/gen/ent"
	"github.com/amara-obi/course-gen/internal/entity"
)

// ToGenerationJob maps an ent row onto the transfer shape used above the
// repository layer.
func ToGenerationJob(row *ent.GenerationJob) *entity.GenerationJob {
	if row == nil {
		return nil
	}
	return &entity.GenerationJob{
		ID:                 row.ID,
		CourseName:         row.CourseName,
		CourseDescription:  row.CourseDescription,
		DifficultyLevel:    row.DifficultyLevel,
		LessonCount:        row.LessonCount,
		IncludeQuiz:        row.IncludeQuiz,
		IncludeAITutor:     row.IncludeAiTutor,
		IncludeVideoLinks:  row.IncludeVideoLinks,
		RequesterID:        row.RequesterID,
		OrganizationDomain: row.OrganizationDomain,
		Status:             row.Status,
		ProgressPercent:    row.ProgressPercent,
		ProgressMessage:    row.ProgressMessage,
		GeneratedPayload:   row.GeneratedPayload,
		ResultCourseID:     row.ResultCourseID,
		ErrorMessage:       row.ErrorMessage,
		CreatedAt:          row.CreatedAt,
		StartedAt:          row.StartedAt,
		CompletedAt:        row.CompletedAt,
	}
}
