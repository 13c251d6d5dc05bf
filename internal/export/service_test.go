package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/amara-obi/course-gen/internal/entity"
	"github.com/amara-obi/course-gen/internal/llm"
)

type fakeCourseRepo struct {
	courses   []*entity.Course
	err       error
	gotDomain string
}

func (f *fakeCourseRepo) ImportCourse(ctx context.Context, graph *llm.CourseGraph, requesterID uuid.UUID, orgDomain string) (uuid.UUID, error) {
	panic("not used")
}

func (f *fakeCourseRepo) ListCourses(ctx context.Context, orgDomain string) ([]*entity.Course, error) {
	f.gotDomain = orgDomain
	return f.courses, f.err
}

func TestExportCoursesXLSX(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	repo := &fakeCourseRepo{courses: []*entity.Course{
		{
			Title:              "Celestial Navigation",
			Difficulty:         "intermediate",
			LessonCount:        8,
			DurationMinutes:    240,
			Status:             "active",
			Featured:           true,
			OrganizationDomain: "sailing.example.com",
			CreatedAt:          created,
		},
		{
			Title:              "Knots Refresher",
			Difficulty:         "beginner",
			LessonCount:        3,
			DurationMinutes:    45,
			Status:             "inactive",
			OrganizationDomain: "sailing.example.com",
			CreatedAt:          created,
		},
	}}

	svc := NewService(repo, nil)
	data, err := svc.ExportCoursesXLSX(context.Background(), "sailing.example.com")
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "sailing.example.com", repo.gotDomain)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Courses")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two courses")

	assert.Equal(t, "Title", rows[0][0])
	assert.Equal(t, "Created", rows[0][7])

	assert.Equal(t, "Celestial Navigation", rows[1][0])
	assert.Equal(t, "8", rows[1][2])
	assert.Equal(t, "2026-03-14", rows[1][7])
	assert.Equal(t, "Knots Refresher", rows[2][0])
}

func TestExportCoursesXLSX_EmptyCatalog(t *testing.T) {
	svc := NewService(&fakeCourseRepo{}, nil)
	data, err := svc.ExportCoursesXLSX(context.Background(), "")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Courses")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}

func TestExportCoursesXLSX_RepoError(t *testing.T) {
	svc := NewService(&fakeCourseRepo{err: errors.New("connection reset")}, nil)
	_, err := svc.ExportCoursesXLSX(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query courses")
}
