package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/amara-obi/course-gen/internal/repository"
)

// Service is a tiny façade over the course repository that produces XLSX
// bytes for the generated-course review workflow.
type Service struct {
	courses repository.CourseRepository
	logger  *slog.Logger
}

func NewService(courses repository.CourseRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{courses: courses, logger: logger}
}

// ExportCoursesXLSX returns an XLSX workbook (as bytes) listing every
// course of the organization. An empty orgDomain exports all courses.
func (s *Service) ExportCoursesXLSX(ctx context.Context, orgDomain string) ([]byte, error) {
	start := time.Now()

	courses, err := s.courses.ListCourses(ctx, orgDomain)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Courses"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Title",
		"Difficulty",
		"Lessons",
		"Duration (min)",
		"Status",
		"Featured",
		"Organization",
		"Created",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, c := range courses {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, c.Title)
		write(2, c.Difficulty)
		write(3, c.LessonCount)
		write(4, c.DurationMinutes)
		write(5, c.Status)
		write(6, c.Featured)
		write(7, c.OrganizationDomain)
		write(8, c.CreatedAt.Format("2006-01-02"))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 40) // title
	_ = f.SetColWidth(sheet, "B", "B", 14) // difficulty
	_ = f.SetColWidth(sheet, "C", "D", 12) // counts
	_ = f.SetColWidth(sheet, "E", "F", 12) // status/featured
	_ = f.SetColWidth(sheet, "G", "G", 24) // org
	_ = f.SetColWidth(sheet, "H", "H", 14) // created

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"org_domain", orgDomain,
		"rows", len(courses),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
