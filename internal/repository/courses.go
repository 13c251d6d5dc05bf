package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/amara-obi/course-gen/constants"
	"github.com/amara-obi/course-gen/gen/ent"
	"github.com/amara-obi/course-gen/gen/ent/course"
	"github.com/amara-obi/course-gen/internal/entity"
	"github.com/amara-obi/course-gen/internal/llm"
)

type CourseRepository interface {
	// ImportCourse materializes a parsed course graph inside a single
	// transaction: course row, editor grant for the requester, and every
	// lesson. All rows commit together or none do.
	ImportCourse(ctx context.Context, graph *llm.CourseGraph, requesterID uuid.UUID, orgDomain string) (uuid.UUID, error)
	ListCourses(ctx context.Context, orgDomain string) ([]*entity.Course, error)
}

type courseRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewCourseRepository(entc *ent.Client, log *slog.Logger) CourseRepository {
	return &courseRepo{ent: entc, log: log}
}

func (r *courseRepo) ImportCourse(ctx context.Context, graph *llm.CourseGraph, requesterID uuid.UUID, orgDomain string) (uuid.UUID, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin import tx: %w", err)
	}

	courseID, err := r.importTx(ctx, tx, graph, requesterID, orgDomain)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		r.log.Error("course import rolled back", "requester_id", requesterID, "err", err)
		return uuid.Nil, err
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("commit import tx: %w", err)
	}

	r.log.Info("course imported",
		"course_id", courseID,
		"lessons", len(graph.Lessons),
		"requester_id", requesterID,
		"org_domain", orgDomain,
	)
	return courseID, nil
}

func (r *courseRepo) importTx(ctx context.Context, tx *ent.Tx, graph *llm.CourseGraph, requesterID uuid.UUID, orgDomain string) (uuid.UUID, error) {
	c := graph.Course

	// next ordering key
	sortOrder := 1
	last, err := tx.Course.Query().
		Order(ent.Desc(course.FieldSortOrder)).
		First(ctx)
	switch {
	case err == nil:
		sortOrder = last.SortOrder + 1
	case !ent.IsNotFound(err):
		return uuid.Nil, fmt.Errorf("query max sort order: %w", err)
	}

	builder := tx.Course.Create().
		SetTitle(c.Title).
		SetDescription(c.Description).
		SetDifficulty(c.Difficulty).
		SetDurationMinutes(c.DurationMinutes).
		SetStatus(c.Status).
		SetSortOrder(sortOrder).
		SetFeatured(c.Featured).
		SetAuthorID(requesterID).
		SetOrganizationDomain(orgDomain)
	if c.Prerequisites != "" {
		builder = builder.SetPrerequisites(c.Prerequisites)
	}
	if len(c.Tags) > 0 {
		builder = builder.SetTags(c.Tags)
	}
	if c.Image != "" {
		builder = builder.SetImage(c.Image)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert course: %w", err)
	}

	if _, err := tx.CourseEditor.Create().
		SetCourseID(row.ID).
		SetUserID(requesterID).
		Save(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("grant editor rights: %w", err)
	}

	for i := range graph.Lessons {
		l := &graph.Lessons[i]
		lb := tx.Lesson.Create().
			SetCourseID(row.ID).
			SetTitle(l.Title).
			SetDurationMinutes(l.DurationMinutes).
			SetContent(l.Content).
			SetSortOrder(l.SortOrder).
			SetStatus(constants.LessonStatusActive)
		if l.VideoURL != "" {
			lb = lb.SetVideoURL(l.VideoURL)
		}
		if len(l.Resources) > 0 {
			lb = lb.SetResources(l.Resources)
		}
		if l.TutorInstruction != "" {
			lb = lb.SetTutorInstruction(l.TutorInstruction)
		}
		if l.TutorPrompt != "" {
			lb = lb.SetTutorPrompt(l.TutorPrompt)
		}
		if l.Question != "" {
			lb = lb.
				SetQuizType(string(constants.CanonicalQuizType(l.QuizType))).
				SetQuestion(l.Question).
				SetAnswers(l.Answers)
			if len(l.CorrectAnswers) > 0 {
				lb = lb.SetCorrectAnswers(l.CorrectAnswers)
			} else {
				lb = lb.SetCorrectAnswer(l.CorrectAnswer)
			}
		}
		if _, err := lb.Save(ctx); err != nil {
			return uuid.Nil, fmt.Errorf("insert lesson %d: %w", i+1, err)
		}
	}

	return row.ID, nil
}

func (r *courseRepo) ListCourses(ctx context.Context, orgDomain string) ([]*entity.Course, error) {
	q := r.ent.Course.Query().
		WithLessons().
		Order(ent.Asc(course.FieldSortOrder))
	if orgDomain != "" {
		q = q.Where(course.OrganizationDomain(orgDomain))
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.log.Error("failed to list courses", "org_domain", orgDomain, "error", err)
		return nil, err
	}

	result := make([]*entity.Course, len(rows))
	for i, row := range rows {
		result[i] = &entity.Course{
			ID:                 row.ID,
			Title:              row.Title,
			Difficulty:         row.Difficulty,
			DurationMinutes:    row.DurationMinutes,
			Status:             row.Status,
			SortOrder:          row.SortOrder,
			Featured:           row.Featured,
			AuthorID:           row.AuthorID,
			OrganizationDomain: row.OrganizationDomain,
			LessonCount:        len(row.Edges.Lessons),
			CreatedAt:          row.CreatedAt,
		}
	}
	return result, nil
}
