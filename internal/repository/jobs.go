package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/amara-obi/course-gen/constants"
	"github.com/amara-obi/course-gen/gen/ent"
	"github.com/amara-obi/course-gen/gen/ent/generationjob"
	"github.com/amara-obi/course-gen/internal/entity"
	"github.com/amara-obi/course-gen/internal/utils"
)

// EnqueueJobRequest wraps parameters for creating a generation job.
type EnqueueJobRequest struct {
	CourseName         string
	CourseDescription  string
	DifficultyLevel    string
	LessonCount        int
	IncludeQuiz        bool
	IncludeAITutor     bool
	IncludeVideoLinks  bool
	RequesterID        uuid.UUID
	OrganizationDomain string
}

type GenerationJobRepository interface {
	Enqueue(ctx context.Context, req EnqueueJobRequest) (*entity.GenerationJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.GenerationJob, error)
	List(ctx context.Context, limit int) ([]*entity.GenerationJob, error)
	ClaimOldestPending(ctx context.Context) (*entity.GenerationJob, error)
	SetProgress(ctx context.Context, id uuid.UUID, percent int, message string) error
	MarkCompleted(ctx context.Context, id uuid.UUID, payload json.RawMessage, courseID uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	ReapStale(ctx context.Context, olderThan time.Duration) (int, error)
}

type generationJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewGenerationJobRepository(entc *ent.Client, log *slog.Logger) GenerationJobRepository {
	return &generationJobRepo{ent: entc, log: log}
}

func (r *generationJobRepo) Enqueue(ctx context.Context, req EnqueueJobRequest) (*entity.GenerationJob, error) {
	difficulty, _ := constants.CanonicalDifficulty(req.DifficultyLevel)
	row, err := r.ent.GenerationJob.
		Create().
		SetCourseName(req.CourseName).
		SetCourseDescription(req.CourseDescription).
		SetDifficultyLevel(string(difficulty)).
		SetLessonCount(req.LessonCount).
		SetIncludeQuiz(req.IncludeQuiz).
		SetIncludeAiTutor(req.IncludeAITutor).
		SetIncludeVideoLinks(req.IncludeVideoLinks).
		SetRequesterID(req.RequesterID).
		SetOrganizationDomain(req.OrganizationDomain).
		SetStatus(string(constants.JobStatusPending)).
		Save(ctx)
	if err != nil {
		r.log.Error("generation_job enqueue failed", "course_name", req.CourseName, "err", err)
		return nil, err
	}
	r.log.Info("generation_job enqueued", "job_id", row.ID, "course_name", req.CourseName, "lessons", req.LessonCount)
	return utils.ToGenerationJob(row), nil
}

func (r *generationJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.GenerationJob, error) {
	row, err := r.ent.GenerationJob.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToGenerationJob(row), nil
}

func (r *generationJobRepo) List(ctx context.Context, limit int) ([]*entity.GenerationJob, error) {
	q := r.ent.GenerationJob.Query().
		Order(ent.Desc(generationjob.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.GenerationJob, len(rows))
	for i, row := range rows {
		result[i] = utils.ToGenerationJob(row)
	}
	return result, nil
}

// ClaimOldestPending takes the single oldest pending job (created_at order,
// ties by id) and transitions it to processing. Returns nil when the queue
// is empty. The process lock guarantees a single claimer, so the two-step
// read/update does not race.
func (r *generationJobRepo) ClaimOldestPending(ctx context.Context) (*entity.GenerationJob, error) {
	row, err := r.ent.GenerationJob.Query().
		Where(generationjob.StatusEQ(string(constants.JobStatusPending))).
		Order(ent.Asc(generationjob.FieldCreatedAt), ent.Asc(generationjob.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	claimed, err := r.ent.GenerationJob.
		UpdateOneID(row.ID).
		SetStatus(string(constants.JobStatusProcessing)).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("generation_job claim failed", "job_id", row.ID, "err", err)
		return nil, err
	}
	r.log.Info("generation_job claimed", "job_id", claimed.ID, "course_name", claimed.CourseName)
	return utils.ToGenerationJob(claimed), nil
}

// SetProgress advances progress_percent and the user-visible message. The
// predicate keeps progress monotonic within the processing phase.
func (r *generationJobRepo) SetProgress(ctx context.Context, id uuid.UUID, percent int, message string) error {
	_, err := r.ent.GenerationJob.Update().
		Where(
			generationjob.ID(id),
			generationjob.ProgressPercentLTE(percent),
		).
		SetProgressPercent(percent).
		SetProgressMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("generation_job progress update failed", "job_id", id, "percent", percent, "err", err)
	}
	return err
}

func (r *generationJobRepo) MarkCompleted(ctx context.Context, id uuid.UUID, payload json.RawMessage, courseID uuid.UUID) error {
	_, err := r.ent.GenerationJob.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusCompleted)).
		SetProgressPercent(100).
		SetProgressMessage("Course created").
		SetGeneratedPayload(payload).
		SetResultCourseID(courseID).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("generation_job finish(completed) failed", "job_id", id, "err", err)
		return err
	}
	r.log.Info("generation_job finished (completed)", "job_id", id, "course_id", courseID)
	return nil
}

func (r *generationJobRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.GenerationJob.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("generation_job finish(failed) failed", "job_id", id, "err", err)
		return err
	}
	r.log.Warn("generation_job finished (failed)", "job_id", id, "error", message)
	return nil
}

// ReapStale force-fails jobs stuck in pending or processing longer than
// olderThan. Runs at worker startup so a crashed instance never blocks the
// queue forever. Idempotent: terminal jobs are never touched.
func (r *generationJobRepo) ReapStale(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	n, err := r.ent.GenerationJob.Update().
		Where(
			generationjob.StatusIn(
				string(constants.JobStatusPending),
				string(constants.JobStatusProcessing),
			),
			generationjob.CreatedAtLT(cutoff),
		).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage("Generation timed out and was cancelled by the worker").
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("generation_job reap failed", "err", err)
		return 0, err
	}
	if n > 0 {
		r.log.Warn("reaped stale generation jobs", "count", n, "older_than", olderThan)
	}
	return n, nil
}
