package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	coursegenv1 "github.com/amara-obi/course-gen/gen/coursegen/v1"
	"github.com/amara-obi/course-gen/gen/ent"
	"github.com/amara-obi/course-gen/internal/common"
	"github.com/amara-obi/course-gen/internal/entity"
	"github.com/amara-obi/course-gen/internal/repository"
)

// maxLessonCount caps a single request; larger courses time out against
// the generation endpoint anyway.
const maxLessonCount = 30

type JobsService struct {
	coursegenv1.UnimplementedJobServiceServer
	jobs   repository.GenerationJobRepository
	logger *slog.Logger
}

func NewJobsService(jobs repository.GenerationJobRepository, logger *slog.Logger) *JobsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobsService{jobs: jobs, logger: logger}
}

func (s *JobsService) CreateJob(ctx context.Context, req *coursegenv1.CreateJobRequest) (*coursegenv1.CreateJobResponse, error) {
	if req.GetCourseName() == "" {
		return nil, common.InvalidArgumentError("course_name is required")
	}
	if n := req.GetLessonCount(); n < 1 || n > maxLessonCount {
		return nil, common.InvalidArgumentErrorf("lesson_count must be between 1 and %d", maxLessonCount)
	}
	requesterID, err := uuid.Parse(req.GetRequesterId())
	if err != nil {
		return nil, common.InvalidArgumentError("requester_id must be a valid UUID")
	}

	job, err := s.jobs.Enqueue(ctx, repository.EnqueueJobRequest{
		CourseName:         req.GetCourseName(),
		CourseDescription:  req.GetCourseDescription(),
		DifficultyLevel:    req.GetDifficultyLevel(),
		LessonCount:        int(req.GetLessonCount()),
		IncludeQuiz:        req.GetIncludeQuiz(),
		IncludeAITutor:     req.GetIncludeAiTutor(),
		IncludeVideoLinks:  req.GetIncludeVideoLinks(),
		RequesterID:        requesterID,
		OrganizationDomain: req.GetOrganizationDomain(),
	})
	if err != nil {
		s.logger.Error("create job failed", "course_name", req.GetCourseName(), "error", err)
		return nil, common.InternalError("create job failed")
	}
	return &coursegenv1.CreateJobResponse{Job: toProtoJob(job)}, nil
}

func (s *JobsService) GetJob(ctx context.Context, req *coursegenv1.GetJobRequest) (*coursegenv1.GetJobResponse, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, common.InvalidArgumentError("id must be a valid UUID")
	}
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("job not found")
		}
		s.logger.Error("get job failed", "job_id", id, "error", err)
		return nil, common.InternalError("get job failed")
	}
	return &coursegenv1.GetJobResponse{Job: toProtoJob(job)}, nil
}

func (s *JobsService) ListJobs(ctx context.Context, req *coursegenv1.ListJobsRequest) (*coursegenv1.ListJobsResponse, error) {
	limit := int(req.GetLimit())
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	jobs, err := s.jobs.List(ctx, limit)
	if err != nil {
		s.logger.Error("list jobs failed", "error", err)
		return nil, common.InternalError("list jobs failed")
	}
	out := make([]*coursegenv1.Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toProtoJob(j))
	}
	return &coursegenv1.ListJobsResponse{Jobs: out}, nil
}

func toProtoJob(j *entity.GenerationJob) *coursegenv1.Job {
	p := &coursegenv1.Job{
		Id:                 j.ID.String(),
		CourseName:         j.CourseName,
		CourseDescription:  j.CourseDescription,
		DifficultyLevel:    j.DifficultyLevel,
		LessonCount:        int32(j.LessonCount),
		IncludeQuiz:        j.IncludeQuiz,
		IncludeAiTutor:     j.IncludeAITutor,
		IncludeVideoLinks:  j.IncludeVideoLinks,
		RequesterId:        j.RequesterID.String(),
		OrganizationDomain: j.OrganizationDomain,
		Status:             j.Status,
		ProgressPercent:    int32(j.ProgressPercent),
		ProgressMessage:    j.ProgressMessage,
		CreatedAt:          j.CreatedAt.Format(time.RFC3339Nano),
	}
	if j.ResultCourseID != nil {
		p.ResultCourseId = j.ResultCourseID.String()
	}
	if j.ErrorMessage != nil {
		p.ErrorMessage = *j.ErrorMessage
	}
	if j.StartedAt != nil {
		p.StartedAt = j.StartedAt.Format(time.RFC3339Nano)
	}
	if j.CompletedAt != nil {
		p.CompletedAt = j.CompletedAt.Format(time.RFC3339Nano)
	}
	return p
}
