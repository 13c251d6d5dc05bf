package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amara-obi/course-gen/constants"
	"github.com/amara-obi/course-gen/internal/entity"
	"github.com/amara-obi/course-gen/internal/llm"
	"github.com/amara-obi/course-gen/internal/repository"
)

// fakeLock never contends unless told to.
type fakeLock struct {
	err      error
	acquired int
	released int
}

func (l *fakeLock) Acquire() error {
	if l.err != nil {
		return l.err
	}
	l.acquired++
	return nil
}
func (l *fakeLock) Release() { l.released++ }

type progressStep struct {
	percent int
	message string
}

// fakeJobs is an in-memory Job Store holding a FIFO pending queue and the
// full progress history per job.
type fakeJobs struct {
	pending   []*entity.GenerationJob
	progress  map[uuid.UUID][]progressStep
	completed map[uuid.UUID]uuid.UUID
	failed    map[uuid.UUID]string
	reaped    int
	reapErr   error
	claimErr  error
}

func newFakeJobs(jobs ...*entity.GenerationJob) *fakeJobs {
	return &fakeJobs{
		pending:   jobs,
		progress:  make(map[uuid.UUID][]progressStep),
		completed: make(map[uuid.UUID]uuid.UUID),
		failed:    make(map[uuid.UUID]string),
	}
}

func (f *fakeJobs) Enqueue(ctx context.Context, req repository.EnqueueJobRequest) (*entity.GenerationJob, error) {
	panic("not used")
}
func (f *fakeJobs) GetByID(ctx context.Context, id uuid.UUID) (*entity.GenerationJob, error) {
	panic("not used")
}
func (f *fakeJobs) List(ctx context.Context, limit int) ([]*entity.GenerationJob, error) {
	panic("not used")
}

func (f *fakeJobs) ClaimOldestPending(ctx context.Context) (*entity.GenerationJob, error) {
	if f.claimErr != nil {
		return nil, f.claimErr
	}
	if len(f.pending) == 0 {
		return nil, nil
	}
	job := f.pending[0]
	f.pending = f.pending[1:]
	job.Status = string(constants.JobStatusProcessing)
	return job, nil
}

func (f *fakeJobs) SetProgress(ctx context.Context, id uuid.UUID, percent int, message string) error {
	f.progress[id] = append(f.progress[id], progressStep{percent, message})
	return nil
}

func (f *fakeJobs) MarkCompleted(ctx context.Context, id uuid.UUID, payload json.RawMessage, courseID uuid.UUID) error {
	f.completed[id] = courseID
	return nil
}

func (f *fakeJobs) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	f.failed[id] = message
	return nil
}

func (f *fakeJobs) ReapStale(ctx context.Context, olderThan time.Duration) (int, error) {
	if f.reapErr != nil {
		return 0, f.reapErr
	}
	return f.reaped, nil
}

type fakeCourses struct {
	imported []*llm.CourseGraph
	err      error
}

func (f *fakeCourses) ImportCourse(ctx context.Context, graph *llm.CourseGraph, requesterID uuid.UUID, orgDomain string) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	f.imported = append(f.imported, graph)
	return uuid.New(), nil
}

func (f *fakeCourses) ListCourses(ctx context.Context, orgDomain string) ([]*entity.Course, error) {
	panic("not used")
}

type fakeSettings struct{ template string }

func (f *fakeSettings) PromptTemplate(ctx context.Context) (string, error) { return f.template, nil }
func (f *fakeSettings) Set(ctx context.Context, key, value string) error   { return nil }

type fakeGenerator struct {
	response string
	err      error
	calls    int
}

func (f *fakeGenerator) GenerateCourse(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeVideos struct {
	enabled bool
	lookups int
}

func (f *fakeVideos) Enabled() bool { return f.enabled }
func (f *fakeVideos) LookupURL(ctx context.Context, query string) (string, error) {
	f.lookups++
	return fmt.Sprintf("https://www.youtube.com/watch?v=vid%d", f.lookups), nil
}

type fakeImages struct{}

func (f *fakeImages) Enabled() bool                                               { return false }
func (f *fakeImages) SearchURL(ctx context.Context, query string) (string, error) { return "", nil }
func (f *fakeImages) GenerateFile(ctx context.Context, prompt string) (string, error) {
	return "", nil
}

func testJob(lessons int) *entity.GenerationJob {
	return &entity.GenerationJob{
		ID:                 uuid.New(),
		CourseName:         "Celestial Navigation",
		CourseDescription:  "Finding your way by the stars",
		DifficultyLevel:    "intermediate",
		LessonCount:        lessons,
		IncludeQuiz:        true,
		IncludeVideoLinks:  true,
		RequesterID:        uuid.New(),
		OrganizationDomain: "sailing.example.com",
		Status:             string(constants.JobStatusPending),
	}
}

func graphJSON(t *testing.T, lessons int) string {
	t.Helper()
	g := llm.CourseGraph{
		Course: &llm.CourseFields{Title: "Model Title", Difficulty: "intermediate"},
	}
	for i := 1; i <= lessons; i++ {
		g.Lessons = append(g.Lessons, llm.LessonFields{
			Title:         fmt.Sprintf("Lesson %d", i),
			Content:       "<p>content</p>",
			Question:      "Which star marks north?",
			QuizType:      "single_choice",
			Answers:       []string{"Polaris", "Sirius", "Vega"},
			CorrectAnswer: 1,
		})
	}
	b, err := json.Marshal(g)
	require.NoError(t, err)
	return string(b)
}

func newTestRunner(jobs *fakeJobs, courses *fakeCourses, gen *fakeGenerator, videos *fakeVideos, lock Locker) *Runner {
	if lock == nil {
		lock = &fakeLock{}
	}
	return NewRunner(nil, lock, jobs, courses, &fakeSettings{}, gen, videos, &fakeImages{}, 30*time.Minute)
}

func TestRunner_HappyPath(t *testing.T) {
	job := testJob(3)
	jobs := newFakeJobs(job)
	courses := &fakeCourses{}
	gen := &fakeGenerator{response: graphJSON(t, 3)}
	videos := &fakeVideos{enabled: true}

	runner := newTestRunner(jobs, courses, gen, videos, nil)
	require.NoError(t, runner.Run(context.Background()))

	require.Len(t, courses.imported, 1)
	imported := courses.imported[0]
	assert.Equal(t, "Celestial Navigation", imported.Course.Title, "requested name wins over the model's title")
	require.Len(t, imported.Lessons, 3)
	for _, l := range imported.Lessons {
		assert.NotEmpty(t, l.VideoURL, "video attached to each lesson")
		assert.Equal(t, "Polaris", l.Answers[l.CorrectAnswer-1], "shuffle preserved the correct answer")
	}

	assert.Contains(t, jobs.completed, job.ID)
	assert.Empty(t, jobs.failed)

	steps := jobs.progress[job.ID]
	require.NotEmpty(t, steps)
	last := 0
	for _, s := range steps {
		assert.GreaterOrEqual(t, s.percent, last, "progress never moves backwards")
		last = s.percent
	}
	assert.Equal(t, 80, last, "saving is the final stage update, completion sets 100 via MarkCompleted")
}

func TestRunner_GenerationFailureMarksJobFailed(t *testing.T) {
	job := testJob(3)
	jobs := newFakeJobs(job)
	courses := &fakeCourses{}
	gen := &fakeGenerator{err: &llm.GenerationError{StatusCode: 429, Message: "rate limited"}}

	runner := newTestRunner(jobs, courses, gen, &fakeVideos{}, nil)
	require.NoError(t, runner.Run(context.Background()), "a job failure never aborts the run")

	assert.Empty(t, courses.imported)
	assert.Empty(t, jobs.completed)
	require.Contains(t, jobs.failed, job.ID)
	assert.Contains(t, jobs.failed[job.ID], "Course generation failed")
	assert.Contains(t, jobs.failed[job.ID], "rate limited")
}

func TestRunner_LessonCountMismatch(t *testing.T) {
	job := testJob(5)
	jobs := newFakeJobs(job)
	courses := &fakeCourses{}
	gen := &fakeGenerator{response: graphJSON(t, 3)}

	runner := newTestRunner(jobs, courses, gen, &fakeVideos{}, nil)
	require.NoError(t, runner.Run(context.Background()))

	assert.Empty(t, courses.imported)
	require.Contains(t, jobs.failed, job.ID)
	assert.Contains(t, jobs.failed[job.ID], "incomplete")
}

func TestRunner_UnparseableResponse(t *testing.T) {
	job := testJob(2)
	jobs := newFakeJobs(job)
	gen := &fakeGenerator{response: "I am sorry, I cannot do that."}

	runner := newTestRunner(jobs, &fakeCourses{}, gen, &fakeVideos{}, nil)
	require.NoError(t, runner.Run(context.Background()))

	require.Contains(t, jobs.failed, job.ID)
	assert.Contains(t, jobs.failed[job.ID], "Could not read the generated course")
}

func TestRunner_ImportFailureMarksJobFailed(t *testing.T) {
	job := testJob(2)
	jobs := newFakeJobs(job)
	courses := &fakeCourses{err: errors.New("deadlock detected")}
	gen := &fakeGenerator{response: graphJSON(t, 2)}

	runner := newTestRunner(jobs, courses, gen, &fakeVideos{}, nil)
	require.NoError(t, runner.Run(context.Background()))

	require.Contains(t, jobs.failed, job.ID)
	assert.Contains(t, jobs.failed[job.ID], "Could not save the generated course")
}

func TestRunner_DrainsBacklogInOrder(t *testing.T) {
	first := testJob(1)
	second := testJob(1)
	jobs := newFakeJobs(first, second)
	courses := &fakeCourses{}
	gen := &fakeGenerator{response: graphJSON(t, 1)}

	runner := newTestRunner(jobs, courses, gen, &fakeVideos{}, nil)
	require.NoError(t, runner.Run(context.Background()))

	assert.Equal(t, 2, gen.calls)
	assert.Len(t, courses.imported, 2)
	assert.Contains(t, jobs.completed, first.ID)
	assert.Contains(t, jobs.completed, second.ID)
	assert.Empty(t, jobs.pending)
}

func TestRunner_MaxJobsStopsAfterCap(t *testing.T) {
	first := testJob(1)
	second := testJob(1)
	jobs := newFakeJobs(first, second)
	gen := &fakeGenerator{response: graphJSON(t, 1)}

	runner := newTestRunner(jobs, &fakeCourses{}, gen, &fakeVideos{}, nil)
	runner.MaxJobs(1)
	require.NoError(t, runner.Run(context.Background()))

	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, jobs.completed, first.ID)
	assert.Len(t, jobs.pending, 1, "second job stays queued")
}

func TestRunner_LockContentionExitsCleanly(t *testing.T) {
	job := testJob(1)
	jobs := newFakeJobs(job)
	gen := &fakeGenerator{response: graphJSON(t, 1)}
	lock := &fakeLock{err: ErrAlreadyRunning}

	runner := newTestRunner(jobs, &fakeCourses{}, gen, &fakeVideos{}, lock)
	require.NoError(t, runner.Run(context.Background()), "contention is a clean exit")

	assert.Equal(t, 0, gen.calls, "queue untouched while another instance holds the lock")
	assert.Len(t, jobs.pending, 1)
}

func TestRunner_LockReleasedAfterRun(t *testing.T) {
	jobs := newFakeJobs()
	lock := &fakeLock{}
	runner := newTestRunner(jobs, &fakeCourses{}, &fakeGenerator{}, &fakeVideos{}, lock)

	require.NoError(t, runner.Run(context.Background()))
	assert.Equal(t, 1, lock.acquired)
	assert.Equal(t, 1, lock.released)
}

func TestRunner_ReapErrorIsFatal(t *testing.T) {
	jobs := newFakeJobs()
	jobs.reapErr = errors.New("connection refused")
	runner := newTestRunner(jobs, &fakeCourses{}, &fakeGenerator{}, &fakeVideos{}, nil)

	err := runner.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reap stale jobs")
}

func TestRunner_ClaimErrorIsFatal(t *testing.T) {
	jobs := newFakeJobs()
	jobs.claimErr = errors.New("connection refused")
	runner := newTestRunner(jobs, &fakeCourses{}, &fakeGenerator{}, &fakeVideos{}, nil)

	err := runner.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "claim next job")
}

func TestRunner_VideosDisabledStillFinalizes(t *testing.T) {
	job := testJob(2)
	job.IncludeVideoLinks = false
	jobs := newFakeJobs(job)
	courses := &fakeCourses{}
	gen := &fakeGenerator{response: graphJSON(t, 2)}
	videos := &fakeVideos{enabled: false}

	runner := newTestRunner(jobs, courses, gen, videos, nil)
	require.NoError(t, runner.Run(context.Background()))

	assert.Equal(t, 0, videos.lookups)
	require.Len(t, courses.imported, 1)
	for _, l := range courses.imported[0].Lessons {
		assert.Empty(t, l.VideoURL)
	}
	assert.Contains(t, jobs.completed, job.ID)
}
