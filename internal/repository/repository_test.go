package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amara-obi/course-gen/constants"
	"github.com/amara-obi/course-gen/gen/ent"
	"github.com/amara-obi/course-gen/internal/llm"
)

func openTestStore(t *testing.T) *ent.Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	// one shared in-memory database per test, named after it
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		strings.ReplaceAll(t.Name(), "/", "_"))
	client, err := OpenSQLite(context.Background(), dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func enqueueRequest(name string) EnqueueJobRequest {
	return EnqueueJobRequest{
		CourseName:         name,
		CourseDescription:  "test course",
		DifficultyLevel:    "beginner",
		LessonCount:        2,
		RequesterID:        uuid.New(),
		OrganizationDomain: "sailing.example.com",
	}
}

func importGraph(lessons int) *llm.CourseGraph {
	g := &llm.CourseGraph{
		Course: &llm.CourseFields{
			Title:      "Tidal Currents",
			Difficulty: string(constants.Beginner),
			Status:     constants.CourseStatusInactive,
		},
	}
	for i := 1; i <= lessons; i++ {
		g.Lessons = append(g.Lessons, llm.LessonFields{
			Title:           fmt.Sprintf("Lesson %d", i),
			Content:         "<p>content</p>",
			DurationMinutes: 5,
			SortOrder:       i,
		})
	}
	return g
}

func TestImportCourse_AllRowsCommitTogether(t *testing.T) {
	client := openTestStore(t)
	repo := NewCourseRepository(client, testLogger())
	ctx := context.Background()
	requester := uuid.New()

	courseID, err := repo.ImportCourse(ctx, importGraph(3), requester, "sailing.example.com")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, courseID)

	courses, err := repo.ListCourses(ctx, "sailing.example.com")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, courseID, courses[0].ID)
	assert.Equal(t, 3, courses[0].LessonCount)
	assert.Equal(t, requester, courses[0].AuthorID)
	assert.Equal(t, constants.CourseStatusInactive, courses[0].Status)

	grants, err := client.CourseEditor.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, grants, "requester granted editor rights with the course")
}

func TestImportCourse_FailedLessonRollsBackEverything(t *testing.T) {
	client := openTestStore(t)
	repo := NewCourseRepository(client, testLogger())
	ctx := context.Background()

	graph := importGraph(3)
	// empty titles are rejected by the schema validator, so the final
	// lesson insert fails after the course and two lessons went in
	graph.Lessons[2].Title = ""

	_, err := repo.ImportCourse(ctx, graph, uuid.New(), "sailing.example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert lesson 3")

	courseCount, err := client.Course.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, courseCount, "course row absent after rollback")

	lessonCount, err := client.Lesson.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, lessonCount, "no partial lesson rows survive")

	grantCount, err := client.CourseEditor.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, grantCount, "no orphaned editor grant")
}

func TestImportCourse_SortOrderAppends(t *testing.T) {
	client := openTestStore(t)
	repo := NewCourseRepository(client, testLogger())
	ctx := context.Background()

	_, err := repo.ImportCourse(ctx, importGraph(1), uuid.New(), "sailing.example.com")
	require.NoError(t, err)
	_, err = repo.ImportCourse(ctx, importGraph(1), uuid.New(), "sailing.example.com")
	require.NoError(t, err)

	courses, err := repo.ListCourses(ctx, "sailing.example.com")
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, courses[0].SortOrder+1, courses[1].SortOrder)
}

func TestClaimOldestPending_Ordering(t *testing.T) {
	client := openTestStore(t)
	repo := NewGenerationJobRepository(client, testLogger())
	ctx := context.Background()

	first, err := repo.Enqueue(ctx, enqueueRequest("First"))
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := repo.Enqueue(ctx, enqueueRequest("Second"))
	require.NoError(t, err)

	claimed, err := repo.ClaimOldestPending(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, first.ID, claimed.ID)
	assert.Equal(t, string(constants.JobStatusProcessing), claimed.Status)
	assert.NotNil(t, claimed.StartedAt)

	claimed, err = repo.ClaimOldestPending(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, second.ID, claimed.ID)

	claimed, err = repo.ClaimOldestPending(ctx)
	require.NoError(t, err)
	assert.Nil(t, claimed, "empty queue claims nothing")
}

func TestSetProgress_NeverMovesBackwards(t *testing.T) {
	client := openTestStore(t)
	repo := NewGenerationJobRepository(client, testLogger())
	ctx := context.Background()

	job, err := repo.Enqueue(ctx, enqueueRequest("Progress"))
	require.NoError(t, err)

	require.NoError(t, repo.SetProgress(ctx, job.ID, 50, "halfway"))
	require.NoError(t, repo.SetProgress(ctx, job.ID, 40, "stale update"))

	got, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, got.ProgressPercent)
	assert.Equal(t, "halfway", got.ProgressMessage)

	require.NoError(t, repo.SetProgress(ctx, job.ID, 60, "onward"))
	got, err = repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, got.ProgressPercent)
}

func TestReapStale_SkipsTerminalJobs(t *testing.T) {
	client := openTestStore(t)
	repo := NewGenerationJobRepository(client, testLogger())
	ctx := context.Background()

	stuck, err := repo.Enqueue(ctx, enqueueRequest("Stuck"))
	require.NoError(t, err)
	done, err := repo.Enqueue(ctx, enqueueRequest("Done"))
	require.NoError(t, err)
	require.NoError(t, repo.MarkCompleted(ctx, done.ID, []byte(`{}`), uuid.New()))

	time.Sleep(10 * time.Millisecond)
	reaped, err := repo.ReapStale(ctx, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1, reaped)

	got, err := repo.GetByID(ctx, stuck.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusFailed), got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "timed out")

	got, err = repo.GetByID(ctx, done.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCompleted), got.Status, "terminal jobs never touched")

	// second pass finds nothing left to reap
	reaped, err = repo.ReapStale(ctx, time.Millisecond)
	require.NoError(t, err)
	assert.Zero(t, reaped)
}

func TestSettingsRepository_Upsert(t *testing.T) {
	client := openTestStore(t)
	repo := NewSettingsRepository(client, testLogger())
	ctx := context.Background()

	template, err := repo.PromptTemplate(ctx)
	require.NoError(t, err)
	assert.Empty(t, template, "no override stored yet")

	require.NoError(t, repo.Set(ctx, PromptTemplateKey, "first version"))
	require.NoError(t, repo.Set(ctx, PromptTemplateKey, "second version"))

	template, err = repo.PromptTemplate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second version", template)
}
