package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/amara-obi/course-gen/internal/enrich"
	"github.com/amara-obi/course-gen/internal/entity"
	"github.com/amara-obi/course-gen/internal/llm"
	"github.com/amara-obi/course-gen/internal/quiz"
	"github.com/amara-obi/course-gen/internal/repository"
)

// Runner drives the generation pipeline for one worker instance: acquire
// the process lock, reap stuck jobs, then drain the pending queue one job
// at a time. A job's failure never stops the run; only Job Store errors do.
type Runner struct {
	logger     *slog.Logger
	lock       Locker
	jobs       repository.GenerationJobRepository
	courses    repository.CourseRepository
	settings   repository.SettingsRepository
	generator  llm.CourseGenerator
	videos     enrich.VideoLookup
	images     enrich.ImageService
	staleAfter time.Duration
	maxJobs    int
	rng        *rand.Rand
}

func NewRunner(
	logger *slog.Logger,
	lock Locker,
	jobs repository.GenerationJobRepository,
	courses repository.CourseRepository,
	settings repository.SettingsRepository,
	generator llm.CourseGenerator,
	videos enrich.VideoLookup,
	images enrich.ImageService,
	staleAfter time.Duration,
) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if staleAfter <= 0 {
		staleAfter = 30 * time.Minute
	}
	return &Runner{
		logger:     logger,
		lock:       lock,
		jobs:       jobs,
		courses:    courses,
		settings:   settings,
		generator:  generator,
		videos:     videos,
		images:     images,
		staleAfter: staleAfter,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// MaxJobs caps how many jobs a single run may process. Zero, the default,
// drains the whole backlog.
func (r *Runner) MaxJobs(n int) { r.maxJobs = n }

// Run processes the pending backlog to completion and returns. A second
// instance started while the lock is held exits cleanly without touching
// any job. The returned error is reserved for unrecoverable resource
// failures (Job Store unreachable); per-job faults end up on the job row.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.lock.Acquire(); err != nil {
		if errors.Is(err, ErrAlreadyRunning) {
			r.logger.Info("worker already running, exiting", "at", time.Now().Format(time.RFC3339))
			return nil
		}
		return fmt.Errorf("acquire worker lock: %w", err)
	}
	defer r.lock.Release()

	start := time.Now()
	r.logger.Info("=== course generation worker started ===", "at", start.Format(time.RFC3339))

	reaped, err := r.jobs.ReapStale(ctx, r.staleAfter)
	if err != nil {
		return fmt.Errorf("reap stale jobs: %w", err)
	}
	if reaped > 0 {
		r.logger.Warn("worker.reap", "count", reaped)
	}

	processed := 0
	for r.maxJobs == 0 || processed < r.maxJobs {
		job, err := r.jobs.ClaimOldestPending(ctx)
		if err != nil {
			return fmt.Errorf("claim next job: %w", err)
		}
		if job == nil {
			break
		}
		if err := r.processJob(ctx, job); err != nil {
			return err
		}
		processed++
	}

	r.logger.Info("=== course generation worker finished ===",
		"at", time.Now().Format(time.RFC3339),
		"processed", processed,
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)
	return nil
}

// processJob runs one claimed job through every stage. Stage faults mark
// the job failed and return nil so the outer loop continues; a non-nil
// return means the Job Store itself is broken.
func (r *Runner) processJob(ctx context.Context, job *entity.GenerationJob) error {
	log := r.logger.With("job_id", job.ID, "course_name", job.CourseName)
	log.Info("worker.job.start", "lessons", job.LessonCount, "difficulty", job.DifficultyLevel)

	failJob := func(message string, cause error) error {
		log.Error("worker.job.failed", "reason", message, "err", cause)
		if err := r.jobs.MarkFailed(ctx, job.ID, fmt.Sprintf("%s: %v", message, cause)); err != nil {
			return fmt.Errorf("mark job failed: %w", err)
		}
		return nil
	}
	progress := func(percent int, message string) error {
		if err := r.jobs.SetProgress(ctx, job.ID, percent, message); err != nil {
			return fmt.Errorf("update job progress: %w", err)
		}
		return nil
	}

	if err := progress(5, "Preparing course generation"); err != nil {
		return err
	}

	template, err := r.settings.PromptTemplate(ctx)
	if err != nil {
		log.Warn("worker.template.fallback", "err", err)
		template = ""
	}
	systemPrompt, userPrompt := llm.BuildPrompt(job, template)

	if err := progress(10, "Contacting the language model"); err != nil {
		return err
	}
	raw, err := r.generator.GenerateCourse(ctx, systemPrompt, userPrompt)
	if err != nil {
		return failJob("Course generation failed", err)
	}

	if err := progress(40, "Processing the model response"); err != nil {
		return err
	}
	graph, err := llm.ParseCourseGraph(raw)
	if err != nil {
		return failJob("Could not read the generated course", err)
	}
	if vErr := validateGraph(graph); vErr != nil {
		// schema drift is worth a log line, the parser already enforced
		// everything import depends on
		log.Warn("worker.parse.schema_mismatch", "err", vErr)
	}

	// the user-supplied name always wins over the model's title
	graph.Course.Title = job.CourseName

	if len(graph.Lessons) != job.LessonCount {
		return failJob("Generated course is incomplete",
			fmt.Errorf("expected %d lessons, model returned %d", job.LessonCount, len(graph.Lessons)))
	}
	if err := progress(50, "Preparing lessons"); err != nil {
		return err
	}

	if job.IncludeQuiz {
		for i := range graph.Lessons {
			quiz.Shuffle(&graph.Lessons[i], r.rng)
		}
		log.Debug("worker.quiz.shuffled", "lessons", len(graph.Lessons))
	}

	if job.IncludeVideoLinks {
		if err := r.attachVideos(ctx, job, graph, progress); err != nil {
			return err
		}
	} else if err := progress(70, "Finalizing lessons"); err != nil {
		return err
	}

	if graph.Course.Image == "" && r.images != nil && r.images.Enabled() {
		if file, imgErr := r.images.GenerateFile(ctx, "Course illustration: "+job.CourseName); imgErr != nil {
			log.Warn("worker.image.skipped", "err", imgErr)
		} else if file != "" {
			graph.Course.Image = file
		}
	}

	if err := progress(80, "Saving the course"); err != nil {
		return err
	}
	courseID, err := r.courses.ImportCourse(ctx, graph, job.RequesterID, job.OrganizationDomain)
	if err != nil {
		return failJob("Could not save the generated course", err)
	}

	payload, err := json.Marshal(graph)
	if err != nil {
		return failJob("Could not store the generation result", err)
	}
	if err := r.jobs.MarkCompleted(ctx, job.ID, payload, courseID); err != nil {
		return fmt.Errorf("mark job completed: %w", err)
	}

	log.Info("worker.job.completed", "course_id", courseID, "lessons", len(graph.Lessons))
	return nil
}

// attachVideos looks up one video per lesson, best-effort: a failed or
// empty lookup leaves the lesson's video field unset and the job keeps
// going. Progress advances proportionally from 50 to 70.
func (r *Runner) attachVideos(ctx context.Context, job *entity.GenerationJob, graph *llm.CourseGraph, progress func(int, string) error) error {
	if r.videos == nil || !r.videos.Enabled() {
		return progress(70, "Finalizing lessons")
	}
	total := len(graph.Lessons)
	for i := range graph.Lessons {
		l := &graph.Lessons[i]
		if l.VideoURL == "" {
			url, err := r.videos.LookupURL(ctx, l.Title+" "+job.CourseName)
			if err != nil {
				r.logger.Warn("worker.video.lookup_failed", "job_id", job.ID, "lesson", l.Title, "err", err)
			} else if url != "" {
				l.VideoURL = url
			}
		}
		pct := 50 + (20*(i+1))/total
		if err := progress(pct, fmt.Sprintf("Finding videos (%d/%d)", i+1, total)); err != nil {
			return err
		}
	}
	return nil
}

func validateGraph(graph *llm.CourseGraph) error {
	b, err := json.Marshal(graph)
	if err != nil {
		return err
	}
	return llm.ValidateCourseGraphJSON(b)
}
