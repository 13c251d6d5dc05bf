// enqueue inserts a generation job from the command line. Handy for local
// testing and for operators re-queuing a course without the admin API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/amara-obi/course-gen/internal/common"
	"github.com/amara-obi/course-gen/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem       = flag.Bool("inmem", false, "use in-memory SQLite database")
		name        = flag.String("name", "", "course name (required)")
		description = flag.String("description", "", "course description")
		difficulty  = flag.String("difficulty", "beginner", "beginner|intermediate|advanced")
		lessons     = flag.Int("lessons", 5, "number of lessons to generate")
		quiz        = flag.Bool("quiz", false, "generate a quiz per lesson")
		tutor       = flag.Bool("tutor", false, "generate AI tutor instructions per lesson")
		videos      = flag.Bool("videos", false, "attach video links per lesson")
		requester   = flag.String("requester", "", "requesting user UUID (required)")
		domain      = flag.String("domain", "", "organization domain the course belongs to")
	)
	flag.Parse()

	// Validate required flags
	if *name == "" {
		printError("Error: --name is required\n")
		os.Exit(1)
	}
	requesterID, err := uuid.Parse(*requester)
	if err != nil {
		printError("Error: --requester must be a valid UUID: %v\n", err)
		os.Exit(1)
	}
	if *lessons < 1 {
		printError("Error: --lessons must be at least 1\n")
		os.Exit(1)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()

	var jobsRepo repository.GenerationJobRepository
	if *inmem {
		entc, err := repository.OpenSQLite(ctx, "", logger)
		if err != nil {
			printError("Error: opening in-memory store: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = entc.Close() }()
		jobsRepo = repository.NewGenerationJobRepository(entc, logger)
	} else {
		if cfg.Database.DSN == "" {
			printError("Error: DB_URL env var is required\n")
			os.Exit(2)
		}
		entc, pool, err := repository.Open(ctx, repository.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
		if err != nil {
			printError("Error: opening DB: %v\n", err)
			os.Exit(1)
		}
		defer repository.Close(entc, pool, logger)
		jobsRepo = repository.NewGenerationJobRepository(entc, logger)
	}

	start := time.Now()
	job, err := jobsRepo.Enqueue(ctx, repository.EnqueueJobRequest{
		CourseName:         *name,
		CourseDescription:  *description,
		DifficultyLevel:    *difficulty,
		LessonCount:        *lessons,
		IncludeQuiz:        *quiz,
		IncludeAITutor:     *tutor,
		IncludeVideoLinks:  *videos,
		RequesterID:        requesterID,
		OrganizationDomain: *domain,
	})
	if err != nil {
		printError("Error: enqueue failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("enqueued job %s (%q, %d lessons) in %s\n", job.ID, job.CourseName, job.LessonCount, time.Since(start).Round(time.Millisecond))
}
