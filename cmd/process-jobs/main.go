// process-jobs drains the pending generation-job backlog and exits.
// Intended to run from cron or a systemd timer; a second instance started
// while one is running exits immediately without touching the queue.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/amara-obi/course-gen/gen/ent"
	"github.com/amara-obi/course-gen/internal/common"
	"github.com/amara-obi/course-gen/internal/enrich"
	"github.com/amara-obi/course-gen/internal/llm/openai"
	"github.com/amara-obi/course-gen/internal/repository"
	"github.com/amara-obi/course-gen/internal/worker"
)

func main() {
	var (
		inmem    = flag.Bool("inmem", false, "use an in-memory SQLite database instead of DB_URL")
		once     = flag.Bool("once", false, "process at most one job then exit")
		migrate  = flag.Bool("migrate", false, "run schema creation before processing")
		lockFile = flag.String("lock-file", "", "override the worker lock file path")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *lockFile != "" {
		cfg.Worker.LockFile = *lockFile
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var entc *ent.Client
	if *inmem {
		var err error
		entc, err = repository.OpenSQLite(ctx, "", logger)
		if err != nil {
			logger.Error("opening in-memory store", "error", err)
			os.Exit(1)
		}
		defer func() { _ = entc.Close() }()
	} else {
		if cfg.Database.DSN == "" {
			logger.Error("DB_URL env var is required")
			os.Exit(2)
		}
		client, pool, err := repository.Open(ctx, repository.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("opening database", "error", err)
			os.Exit(1)
		}
		defer repository.Close(client, pool, logger)
		if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
			logger.Error("database health check failed", "error", err)
			os.Exit(1)
		}
		entc = client
		if *migrate {
			if err := entc.Schema.Create(ctx); err != nil {
				logger.Error("schema migration failed", "error", err)
				os.Exit(1)
			}
		}
	}

	jobsRepo := repository.NewGenerationJobRepository(entc, logger)
	coursesRepo := repository.NewCourseRepository(entc, logger)
	settingsRepo := repository.NewSettingsRepository(entc, logger)

	generator := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	videos := enrich.NewYouTubeClient(enrich.YouTubeConfig{
		APIKey:  cfg.Video.APIKey,
		BaseURL: cfg.Video.BaseURL,
		Timeout: cfg.Video.Timeout,
	}, logger)
	images := enrich.NewImageClient(enrich.ImageConfig{
		APIKey:   cfg.Images.APIKey,
		BaseURL:  cfg.Images.BaseURL,
		MediaDir: cfg.Images.MediaDir,
		Timeout:  cfg.Images.Timeout,
	}, logger)

	lock := worker.NewFileLock(cfg.Worker.LockFile, cfg.Worker.StaleThreshold, logger)
	runner := worker.NewRunner(
		logger,
		lock,
		jobsRepo,
		coursesRepo,
		settingsRepo,
		generator,
		videos,
		images,
		cfg.Worker.StaleThreshold,
	)
	if *once {
		runner.MaxJobs(1)
	}

	// per-job failures land on the job rows; an error here means the store
	// itself is broken
	if err := runner.Run(ctx); err != nil {
		logger.Error("worker run aborted", "error", err)
		os.Exit(1)
	}
}
