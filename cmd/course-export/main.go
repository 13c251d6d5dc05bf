// course-export writes the course catalog of an organization to an XLSX
// file for offline review.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/amara-obi/course-gen/internal/common"
	"github.com/amara-obi/course-gen/internal/export"
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
		inmem  = flag.Bool("inmem", false, "use in-memory SQLite database")
		domain = flag.String("domain", "", "organization domain filter (empty exports all)")
		out    = flag.String("out", "courses.xlsx", "output XLSX file path")
	)
	flag.Parse()

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()

	var coursesRepo repository.CourseRepository
	if *inmem {
		entc, err := repository.OpenSQLite(ctx, "", logger)
		if err != nil {
			printError("Error: opening in-memory store: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = entc.Close() }()
		coursesRepo = repository.NewCourseRepository(entc, logger)
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
		coursesRepo = repository.NewCourseRepository(entc, logger)
	}

	svc := export.NewService(coursesRepo, logger)
	data, err := svc.ExportCoursesXLSX(ctx, *domain)
	if err != nil {
		printError("Error: export failed: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		printError("Error: writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d bytes)\n", *out, len(data))
}
