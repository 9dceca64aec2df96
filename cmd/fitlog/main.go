package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mbrennan/fitlog/internal/cli"
	"github.com/mbrennan/fitlog/internal/db"
	"github.com/mbrennan/fitlog/internal/repository"
	"github.com/mbrennan/fitlog/internal/service"
	"github.com/mbrennan/fitlog/internal/timer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.fitlog/fitlog.db
	dbPath := os.Getenv("FITLOG_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".fitlog", "fitlog.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	typeRepo := repository.NewSQLiteWorkoutTypeRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)

	// Unit of work for transactional type purges
	uow := db.NewSQLiteUnitOfWork(database)

	clock := timer.SystemClock()

	app := &cli.App{
		Types:    service.NewTypeService(typeRepo, sessionRepo, uow),
		Sessions: service.NewSessionService(sessionRepo, clock),
		Stats:    service.NewStatsService(sessionRepo, typeRepo),
		Clock:    clock,
	}

	// Detect interactive terminal for the forms and the live timer.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
