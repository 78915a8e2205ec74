package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/GuilhermeVerrone/process-mapper/internal/canvas"
	"github.com/GuilhermeVerrone/process-mapper/internal/cli"
	"github.com/GuilhermeVerrone/process-mapper/internal/db"
	"github.com/GuilhermeVerrone/process-mapper/internal/repository"
	"github.com/GuilhermeVerrone/process-mapper/internal/service"
	"github.com/GuilhermeVerrone/process-mapper/internal/session"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.procmap/procmap.db
	dbPath := os.Getenv("PROCMAP_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".procmap", "procmap.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	areaRepo := repository.NewSQLiteAreaRepo(database)
	processRepo := repository.NewSQLiteProcessRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)
	authSessionRepo := repository.NewSQLiteAuthSessionRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if os.Getenv("PROCMAP_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	processSvc := service.NewProcessService(processRepo, observers...)

	app := &cli.App{
		Areas:     service.NewAreaService(areaRepo, uow, observers...),
		Processes: processSvc,
		Auth:      service.NewAuthService(userRepo, authSessionRepo),

		// The synchronizer talks to the process service through its
		// request/response port.
		Store: processSvc,

		SessionPath: session.DefaultPath(),
	}

	// Surface background sync failures on stderr when logging is on.
	app.CanvasObserver = canvas.NoopObserver{}
	if os.Getenv("PROCMAP_LOG") != "" {
		app.CanvasObserver = canvas.NewLogObserver(os.Stderr)
	}

	// Detect interactive terminal for the canvas and form entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
