package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/xerplan/internal/cli"
	"github.com/alexanderramin/xerplan/internal/config"
	"github.com/alexanderramin/xerplan/internal/db"
	"github.com/alexanderramin/xerplan/internal/logging"
	"github.com/alexanderramin/xerplan/internal/repository"
	"github.com/alexanderramin/xerplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	// Open database
	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	logger.Debug("database opened", "path", cfg.DB.Path)

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	wbsRepo := repository.NewSQLiteWBSRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)
	relationshipRepo := repository.NewSQLiteRelationshipRepo(database)
	importRunRepo := repository.NewSQLiteImportRunRepo(database)

	// Wire unit of work for the import transaction
	uow := db.NewSQLiteUnitOfWork(database)

	observer := service.NewSlogUseCaseObserver(logger)

	app := &cli.App{
		Import:      service.NewImportService(projectRepo, activityRepo, uow, observer),
		Schedule:    service.NewScheduleService(projectRepo, wbsRepo, activityRepo, relationshipRepo, importRunRepo, observer),
		Projects:    service.NewProjectService(projectRepo, importRunRepo),
		HoursPerDay: cfg.Schedule.HoursPerDay,
		Strict:      cfg.Schedule.Strict,
	}

	// Prompts only make sense on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
