package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/gantt/internal/chart"
	"github.com/alexanderramin/gantt/internal/cli"
	"github.com/alexanderramin/gantt/internal/config"
	"github.com/alexanderramin/gantt/internal/db"
	"github.com/alexanderramin/gantt/internal/repository"
	"github.com/alexanderramin/gantt/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repository and unit of work
	workItemRepo := repository.NewSQLiteWorkItemRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var (
		useCaseObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
		chartObserver   chart.Observer          = chart.NoopObserver{}
	)
	if cfg.LogEvents {
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr)
		chartObserver = chart.NewLogObserver(os.Stderr)
	}

	app := &cli.App{
		WorkItems:     service.NewWorkItemService(workItemRepo, uow, useCaseObserver),
		Import:        service.NewImportService(workItemRepo, uow, useCaseObserver),
		Config:        cfg,
		ChartObserver: chartObserver,
	}

	// Detect interactive terminal for forms and the bare-root TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
