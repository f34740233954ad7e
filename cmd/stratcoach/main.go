package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/stratcoach/internal/cli"
	"github.com/alexanderramin/stratcoach/internal/config"
	"github.com/alexanderramin/stratcoach/internal/db"
	"github.com/alexanderramin/stratcoach/internal/llm"
	"github.com/alexanderramin/stratcoach/internal/logging"
	"github.com/alexanderramin/stratcoach/internal/repository"
	"github.com/alexanderramin/stratcoach/internal/service"
	"github.com/alexanderramin/stratcoach/internal/wizard"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	reportDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("finding working directory: %w", err)
	}

	app := &cli.App{
		Config:    &cfg,
		Setup:     setup,
		ReportDir: reportDir,
		In:        os.Stdin,
		Out:       os.Stdout,
		IsInteractive: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
	defer app.Close()

	return cli.NewRootCmd(app).Execute()
}

// setup wires the runtime once flags have been applied to app.Config.
func setup(app *cli.App) error {
	cfg := app.Config

	logger, logCloser, err := logging.NewLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	app.AddCloser(logCloser)
	app.Logger = logger

	var observers llm.MultiObserver
	if cfg.LLM.LogCalls {
		observers = append(observers, llm.NewLogObserver(logger))
	}

	if cfg.JournalPath != "" {
		database, err := db.OpenDB(cfg.JournalPath)
		if err != nil {
			return fmt.Errorf("opening journal: %w", err)
		}
		app.AddCloser(database)

		journal := service.NewJournalService(
			repository.NewSQLiteJournalSessionRepo(database),
			repository.NewSQLiteCallRepo(database),
			db.NewSQLiteUnitOfWork(database),
			service.NewLogUseCaseObserver(logger),
		)
		app.Journal = journal
		observers = append(observers, service.NewJournalObserver(journal, logger))
	}

	factory := llm.NewFactory(&cfg.LLM, observers)
	app.Wizard = wizard.New("", factory, cfg.Wizard)
	return nil
}
