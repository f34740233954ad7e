package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/alexanderramin/stratcoach/internal/config"
	"github.com/alexanderramin/stratcoach/internal/domain"
	"github.com/alexanderramin/stratcoach/internal/service"
	"github.com/alexanderramin/stratcoach/internal/wizard"
	"github.com/spf13/cobra"
)

// App holds everything the commands need. Setup runs after flags are parsed
// and fills in the Wizard, Journal and Logger from Config.
type App struct {
	Config *config.Config
	Setup  func(*App) error

	Wizard  *wizard.Wizard
	Journal service.JournalService // nil unless the journal is enabled
	Logger  *slog.Logger

	// ReportDir is where saved strategic plan documents are written.
	ReportDir string

	IsInteractive func() bool
	In            io.Reader
	Out           io.Writer

	closers []io.Closer
}

// AddCloser registers a resource released by Close.
func (a *App) AddCloser(c io.Closer) {
	a.closers = append(a.closers, c)
}

// Close releases resources in reverse registration order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

// NewRootCmd creates the top-level "stratcoach" command. Without a
// subcommand it runs the wizard: the TUI on a terminal, line mode otherwise.
func NewRootCmd(app *App) *cobra.Command {
	if app.Config == nil {
		cfg := config.Load()
		app.Config = &cfg
	}

	root := &cobra.Command{
		Use:           "stratcoach",
		Short:         "Strategic planning coach backed by a language model",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if app.In == nil {
				app.In = cmd.InOrStdin()
			}
			if app.Out == nil {
				app.Out = cmd.OutOrStdout()
			}
			if app.Setup != nil {
				return app.Setup(app)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runWizard(ctx, app)
		},
	}

	bindFlags(root.PersistentFlags(), app.Config)

	root.AddCommand(newJournalCmd(app))

	return root
}

// runWizard picks the interactive surface and opens the journal session.
func runWizard(ctx context.Context, app *App) error {
	if app.Wizard == nil {
		return errors.New("wizard not configured")
	}

	if app.Journal != nil {
		err := app.Journal.StartSession(ctx, &domain.JournalSession{
			ID:       app.Wizard.SessionID(),
			Provider: string(app.Config.LLM.Provider),
			Model:    app.Config.LLM.Model,
		})
		if err != nil {
			app.logger().WarnContext(ctx, "journal_start_failed", slog.String("error", err.Error()))
		}
	}

	if app.IsInteractive != nil && app.IsInteractive() {
		return runTUI(app)
	}
	return runLineWizard(ctx, app)
}

// autoUnlock tries the pre-configured credential. Providers that need no key
// are unlocked with an empty one.
func autoUnlock(app *App) (tried bool, err error) {
	key := app.Config.APIKey
	if key == "" && app.Config.LLM.RequiresCredential() {
		return false, nil
	}
	return true, app.Wizard.SetCredential(key)
}
