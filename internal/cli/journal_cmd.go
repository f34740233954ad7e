package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/stratcoach/internal/cli/formatter"
	"github.com/alexanderramin/stratcoach/internal/repository"
	"github.com/spf13/cobra"
)

// errJournalDisabled is returned by the journal command when no journal
// database is configured.
var errJournalDisabled = errors.New("the call journal is disabled; set --journal or STRATCOACH_JOURNAL_DB")

func newJournalCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal [session-id]",
		Short: "List recorded wizard sessions, or the completion calls of one session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Journal == nil {
				return errJournalDisabled
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				sessions, err := app.Journal.ListSessions(ctx, limit)
				if err != nil {
					return fmt.Errorf("listing journal sessions: %w", err)
				}
				fmt.Fprint(out, formatter.FormatJournalSessions(sessions))
				return nil
			}

			session, err := app.Journal.GetSession(ctx, args[0])
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("no journal session %q", args[0])
			}
			if err != nil {
				return fmt.Errorf("loading journal session: %w", err)
			}
			calls, err := app.Journal.ListCalls(ctx, session.ID)
			if err != nil {
				return fmt.Errorf("listing completion calls: %w", err)
			}
			fmt.Fprint(out, formatter.FormatJournalCalls(session, calls))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum sessions to list (-1 for all)")

	return cmd
}
