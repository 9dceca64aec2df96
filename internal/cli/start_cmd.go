package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mbrennan/fitlog/internal/cli/formatter"
	"github.com/mbrennan/fitlog/internal/domain"
	"github.com/mbrennan/fitlog/internal/timer"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "start [type]",
		Short: "Start a live workout timer",
		Long: `Start a live stopwatch for a workout. Pause and resume freely; saving
records a session with the elapsed time, discarding records nothing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !app.interactive() {
				return fmt.Errorf("start requires an interactive terminal; use 'session log' instead")
			}

			var wt *domain.WorkoutType
			var err error
			if len(args) == 1 {
				wt, err = resolveType(ctx, app, args[0])
			} else {
				wt, err = pickType(ctx, app)
			}
			if err != nil {
				return err
			}

			tm := timer.New(app.clock())
			if err := tm.Start(); err != nil {
				return err
			}

			model := newTimerModel(wt.Name, tm)
			final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			if err != nil {
				return fmt.Errorf("run timer: %w", err)
			}

			result, ok := final.(timerModel)
			if !ok || !result.saving {
				tm.Reset()
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Discarded."))
				return nil
			}

			elapsed := tm.Stop()
			session, err := app.Sessions.LogElapsed(ctx, wt.ID, elapsed, note)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s session: %s (%s)\n",
				wt.Name,
				formatter.FormatMinutes(session.Minutes),
				formatter.FormatClock(elapsed))
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "note to attach to the saved session")

	return cmd
}

// pickType prompts for a workout type when none was given on the command
// line.
func pickType(ctx context.Context, app *App) (*domain.WorkoutType, error) {
	types, err := app.Types.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("no workout types defined; run 'fitlog type add' first")
	}

	var id string
	if err := typeSelectForm(types, &id).Run(); err != nil {
		return nil, err
	}
	for _, wt := range types {
		if wt.ID == id {
			return wt, nil
		}
	}
	return nil, fmt.Errorf("selected workout type %q no longer exists", id)
}
