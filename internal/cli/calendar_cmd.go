package cli

import (
	"fmt"
	"time"

	"github.com/mbrennan/fitlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a monthly training heat map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.clock().Now()
			year, mon := now.Year(), now.Month()
			if month != "" {
				parsed, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM", month)
				}
				year, mon = parsed.Year(), parsed.Month()
			}

			dayTotals, err := app.Stats.Calendar(cmd.Context(), year, mon)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderCalendar(year, mon, dayTotals))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to show as YYYY-MM (default: current month)")

	return cmd
}
