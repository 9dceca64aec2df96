package cli

import (
	"fmt"
	"strconv"

	"github.com/mbrennan/fitlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show overall training statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Stats.Summary(cmd.Context())
			if err != nil {
				return err
			}

			if summary.TotalSessions == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No sessions logged yet."))
				return nil
			}

			rows := [][]string{
				{"Total time", formatter.FormatMinutes(summary.TotalMinutes)},
				{"Sessions", strconv.Itoa(summary.TotalSessions)},
				{"Training days", strconv.Itoa(summary.TrainingDays)},
				{"Date range", fmt.Sprintf("%d days", summary.DateRangeDays)},
				{"Daily average", formatAvg(summary.DailyAverage)},
				{"Weekly average", formatAvg(summary.WeeklyAverage)},
				{"Monthly average", formatAvg(summary.MonthlyAverage)},
			}

			table := formatter.RenderTable([]string{"Metric", "Value"}, rows)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Training Stats", table))
			return nil
		},
	}
}

// formatAvg renders an average in minutes, dropping the fraction when it is
// a whole number.
func formatAvg(min float64) string {
	if min == float64(int(min)) {
		return formatter.FormatMinutes(int(min))
	}
	return fmt.Sprintf("%.1fm", min)
}
