package cli

import (
	"fmt"
	"time"

	"github.com/mbrennan/fitlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const chartBarWidth = 40

func newChartCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Chart training volume",
	}
	cmd.AddCommand(newChartWeeklyCmd(app), newChartTypesCmd(app))
	return cmd
}

func newChartWeeklyCmd(app *App) *cobra.Command {
	var weeks int

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Chart minutes per week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			buckets, err := app.Stats.Weekly(cmd.Context(), time.Sunday, weeks)
			if err != nil {
				return err
			}

			rows := make([]formatter.BarRow, 0, len(buckets))
			for _, b := range buckets {
				rows = append(rows, formatter.BarRow{
					Label:   b.WeekStart.Format("Jan 02"),
					Minutes: b.Minutes,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBars(rows, chartBarWidth))
			return nil
		},
	}

	cmd.Flags().IntVar(&weeks, "weeks", 8, "number of most recent weeks to chart")

	return cmd
}

func newChartTypesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Chart minutes per workout type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			buckets, err := app.Stats.Distribution(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([]formatter.BarRow, 0, len(buckets))
			for _, b := range buckets {
				rows = append(rows, formatter.BarRow{Label: b.Name, Minutes: b.Minutes})
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBars(rows, chartBarWidth))
			return nil
		},
	}
}
