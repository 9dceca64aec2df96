package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mbrennan/fitlog/internal/cli/formatter"
	"github.com/mbrennan/fitlog/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage workout sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var typeRef, date, timeOfDay, note string
	var minutes int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a workout session",
		Long:  "Log a past workout manually. With no flags on a terminal, an interactive form is shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// No flags on a terminal: fall through to the form.
			if typeRef == "" && app.interactive() {
				typeID, startedAt, min, formNote, err := runSessionForm(ctx, app)
				if err != nil {
					return err
				}
				sess, err := app.Sessions.Log(ctx, typeID, startedAt, min, formNote)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %s session (%s)\n", formatter.FormatMinutes(sess.Minutes), sess.ID)
				return nil
			}

			wt, err := resolveType(ctx, app, typeRef)
			if err != nil {
				return err
			}

			startedAt := time.Now()
			if date != "" || timeOfDay != "" {
				if date == "" {
					date = time.Now().Format("2006-01-02")
				}
				if timeOfDay == "" {
					timeOfDay = "00:00"
				}
				startedAt, err = parseDateTime(date, timeOfDay)
				if err != nil {
					return err
				}
			}

			sess, err := app.Sessions.Log(ctx, wt.ID, startedAt, minutes, note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s %s session (%s)\n",
				formatter.FormatMinutes(sess.Minutes), wt.Name, sess.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&typeRef, "type", "", "Workout type (name or id)")
	cmd.Flags().StringVar(&date, "date", "", "Session date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Start time (HH:MM, 24h)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Session duration in minutes")
	cmd.Flags().StringVar(&note, "note", "", "Session note")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var from, to, typeRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workout sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var sessions []*domain.WorkoutSession
			var err error

			switch {
			case from != "" || to != "":
				start, end, rangeErr := parseRange(from, to)
				if rangeErr != nil {
					return rangeErr
				}
				sessions, err = app.Sessions.ListByDateRange(ctx, start, end)
			case typeRef != "":
				wt, resolveErr := resolveType(ctx, app, typeRef)
				if resolveErr != nil {
					return resolveErr
				}
				sessions, err = app.Sessions.ListByType(ctx, wt.ID)
			default:
				sessions, err = app.Sessions.List(ctx)
			}
			if err != nil {
				return err
			}

			if typeRef != "" && (from != "" || to != "") {
				wt, resolveErr := resolveType(ctx, app, typeRef)
				if resolveErr != nil {
					return resolveErr
				}
				filtered := sessions[:0]
				for _, s := range sessions {
					if s.WorkoutTypeID == wt.ID {
						filtered = append(filtered, s)
					}
				}
				sessions = filtered
			}

			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions found.")
				return nil
			}

			names, err := typeNameIndex(ctx, app)
			if err != nil {
				return err
			}

			headers := []string{"ID", "TYPE", "STARTED", "DURATION", "NOTE"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				name, ok := names[s.WorkoutTypeID]
				if !ok {
					name = formatter.Dim(domain.UnknownTypeName)
				}
				notePreview := s.Note
				if len(notePreview) > 40 {
					notePreview = notePreview[:37] + "..."
				}
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					name,
					formatter.HumanTimestamp(s.StartedAt),
					formatter.FormatMinutes(s.Minutes),
					notePreview,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "Range end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&typeRef, "type", "", "Filter by workout type (name or id)")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <session-id>",
		Short: "Remove a workout session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := app.Sessions.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session %s\n", args[0])
			return nil
		},
	}
}

// parseRange turns from/to date strings into an inclusive [start, end]
// range. Missing bounds default to the epoch and end of today.
func parseRange(from, to string) (time.Time, time.Time, error) {
	start := time.Time{}
	if from != "" {
		t, err := time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parsing --from: %w", err)
		}
		start = t
	}

	end := time.Now()
	if to != "" {
		t, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parsing --to: %w", err)
		}
		// End of the given day keeps the bound inclusive.
		end = t.AddDate(0, 0, 1).Add(-time.Second)
	}

	return start, end, nil
}

// typeNameIndex loads workout types as an id -> name map.
func typeNameIndex(ctx context.Context, app *App) (map[string]string, error) {
	types, err := app.Types.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(types))
	for _, t := range types {
		names[t.ID] = t.Name
	}
	return names, nil
}
