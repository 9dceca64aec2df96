package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mbrennan/fitlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTypeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type",
		Short: "Manage workout types",
	}

	cmd.AddCommand(
		newTypeAddCmd(app),
		newTypeListCmd(app),
		newTypeRemoveCmd(app),
	)

	return cmd
}

func newTypeAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add [name]",
		Short: "Add a workout type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var name string
			if len(args) > 0 {
				name = args[0]
			} else if app.interactive() {
				if err := typeNameForm(&name).Run(); err != nil {
					return err
				}
			} else {
				return fmt.Errorf("type name is required")
			}

			wt, err := app.Types.Create(ctx, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added workout type %q (%s)\n", wt.Name, wt.ID)
			return nil
		},
	}
}

func newTypeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List workout types",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			types, err := app.Types.List(ctx)
			if err != nil {
				return err
			}
			if len(types) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workout types defined. Add one with 'fitlog type add'.")
				return nil
			}

			headers := []string{"ID", "NAME", "CREATED"}
			rows := make([][]string, 0, len(types))
			for _, t := range types {
				rows = append(rows, []string{
					formatter.TruncID(t.ID),
					t.Name,
					formatter.HumanDate(t.CreatedAt),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newTypeRemoveCmd(app *App) *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:   "rm <type>",
		Short: "Remove a workout type",
		Long: strings.TrimSpace(`
Remove a workout type by name or id. By default its sessions are kept and
shown under "Unknown"; with --purge the sessions are deleted as well.`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			wt, err := resolveType(ctx, app, args[0])
			if err != nil {
				return err
			}

			if purge {
				if err := app.Types.Purge(ctx, wt.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed workout type %q and its sessions\n", wt.Name)
				return nil
			}

			if err := app.Types.Delete(ctx, wt.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed workout type %q (sessions kept)\n", wt.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&purge, "purge", false, "Also delete all sessions of this type")

	return cmd
}
