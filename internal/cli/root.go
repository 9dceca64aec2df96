package cli

import (
	"github.com/mbrennan/fitlog/internal/service"
	"github.com/mbrennan/fitlog/internal/timer"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Types    service.TypeService
	Sessions service.SessionService
	Stats    service.StatsService

	// Clock drives the live timer; injectable for tests.
	Clock timer.Clock

	// IsInteractive reports whether stdin is a terminal, gating the
	// interactive forms and the live timer view.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) clock() timer.Clock {
	if a.Clock != nil {
		return a.Clock
	}
	return timer.SystemClock()
}

// NewRootCmd creates the top-level "fitlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "fitlog",
		Short: "Workout tracker with a live timer and training statistics",
	}

	root.AddCommand(
		newTypeCmd(app),
		newSessionCmd(app),
		newStartCmd(app),
		newStatsCmd(app),
		newCalendarCmd(app),
		newChartCmd(app),
	)

	return root
}
