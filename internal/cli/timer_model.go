package cli

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mbrennan/fitlog/internal/cli/formatter"
	"github.com/mbrennan/fitlog/internal/timer"
)

// timerTickMsg refreshes the elapsed display once per second. The tick only
// redraws: elapsed time is always re-derived from the clock inside the
// Timer, so missed ticks never skew the result.
type timerTickMsg struct{}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

type timerKeyMap struct {
	Toggle  key.Binding
	Save    key.Binding
	Restart key.Binding
	Discard key.Binding
}

func defaultTimerKeys() timerKeyMap {
	return timerKeyMap{
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save session")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Discard: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "discard")),
	}
}

// timerModel is the bubbletea model for the live stopwatch view.
type timerModel struct {
	width  int
	height int

	typeName string
	tm       *timer.Timer
	keys     timerKeyMap

	saving    bool
	discarded bool
}

func newTimerModel(typeName string, tm *timer.Timer) timerModel {
	return timerModel{
		typeName: typeName,
		tm:       tm,
		keys:     defaultTimerKeys(),
	}
}

func (m timerModel) Init() tea.Cmd {
	return timerTick()
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		// Keep the refresh chain alive only while running; it is restarted
		// on resume and must not outlive the Running state.
		if m.tm.Running() {
			return m, timerTick()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Toggle):
			switch m.tm.State() {
			case timer.StateRunning:
				_ = m.tm.Pause()
				return m, nil
			case timer.StatePaused:
				_ = m.tm.Resume()
				return m, timerTick()
			}
			return m, nil

		case key.Matches(msg, m.keys.Save):
			m.saving = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Restart):
			wasRunning := m.tm.Running()
			m.tm.Reset()
			_ = m.tm.Start()
			if !wasRunning {
				// The old tick chain died when the timer paused.
				return m, timerTick()
			}
			return m, nil

		case key.Matches(msg, m.keys.Discard):
			m.discarded = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m timerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := formatter.StyleHeader.Render("TRACKING " + m.typeName)

	clockStyle := formatter.StyleBold
	stateLabel := formatter.StyleGreen.Render("● running")
	if m.tm.State() == timer.StatePaused {
		clockStyle = formatter.StyleDim
		stateLabel = formatter.StyleYellow.Render("❚❚ paused")
	}
	clock := clockStyle.Render(bigClock(formatter.FormatClock(m.tm.ElapsedSeconds())))

	help := formatter.Dim(helpLine(m.keys.Toggle, m.keys.Save, m.keys.Restart, m.keys.Discard))

	content := lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		clock,
		"",
		stateLabel,
		"",
		help,
	)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// helpLine joins key bindings into a single "key action · key action" line.
func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " · "
		}
		out += b.Help().Key + " " + b.Help().Desc
	}
	return out
}

// bigClock renders the clock string with wide spacing so it reads as the
// centerpiece of the view.
func bigClock(clock string) string {
	spaced := ""
	for i, r := range clock {
		if i > 0 {
			spaced += " "
		}
		spaced += string(r)
	}
	return lipgloss.NewStyle().Padding(1, 3).Render(spaced)
}
