package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mbrennan/fitlog/internal/cli/formatter"
	"github.com/mbrennan/fitlog/internal/domain"
)

func fitlogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("must not be empty")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.Local); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateTimeOfDay(s string) error {
	if _, err := time.Parse("15:04", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use HH:MM (24h)")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive integer")
	}
	return nil
}

// typeNameForm collects a workout type name.
func typeNameForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Workout Type Name").
				Placeholder("Running").
				Value(value).
				Validate(validateNonEmpty),
		),
	).WithTheme(fitlogHuhTheme()).WithShowHelp(false)
}

// typeSelectForm collects a workout type choice from existing types.
func typeSelectForm(types []*domain.WorkoutType, value *string) *huh.Form {
	options := make([]huh.Option[string], len(types))
	for i, t := range types {
		options[i] = huh.NewOption(t.Name, t.ID)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Workout Type").
				Options(options...).
				Value(value),
		),
	).WithTheme(fitlogHuhTheme()).WithShowHelp(false)
}

// sessionLogForm collects the fields for a manually entered session.
func sessionLogForm(types []*domain.WorkoutType, typeID, date, timeOfDay, minutes, note *string) *huh.Form {
	options := make([]huh.Option[string], len(types))
	for i, t := range types {
		options[i] = huh.NewOption(t.Name, t.ID)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Workout Type").
				Options(options...).
				Value(typeID),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Placeholder(time.Now().Format("2006-01-02")).
				Value(date).
				Validate(validateDate),
			huh.NewInput().
				Title("Start Time (HH:MM)").
				Placeholder("18:30").
				Value(timeOfDay).
				Validate(validateTimeOfDay),
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder("45").
				Value(minutes).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Note (optional)").
				Value(note),
		),
	).WithTheme(fitlogHuhTheme()).WithShowHelp(false)
}

// runSessionForm runs the manual-entry form and parses its values.
func runSessionForm(ctx context.Context, app *App) (typeID string, startedAt time.Time, minutes int, note string, err error) {
	types, err := app.Types.List(ctx)
	if err != nil {
		return "", time.Time{}, 0, "", err
	}
	if len(types) == 0 {
		return "", time.Time{}, 0, "", fmt.Errorf("no workout types defined yet (run 'fitlog type add')")
	}

	date := time.Now().Format("2006-01-02")
	timeOfDay := time.Now().Format("15:04")
	minutesStr := ""

	if err := sessionLogForm(types, &typeID, &date, &timeOfDay, &minutesStr, &note).Run(); err != nil {
		return "", time.Time{}, 0, "", err
	}

	startedAt, err = parseDateTime(date, timeOfDay)
	if err != nil {
		return "", time.Time{}, 0, "", err
	}
	minutes, err = strconv.Atoi(strings.TrimSpace(minutesStr))
	if err != nil {
		return "", time.Time{}, 0, "", fmt.Errorf("parsing duration: %w", err)
	}
	return typeID, startedAt, minutes, note, nil
}

// parseDateTime combines YYYY-MM-DD and HH:MM strings into a local time.
func parseDateTime(date, timeOfDay string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04",
		strings.TrimSpace(date)+" "+strings.TrimSpace(timeOfDay), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date/time: %w", err)
	}
	return t, nil
}
