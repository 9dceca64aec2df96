package formatter

import "github.com/charmbracelet/lipgloss"

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Heat ramp for the calendar view, dark to bright green.
var heatStyles = []lipgloss.Style{
	StyleDim,
	lipgloss.NewStyle().Foreground(lipgloss.Color("#665c54")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#79740e")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#98971a")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#b8bb26")),
}

// HeatStyle maps a day's trained minutes to an intensity style. Thresholds
// roughly correspond to rest / short / normal / long / big days.
func HeatStyle(minutes int) lipgloss.Style {
	switch {
	case minutes <= 0:
		return heatStyles[0]
	case minutes < 20:
		return heatStyles[1]
	case minutes < 45:
		return heatStyles[2]
	case minutes < 90:
		return heatStyles[3]
	default:
		return heatStyles[4]
	}
}

// Dim renders text in the dim style.
func Dim(s string) string {
	return StyleDim.Render(s)
}
