package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const barBlock = "█"

// BarRow is one labeled value in a horizontal bar chart.
type BarRow struct {
	Label   string
	Minutes int
}

// RenderBars renders a horizontal bar chart. Bars are scaled to maxWidth
// against the largest value; every non-zero value gets at least one block.
func RenderBars(rows []BarRow, maxWidth int) string {
	if len(rows) == 0 {
		return Dim("No data.")
	}
	if maxWidth < 1 {
		maxWidth = 1
	}

	labelWidth := 0
	maxVal := 0
	for _, r := range rows {
		if w := lipgloss.Width(r.Label); w > labelWidth {
			labelWidth = w
		}
		if r.Minutes > maxVal {
			maxVal = r.Minutes
		}
	}

	var b strings.Builder
	for i, r := range rows {
		pad := labelWidth - lipgloss.Width(r.Label)
		b.WriteString(StyleFg.Render(r.Label))
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString("  ")

		width := 0
		if maxVal > 0 {
			width = r.Minutes * maxWidth / maxVal
			if width == 0 && r.Minutes > 0 {
				width = 1
			}
		}
		b.WriteString(StyleGreen.Render(strings.Repeat(barBlock, width)))
		b.WriteString(" ")
		b.WriteString(Dim(FormatMinutes(r.Minutes)))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
