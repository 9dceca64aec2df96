package formatter

import (
	"fmt"
	"strings"
	"time"
)

// RenderCalendar renders one month as a weekday grid. Each day shows its
// number colored by training intensity from dayTotals (keys are local
// midnights, absent days count as zero). Weeks start on Sunday.
func RenderCalendar(year int, month time.Month, dayTotals map[time.Time]int) string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var b strings.Builder
	b.WriteString(StyleHeader.Render(first.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("Su Mo Tu We Th Fr Sa"))
	b.WriteString("\n")

	// Leading blanks up to the first weekday.
	col := int(first.Weekday())
	b.WriteString(strings.Repeat("   ", col))

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		cell := fmt.Sprintf("%2d", day)
		b.WriteString(HeatStyle(dayTotals[date]).Render(cell))

		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else {
			b.WriteString(" ")
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Dim("less "))
	for _, style := range heatStyles {
		b.WriteString(style.Render("■"))
	}
	b.WriteString(Dim(" more"))

	return b.String()
}
