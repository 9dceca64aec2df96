package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		min  int
		want string
	}{
		{0, "0m"},
		{-10, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{600, "10h"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.min), "minutes %d", tt.min)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		sec  int
		want string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{61, "01:01"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{3725, "01:02:05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.sec), "seconds %d", tt.sec)
	}
}

func TestRenderTable_Alignment(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"NAME", "TIME"},
		[][]string{
			{"Running", "30m"},
			{"Yoga", "1h 15m"},
		},
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, lines[1], "─")
	// TIME column starts at the same offset in every row.
	assert.Equal(t, strings.Index(lines[0], "TIME"), strings.Index(lines[2], "30m"))
	assert.Equal(t, strings.Index(lines[0], "TIME"), strings.Index(lines[3], "1h 15m"))
}

func TestRenderCalendar_ShowsAllDays(t *testing.T) {
	out := stripANSI(RenderCalendar(2024, time.February, nil))

	assert.Contains(t, out, "February 2024")
	assert.Contains(t, out, "Su Mo Tu We Th Fr Sa")
	assert.Contains(t, out, "29", "2024 is a leap year")
	assert.NotContains(t, out, "30")
}

func TestRenderBars_ScalesToWidestValue(t *testing.T) {
	out := stripANSI(RenderBars([]BarRow{
		{Label: "Running", Minutes: 100},
		{Label: "Yoga", Minutes: 50},
	}, 10))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 10, strings.Count(lines[0], barBlock))
	assert.Equal(t, 5, strings.Count(lines[1], barBlock))
	assert.Contains(t, lines[0], "1h 40m")
}

func TestRenderBars_NonZeroGetsAtLeastOneBlock(t *testing.T) {
	out := stripANSI(RenderBars([]BarRow{
		{Label: "Big", Minutes: 1000},
		{Label: "Tiny", Minutes: 1},
	}, 20))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 1, strings.Count(lines[1], barBlock))
}

func TestRenderBars_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(RenderBars(nil, 20)), "No data")
}

func TestTruncID(t *testing.T) {
	long := "0123456789abcdef"
	assert.Equal(t, "01234567", stripANSI(TruncID(long)))
	assert.Equal(t, "short", stripANSI(TruncID("short")))
}
