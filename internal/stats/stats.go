// Package stats computes derived workout statistics. Every function is a
// pure pass over an already-loaded session slice: deterministic, free of
// side effects, and safe to call repeatedly on the same input.
//
// Malformed sessions (negative duration, zero start time) are skipped
// defensively rather than failing the aggregation.
package stats

import (
	"math"
	"time"

	"github.com/mbrennan/fitlog/internal/domain"
)

// Compute summarizes a session set. Empty input yields all-zero stats.
//
// Training days count distinct local calendar dates. The weekly and monthly
// averages divide total minutes by the number of weeks/months spanned by the
// date range, with the divisor clamped to at least 1 so a single-day history
// still produces meaningful numbers.
func Compute(sessions []*domain.WorkoutSession) domain.WorkoutStats {
	var out domain.WorkoutStats

	days := make(map[time.Time]struct{})
	var minStart, maxStart time.Time

	for _, s := range sessions {
		if !s.Valid() {
			continue
		}
		out.TotalMinutes += s.Minutes
		out.TotalSessions++
		days[s.Day()] = struct{}{}

		if minStart.IsZero() || s.StartedAt.Before(minStart) {
			minStart = s.StartedAt
		}
		if maxStart.IsZero() || s.StartedAt.After(maxStart) {
			maxStart = s.StartedAt
		}
	}

	out.TrainingDays = len(days)
	if out.TotalSessions == 0 {
		return out
	}

	out.DateRangeDays = int(math.Ceil(maxStart.Sub(minStart).Hours() / 24))

	if out.TrainingDays > 0 {
		out.DailyAverage = float64(out.TotalMinutes) / float64(out.TrainingDays)
	}
	out.WeeklyAverage = float64(out.TotalMinutes) / float64(clampedPeriods(out.DateRangeDays, 7))
	out.MonthlyAverage = float64(out.TotalMinutes) / float64(clampedPeriods(out.DateRangeDays, 30))

	return out
}

// clampedPeriods returns ceil(rangeDays/periodDays), never below 1.
func clampedPeriods(rangeDays, periodDays int) int {
	periods := (rangeDays + periodDays - 1) / periodDays
	if periods < 1 {
		return 1
	}
	return periods
}
