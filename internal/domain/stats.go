package domain

// WorkoutStats is a derived summary over a set of sessions. It is a pure
// projection: recomputed on demand, never persisted or cached.
type WorkoutStats struct {
	TotalMinutes  int
	TotalSessions int
	TrainingDays  int

	// DateRangeDays is the span in whole days between the earliest and
	// latest session start, rounded up. 0 for empty or single-day sets.
	DateRangeDays int

	// Averages in minutes. Daily divides by training days; weekly and
	// monthly divide by the number of weeks/months covered by the date
	// range, each clamped to at least 1.
	DailyAverage   float64
	WeeklyAverage  float64
	MonthlyAverage float64
}
