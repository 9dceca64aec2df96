package domain

import "time"

// WorkoutType is a user-defined workout category such as "Running" or
// "Bench press". Types are immutable after creation; the only lifecycle
// operation besides create is delete.
type WorkoutType struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// WorkoutSession is one completed workout occurrence. Sessions keep a loose
// reference to their workout type: a session may outlive its type, in which
// case display falls back to UnknownTypeName.
type WorkoutSession struct {
	ID            string
	WorkoutTypeID string
	StartedAt     time.Time
	Minutes       int
	Note          string
	CreatedAt     time.Time
}

// UnknownTypeName is the display label for sessions whose workout type no
// longer exists.
const UnknownTypeName = "Unknown"

// Day returns the local calendar date of the session's start, truncated to
// midnight. Distinct-day counting uses this, not a rolling 24h window.
func (s *WorkoutSession) Day() time.Time {
	y, m, d := s.StartedAt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.StartedAt.Location())
}

// Valid reports whether the session is well-formed enough to aggregate.
// Malformed records (negative duration, zero start time) are skipped by the
// stats functions rather than failing the whole pass.
func (s *WorkoutSession) Valid() bool {
	return s.Minutes >= 0 && !s.StartedAt.IsZero()
}
