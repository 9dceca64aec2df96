package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mbrennan/fitlog/internal/domain"
)

// WorkoutType fixtures

func NewTestType(name string) *domain.WorkoutType {
	return &domain.WorkoutType{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// WorkoutSession fixtures

type SessionOption func(*domain.WorkoutSession)

func WithStartedAt(t time.Time) SessionOption {
	return func(s *domain.WorkoutSession) {
		s.StartedAt = t
	}
}

func WithNote(note string) SessionOption {
	return func(s *domain.WorkoutSession) {
		s.Note = note
	}
}

func NewTestSession(workoutTypeID string, minutes int, opts ...SessionOption) *domain.WorkoutSession {
	now := time.Now().UTC()
	s := &domain.WorkoutSession{
		ID:            uuid.New().String(),
		WorkoutTypeID: workoutTypeID,
		StartedAt:     now.Add(-time.Duration(minutes) * time.Minute),
		Minutes:       minutes,
		CreatedAt:     now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SessionAt is shorthand for a session fixture pinned to an exact start
// instant, for aggregation tests that care about calendar placement.
func SessionAt(workoutTypeID string, startedAt time.Time, minutes int) *domain.WorkoutSession {
	return NewTestSession(workoutTypeID, minutes, WithStartedAt(startedAt))
}
