package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mbrennan/fitlog/internal/domain"
	"github.com/mbrennan/fitlog/internal/repository"
	"github.com/mbrennan/fitlog/internal/timer"
)

type sessionService struct {
	sessions repository.SessionRepo
	clock    timer.Clock
}

// NewSessionService creates a SessionService. The clock is used to derive
// start times for timer-backed sessions; pass timer.SystemClock() outside
// tests.
func NewSessionService(sessions repository.SessionRepo, clock timer.Clock) SessionService {
	if clock == nil {
		clock = timer.SystemClock()
	}
	return &sessionService{sessions: sessions, clock: clock}
}

func (s *sessionService) Log(ctx context.Context, workoutTypeID string, startedAt time.Time, minutes int, note string) (*domain.WorkoutSession, error) {
	if workoutTypeID == "" {
		return nil, fmt.Errorf("workout type is required")
	}
	if minutes < 0 {
		return nil, fmt.Errorf("duration must not be negative")
	}
	if startedAt.IsZero() {
		return nil, fmt.Errorf("start time is required")
	}

	sess := &domain.WorkoutSession{
		ID:            uuid.New().String(),
		WorkoutTypeID: workoutTypeID,
		StartedAt:     startedAt,
		Minutes:       minutes,
		Note:          note,
		CreatedAt:     s.clock.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *sessionService) LogElapsed(ctx context.Context, workoutTypeID string, elapsedSeconds int, note string) (*domain.WorkoutSession, error) {
	if elapsedSeconds < 0 {
		return nil, fmt.Errorf("elapsed time must not be negative")
	}

	now := s.clock.Now()
	startedAt := now.Add(-time.Duration(elapsedSeconds) * time.Second)
	minutes := (elapsedSeconds + 30) / 60 // round to nearest whole minute

	return s.Log(ctx, workoutTypeID, startedAt, minutes, note)
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.WorkoutSession, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) List(ctx context.Context) ([]*domain.WorkoutSession, error) {
	return s.sessions.List(ctx)
}

func (s *sessionService) ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.WorkoutSession, error) {
	return s.sessions.ListByDateRange(ctx, start, end)
}

func (s *sessionService) ListByType(ctx context.Context, workoutTypeID string) ([]*domain.WorkoutSession, error) {
	return s.sessions.ListByType(ctx, workoutTypeID)
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	if _, err := s.sessions.GetByID(ctx, id); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, id)
}
