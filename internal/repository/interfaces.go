package repository

import (
	"context"
	"time"

	"github.com/mbrennan/fitlog/internal/domain"
)

type WorkoutTypeRepo interface {
	Create(ctx context.Context, t *domain.WorkoutType) error
	GetByID(ctx context.Context, id string) (*domain.WorkoutType, error)
	List(ctx context.Context) ([]*domain.WorkoutType, error)
	Delete(ctx context.Context, id string) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.WorkoutSession) error
	GetByID(ctx context.Context, id string) (*domain.WorkoutSession, error)
	List(ctx context.Context) ([]*domain.WorkoutSession, error)
	ListByType(ctx context.Context, workoutTypeID string) ([]*domain.WorkoutSession, error)
	// ListByDateRange returns sessions with start <= started_at <= end,
	// ascending by start time. Both bounds are inclusive.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.WorkoutSession, error)
	Delete(ctx context.Context, id string) error
	DeleteByType(ctx context.Context, workoutTypeID string) error
}
