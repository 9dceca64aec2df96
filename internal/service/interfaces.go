package service

import (
	"context"
	"time"

	"github.com/mbrennan/fitlog/internal/domain"
	"github.com/mbrennan/fitlog/internal/stats"
)

type TypeService interface {
	Create(ctx context.Context, name string) (*domain.WorkoutType, error)
	GetByID(ctx context.Context, id string) (*domain.WorkoutType, error)
	List(ctx context.Context) ([]*domain.WorkoutType, error)
	// Delete removes the type only; its sessions survive and display as
	// "Unknown". Purge removes the type together with its sessions in one
	// transaction.
	Delete(ctx context.Context, id string) error
	Purge(ctx context.Context, id string) error
}

type SessionService interface {
	// Log records a manually entered session with a user-supplied start
	// time and duration.
	Log(ctx context.Context, workoutTypeID string, startedAt time.Time, minutes int, note string) (*domain.WorkoutSession, error)
	// LogElapsed records a session from a finished timer run: the start
	// time is derived as now minus the elapsed time, and the duration is
	// the elapsed seconds rounded to whole minutes.
	LogElapsed(ctx context.Context, workoutTypeID string, elapsedSeconds int, note string) (*domain.WorkoutSession, error)
	GetByID(ctx context.Context, id string) (*domain.WorkoutSession, error)
	List(ctx context.Context) ([]*domain.WorkoutSession, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.WorkoutSession, error)
	ListByType(ctx context.Context, workoutTypeID string) ([]*domain.WorkoutSession, error)
	Delete(ctx context.Context, id string) error
}

type StatsService interface {
	Summary(ctx context.Context) (domain.WorkoutStats, error)
	// Calendar returns per-day minute totals for one calendar month.
	Calendar(ctx context.Context, year int, month time.Month) (map[time.Time]int, error)
	Weekly(ctx context.Context, weekStart time.Weekday, maxBuckets int) ([]stats.WeekBucket, error)
	Distribution(ctx context.Context) ([]stats.CategoryBucket, error)
}
