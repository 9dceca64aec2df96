package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mbrennan/fitlog/internal/domain"
	"github.com/mbrennan/fitlog/internal/repository"
	"github.com/mbrennan/fitlog/internal/stats"
)

type statsService struct {
	sessions repository.SessionRepo
	types    repository.WorkoutTypeRepo
}

func NewStatsService(sessions repository.SessionRepo, types repository.WorkoutTypeRepo) StatsService {
	return &statsService{sessions: sessions, types: types}
}

func (s *statsService) Summary(ctx context.Context) (domain.WorkoutStats, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return domain.WorkoutStats{}, fmt.Errorf("loading sessions: %w", err)
	}
	return stats.Compute(sessions), nil
}

func (s *statsService) Calendar(ctx context.Context, year int, month time.Month) (map[time.Time]int, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Second)

	sessions, err := s.sessions.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("loading sessions for %d-%02d: %w", year, month, err)
	}
	return stats.BucketByDay(sessions), nil
}

func (s *statsService) Weekly(ctx context.Context, weekStart time.Weekday, maxBuckets int) ([]stats.WeekBucket, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}
	return stats.BucketByWeek(sessions, weekStart, maxBuckets), nil
}

func (s *statsService) Distribution(ctx context.Context) ([]stats.CategoryBucket, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}

	types, err := s.types.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading workout types: %w", err)
	}
	names := make(map[string]string, len(types))
	for _, t := range types {
		names[t.ID] = t.Name
	}

	return stats.BucketByCategory(sessions, names), nil
}
