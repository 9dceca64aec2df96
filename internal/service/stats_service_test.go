package service

import (
	"context"
	"testing"
	"time"

	"github.com/mbrennan/fitlog/internal/domain"
	"github.com/mbrennan/fitlog/internal/repository"
	"github.com/mbrennan/fitlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsServiceSetup(t *testing.T) (StatsService, TypeService, SessionService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	typeRepo := repository.NewSQLiteWorkoutTypeRepo(database)
	sessRepo := repository.NewSQLiteSessionRepo(database)
	uow := testutil.NewTestUoW(database)
	clock := testutil.NewClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	return NewStatsService(sessRepo, typeRepo),
		NewTypeService(typeRepo, sessRepo, uow),
		NewSessionService(sessRepo, clock)
}

func TestStatsService_Summary(t *testing.T) {
	statsSvc, types, sessions := statsServiceSetup(t)
	ctx := context.Background()

	wt, err := types.Create(ctx, "Running")
	require.NoError(t, err)

	_, err = sessions.Log(ctx, wt.ID, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), 30, "")
	require.NoError(t, err)
	_, err = sessions.Log(ctx, wt.ID, time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC), 30, "")
	require.NoError(t, err)

	got, err := statsSvc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, got.TotalMinutes)
	assert.Equal(t, 2, got.TrainingDays)
	assert.Equal(t, 2, got.DateRangeDays)
	assert.InDelta(t, 30, got.DailyAverage, 1e-9)
	assert.InDelta(t, 60, got.WeeklyAverage, 1e-9)
}

func TestStatsService_Summary_Empty(t *testing.T) {
	statsSvc, _, _ := statsServiceSetup(t)
	ctx := context.Background()

	got, err := statsSvc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkoutStats{}, got)
}

func TestStatsService_Calendar_BoundedToMonth(t *testing.T) {
	statsSvc, types, sessions := statsServiceSetup(t)
	ctx := context.Background()

	wt, err := types.Create(ctx, "Running")
	require.NoError(t, err)

	inMonth := time.Date(2024, 6, 10, 8, 0, 0, 0, time.Local)
	lastDay := time.Date(2024, 6, 30, 22, 0, 0, 0, time.Local)
	prevMonth := time.Date(2024, 5, 31, 8, 0, 0, 0, time.Local)

	for _, s := range []struct {
		at  time.Time
		min int
	}{{inMonth, 30}, {lastDay, 45}, {prevMonth, 60}} {
		_, err = sessions.Log(ctx, wt.ID, s.at, s.min, "")
		require.NoError(t, err)
	}

	days, err := statsSvc.Calendar(ctx, 2024, time.June)
	require.NoError(t, err)

	total := 0
	for _, min := range days {
		total += min
	}
	assert.Equal(t, 75, total, "May session must not leak into June")
	assert.Len(t, days, 2)
}

func TestStatsService_Calendar_KeysAreLocalMidnights(t *testing.T) {
	statsSvc, types, sessions := statsServiceSetup(t)
	ctx := context.Background()

	wt, err := types.Create(ctx, "Running")
	require.NoError(t, err)

	_, err = sessions.Log(ctx, wt.ID, time.Date(2024, 6, 10, 19, 30, 0, 0, time.Local), 60, "")
	require.NoError(t, err)

	days, err := statsSvc.Calendar(ctx, 2024, time.June)
	require.NoError(t, err)

	// The calendar renderer indexes the map with local midnights; a key in
	// any other location would render the trained day at zero intensity.
	assert.Equal(t, 60, days[time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)])
}

func TestStatsService_Weekly(t *testing.T) {
	statsSvc, types, sessions := statsServiceSetup(t)
	ctx := context.Background()

	wt, err := types.Create(ctx, "Running")
	require.NoError(t, err)

	// Two sessions a week apart.
	_, err = sessions.Log(ctx, wt.ID, time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC), 30, "")
	require.NoError(t, err)
	_, err = sessions.Log(ctx, wt.ID, time.Date(2024, 6, 9, 8, 0, 0, 0, time.UTC), 45, "")
	require.NoError(t, err)

	buckets, err := statsSvc.Weekly(ctx, time.Sunday, 8)
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, 30, buckets[0].Minutes)
	assert.Equal(t, 45, buckets[1].Minutes)
	assert.True(t, buckets[0].WeekStart.Before(buckets[1].WeekStart))
}

func TestStatsService_Distribution_UnknownForDeletedType(t *testing.T) {
	statsSvc, types, sessions := statsServiceSetup(t)
	ctx := context.Background()

	run, err := types.Create(ctx, "Running")
	require.NoError(t, err)
	lift, err := types.Create(ctx, "Lifting")
	require.NoError(t, err)

	_, err = sessions.Log(ctx, run.ID, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC), 30, "")
	require.NoError(t, err)
	_, err = sessions.Log(ctx, lift.ID, time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC), 90, "")
	require.NoError(t, err)

	// Deleting (not purging) leaves orphaned sessions behind.
	require.NoError(t, types.Delete(ctx, run.ID))

	buckets, err := statsSvc.Distribution(ctx)
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, "Lifting", buckets[0].Name)
	assert.Equal(t, 90, buckets[0].Minutes)
	assert.Equal(t, domain.UnknownTypeName, buckets[1].Name)
	assert.Equal(t, 30, buckets[1].Minutes)
}
