package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mbrennan/fitlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionTestSetup creates a workout type and returns a session repo with its id.
func sessionTestSetup(t *testing.T) (*SQLiteSessionRepo, *SQLiteWorkoutTypeRepo, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	typeRepo := NewSQLiteWorkoutTypeRepo(database)
	sessRepo := NewSQLiteSessionRepo(database)

	wt := testutil.NewTestType("Running")
	require.NoError(t, typeRepo.Create(ctx, wt))

	return sessRepo, typeRepo, wt.ID
}

func TestSessionRepo_CreateAndGetByID(t *testing.T) {
	repo, _, typeID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(typeID, 45, testutil.WithNote("intervals"))
	require.NoError(t, repo.Create(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, fetched.ID)
	assert.Equal(t, typeID, fetched.WorkoutTypeID)
	assert.Equal(t, 45, fetched.Minutes)
	assert.Equal(t, "intervals", fetched.Note)
}

func TestSessionRepo_TimestampsSurfaceLocal(t *testing.T) {
	repo, _, typeID := sessionTestSetup(t)
	ctx := context.Background()

	// Late-evening session in a fixed non-UTC zone: the stored UTC form
	// falls on the next calendar day. The round trip must keep the instant
	// and come back in local time so Day() lands on the viewer's date.
	zone := time.FixedZone("UTC-5", -5*3600)
	startedAt := time.Date(2024, 6, 10, 23, 0, 0, 0, zone)
	sess := testutil.SessionAt(typeID, startedAt, 60)
	require.NoError(t, repo.Create(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, fetched.StartedAt.Equal(startedAt), "instant must survive the round trip")
	assert.Equal(t, time.Local, fetched.StartedAt.Location())
	assert.Equal(t, time.Local, fetched.Day().Location())
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	repo, _, _ := sessionTestSetup(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nonexistent")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_List_OrderedByStart(t *testing.T) {
	repo, _, typeID := sessionTestSetup(t)
	ctx := context.Background()

	s1 := testutil.NewTestSession(typeID, 30, testutil.WithStartedAt(time.Now().UTC().Add(-2*time.Hour)))
	s2 := testutil.NewTestSession(typeID, 45, testutil.WithStartedAt(time.Now().UTC().Add(-1*time.Hour)))
	require.NoError(t, repo.Create(ctx, s2))
	require.NoError(t, repo.Create(ctx, s1))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, s1.ID, list[0].ID)
	assert.Equal(t, s2.ID, list[1].ID)
}

func TestSessionRepo_ListByType(t *testing.T) {
	repo, typeRepo, typeID := sessionTestSetup(t)
	ctx := context.Background()

	other := testutil.NewTestType("Swimming")
	require.NoError(t, typeRepo.Create(ctx, other))

	require.NoError(t, repo.Create(ctx, testutil.NewTestSession(typeID, 30)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession(other.ID, 60)))

	list, err := repo.ListByType(ctx, typeID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, typeID, list[0].WorkoutTypeID)
}

func TestSessionRepo_ListByDateRange_InclusiveBounds(t *testing.T) {
	repo, _, typeID := sessionTestSetup(t)
	ctx := context.Background()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)

	before := testutil.SessionAt(typeID, start.Add(-time.Second), 10)
	onStart := testutil.SessionAt(typeID, start, 20)
	mid := testutil.SessionAt(typeID, start.AddDate(0, 0, 14), 30)
	onEnd := testutil.SessionAt(typeID, end, 40)
	after := testutil.SessionAt(typeID, end.Add(time.Second), 50)

	require.NoError(t, repo.Create(ctx, before))
	require.NoError(t, repo.Create(ctx, onStart))
	require.NoError(t, repo.Create(ctx, mid))
	require.NoError(t, repo.Create(ctx, onEnd))
	require.NoError(t, repo.Create(ctx, after))

	list, err := repo.ListByDateRange(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, list, 3, "both bounds are inclusive")
	assert.Equal(t, onStart.ID, list[0].ID)
	assert.Equal(t, mid.ID, list[1].ID)
	assert.Equal(t, onEnd.ID, list[2].ID)
}

func TestSessionRepo_Delete(t *testing.T) {
	repo, _, typeID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(typeID, 30)
	require.NoError(t, repo.Create(ctx, sess))
	require.NoError(t, repo.Delete(ctx, sess.ID))

	_, err := repo.GetByID(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_DeleteByType(t *testing.T) {
	repo, typeRepo, typeID := sessionTestSetup(t)
	ctx := context.Background()

	other := testutil.NewTestType("Swimming")
	require.NoError(t, typeRepo.Create(ctx, other))

	require.NoError(t, repo.Create(ctx, testutil.NewTestSession(typeID, 30)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession(typeID, 45)))
	kept := testutil.NewTestSession(other.ID, 60)
	require.NoError(t, repo.Create(ctx, kept))

	require.NoError(t, repo.DeleteByType(ctx, typeID))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, kept.ID, list[0].ID)
}

func TestSessionRepo_SessionsSurviveTypeDelete(t *testing.T) {
	repo, typeRepo, typeID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(typeID, 30)
	require.NoError(t, repo.Create(ctx, sess))
	require.NoError(t, typeRepo.Delete(ctx, typeID))

	// No cascade: the session still exists with a dangling type reference.
	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, typeID, fetched.WorkoutTypeID)
}
