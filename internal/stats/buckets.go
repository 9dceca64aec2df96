package stats

import (
	"sort"
	"time"

	"github.com/mbrennan/fitlog/internal/domain"
)

// WeekBucket is the total minutes trained in one week-aligned bucket.
type WeekBucket struct {
	WeekStart time.Time
	Minutes   int
}

// CategoryBucket is the total minutes trained for one workout type.
type CategoryBucket struct {
	Name    string
	Minutes int
}

// BucketByDay totals session minutes per local calendar date. Days with no
// sessions are absent from the map; consumers treat missing days as zero.
func BucketByDay(sessions []*domain.WorkoutSession) map[time.Time]int {
	buckets := make(map[time.Time]int)
	for _, s := range sessions {
		if !s.Valid() {
			continue
		}
		buckets[s.Day()] += s.Minutes
	}
	return buckets
}

// BucketByWeek groups sessions into week-aligned buckets whose boundary is
// the given start-of-week day, sorted ascending by week start. When
// maxBuckets > 0 the result is truncated to the most recent maxBuckets.
func BucketByWeek(sessions []*domain.WorkoutSession, weekStart time.Weekday, maxBuckets int) []WeekBucket {
	totals := make(map[time.Time]int)
	for _, s := range sessions {
		if !s.Valid() {
			continue
		}
		totals[weekStartOf(s.StartedAt, weekStart)] += s.Minutes
	}

	buckets := make([]WeekBucket, 0, len(totals))
	for ws, min := range totals {
		buckets = append(buckets, WeekBucket{WeekStart: ws, Minutes: min})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].WeekStart.Before(buckets[j].WeekStart)
	})

	if maxBuckets > 0 && len(buckets) > maxBuckets {
		buckets = buckets[len(buckets)-maxBuckets:]
	}
	return buckets
}

// weekStartOf returns the local midnight of the most recent weekStart day at
// or before t.
func weekStartOf(t time.Time, weekStart time.Weekday) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// BucketByCategory totals minutes per resolved workout-type name. Sessions
// whose type id is missing from typeNames are attributed to the Unknown
// label. Order is minutes descending, then name ascending, so output is
// deterministic for charting.
func BucketByCategory(sessions []*domain.WorkoutSession, typeNames map[string]string) []CategoryBucket {
	totals := make(map[string]int)
	for _, s := range sessions {
		if !s.Valid() {
			continue
		}
		name, ok := typeNames[s.WorkoutTypeID]
		if !ok || name == "" {
			name = domain.UnknownTypeName
		}
		totals[name] += s.Minutes
	}

	buckets := make([]CategoryBucket, 0, len(totals))
	for name, min := range totals {
		buckets = append(buckets, CategoryBucket{Name: name, Minutes: min})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Minutes != buckets[j].Minutes {
			return buckets[i].Minutes > buckets[j].Minutes
		}
		return buckets[i].Name < buckets[j].Name
	})
	return buckets
}
