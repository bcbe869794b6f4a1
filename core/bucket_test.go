package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commitlens/commitlens/schema"
)

func TestBucketStartCalendarAlignment(t *testing.T) {
	utc := time.UTC
	// Wednesday, mid-afternoon.
	ts := time.Date(2024, time.March, 13, 15, 42, 7, 0, utc)

	tests := []struct {
		name string
		g    schema.Granularity
		want time.Time
	}{
		{"day truncates to midnight", schema.DayBucket, time.Date(2024, 3, 13, 0, 0, 0, 0, utc)},
		{"week starts on Monday", schema.WeekBucket, time.Date(2024, 3, 11, 0, 0, 0, 0, utc)},
		{"month starts on the 1st", schema.MonthBucket, time.Date(2024, 3, 1, 0, 0, 0, 0, utc)},
		{"year starts on Jan 1", schema.YearBucket, time.Date(2024, 1, 1, 0, 0, 0, 0, utc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BucketStart(ts, tt.g, utc))
		})
	}
}

func TestBucketStartWeekOnSundayAndMonday(t *testing.T) {
	utc := time.UTC
	monday := time.Date(2024, 3, 11, 0, 0, 0, 0, utc)

	// Sunday belongs to the week that started the previous Monday.
	sunday := time.Date(2024, time.March, 17, 23, 59, 59, 0, utc)
	assert.Equal(t, monday, BucketStart(sunday, schema.WeekBucket, utc))

	// A Monday is its own week start.
	assert.Equal(t, monday, BucketStart(monday, schema.WeekBucket, utc))
}

func TestBucketStartThreeDayGrid(t *testing.T) {
	utc := time.UTC

	// The 3-day grid is anchored at the epoch, so 1970-01-01, 1970-01-04,
	// ... are bucket starts regardless of month boundaries.
	tests := []struct {
		ts   time.Time
		want time.Time
	}{
		{time.Date(1970, 1, 1, 10, 0, 0, 0, utc), time.Date(1970, 1, 1, 0, 0, 0, 0, utc)},
		{time.Date(1970, 1, 3, 23, 0, 0, 0, utc), time.Date(1970, 1, 1, 0, 0, 0, 0, utc)},
		{time.Date(1970, 1, 4, 0, 0, 0, 0, utc), time.Date(1970, 1, 4, 0, 0, 0, 0, utc)},
		// 2024-03-01 is 19783 days after epoch; 19783 mod 3 == 1.
		{time.Date(2024, 3, 1, 12, 0, 0, 0, utc), time.Date(2024, 2, 29, 0, 0, 0, 0, utc)},
	}

	for _, tt := range tests {
		got := BucketStart(tt.ts, schema.ThreeDayBucket, utc)
		assert.Equal(t, tt.want, got, "timestamp %s", tt.ts)
	}
}

func TestBucketStartThreeDayGridContiguous(t *testing.T) {
	utc := time.UTC
	start := BucketStart(time.Date(2023, 12, 25, 0, 0, 0, 0, utc), schema.ThreeDayBucket, utc)

	// Walking the grid across a year boundary stays contiguous: each next
	// bucket is exactly three days later and every day maps into some bucket.
	cur := start
	for range 10 {
		next := NextBucketStart(cur, schema.ThreeDayBucket)
		assert.Equal(t, cur.AddDate(0, 0, 3), next)
		for d := range 3 {
			day := cur.AddDate(0, 0, d).Add(5 * time.Hour)
			assert.Equal(t, cur, BucketStart(day, schema.ThreeDayBucket, utc))
		}
		cur = next
	}
}

func TestBucketStartPreEpoch(t *testing.T) {
	utc := time.UTC
	ts := time.Date(1969, time.December, 30, 8, 0, 0, 0, utc)

	got := BucketStart(ts, schema.ThreeDayBucket, utc)
	// 1969-12-29 is 3 days before the epoch anchor, so it starts a bucket.
	assert.Equal(t, time.Date(1969, 12, 29, 0, 0, 0, 0, utc), got)
}

func TestBucketStartTimezone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 02:00 UTC on March 14 is still March 13 in New York.
	ts := time.Date(2024, time.March, 14, 2, 0, 0, 0, time.UTC)
	got := BucketStart(ts, schema.DayBucket, ny)
	assert.Equal(t, time.Date(2024, 3, 13, 0, 0, 0, 0, ny), got)
}

func TestBucketStartDeterministic(t *testing.T) {
	utc := time.UTC
	ts := time.Date(2024, time.July, 4, 12, 0, 0, 0, utc)
	for _, g := range schema.AllGranularities {
		first := BucketStart(ts, g, utc)
		assert.Equal(t, first, BucketStart(ts, g, utc), "granularity %s", g)
		assert.False(t, first.After(ts), "bucket start must not exceed the timestamp for %s", g)
	}
}

func TestNextBucketStartMonotonic(t *testing.T) {
	utc := time.UTC
	ts := time.Date(2024, time.January, 31, 23, 0, 0, 0, utc)
	for _, g := range schema.AllGranularities {
		start := BucketStart(ts, g, utc)
		next := NextBucketStart(start, g)
		assert.True(t, next.After(start), "granularity %s", g)
		// The next bucket start is itself aligned.
		assert.Equal(t, next, BucketStart(next, g, utc), "granularity %s", g)
	}
}
