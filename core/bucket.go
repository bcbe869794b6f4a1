package core

import (
	"time"

	"github.com/commitlens/commitlens/schema"
)

// BucketStart truncates a commit timestamp to the start of the bucket it
// belongs to, aligned in the reference location. Day, week, month and
// year buckets align to calendar boundaries (weeks start on Monday);
// 3-day buckets align to a fixed epoch-relative grid so that the grid
// stays contiguous across month and year boundaries.
//
// The function is pure: identical timestamp, granularity and location
// always produce the identical bucket start.
func BucketStart(t time.Time, g schema.Granularity, loc *time.Location) time.Time {
	lt := t.In(loc)
	switch g {
	case schema.DayBucket:
		year, month, day := lt.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, loc)
	case schema.ThreeDayBucket:
		year, month, day := lt.Date()
		days := civilDaysSinceEpoch(year, month, day)
		days -= floorMod(days, 3)
		aligned := time.Unix(days*secondsPerDay, 0).UTC()
		year, month, day = aligned.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, loc)
	case schema.WeekBucket:
		year, month, day := lt.Date()
		midnight := time.Date(year, month, day, 0, 0, 0, 0, loc)
		back := (int(midnight.Weekday()) + 6) % 7 // Monday start
		return midnight.AddDate(0, 0, -back)
	case schema.MonthBucket:
		year, month, _ := lt.Date()
		return time.Date(year, month, 1, 0, 0, 0, 0, loc)
	case schema.YearBucket:
		return time.Date(lt.Year(), time.January, 1, 0, 0, 0, 0, loc)
	default:
		panic("unrecognized granularity in switch")
	}
}

// NextBucketStart returns the start of the bucket immediately after the
// given bucket start. Together with BucketStart it guarantees that
// buckets for a granularity are contiguous and non-overlapping.
func NextBucketStart(start time.Time, g schema.Granularity) time.Time {
	switch g {
	case schema.DayBucket:
		return start.AddDate(0, 0, 1)
	case schema.ThreeDayBucket:
		return start.AddDate(0, 0, 3)
	case schema.WeekBucket:
		return start.AddDate(0, 0, 7)
	case schema.MonthBucket:
		return start.AddDate(0, 1, 0)
	case schema.YearBucket:
		return start.AddDate(1, 0, 0)
	default:
		panic("unrecognized granularity in switch")
	}
}

const secondsPerDay = 24 * 60 * 60

// civilDaysSinceEpoch counts whole civil days between 1970-01-01 and the
// given local date. Computed through UTC so the count stays integral
// regardless of the reference location's offset.
func civilDaysSinceEpoch(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

// floorMod returns x mod m with the sign of m, so pre-epoch dates still
// land on the same 3-day grid.
func floorMod(x, m int64) int64 {
	return ((x % m) + m) % m
}
