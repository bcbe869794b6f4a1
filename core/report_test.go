package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commitlens/commitlens/schema"
)

func TestAssembleReportOrdering(t *testing.T) {
	res := &schema.AggregationResult{
		Contributors: map[string]schema.ContributorStats{
			"carol": {Name: "carol", Commits: 5},
			"alice": {Name: "alice", Commits: 9},
			"bob":   {Name: "bob", Commits: 5},
			"dave":  {Name: "dave", Commits: 1},
		},
		Series:       map[schema.Granularity][]schema.TimeSeriesPoint{},
		TotalCommits: 20,
	}

	view := AssembleReport(res)

	// Commits descending, name ascending on ties.
	require.Len(t, view.Summary, 4)
	assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, view.Contributors)
	assert.Equal(t, uint64(9), view.Summary[0].Commits)

	// Rebuilding from the same result yields the identical order.
	again := AssembleReport(res)
	assert.Equal(t, view.Summary, again.Summary)
}

func TestAssembleReportTotalRow(t *testing.T) {
	res := &schema.AggregationResult{
		Contributors: map[string]schema.ContributorStats{
			"John": {Name: "John", Commits: 2, LinesAdded: 150, LinesDeleted: 15},
			"jane": {Name: "jane", Commits: 1, LinesAdded: 20, LinesDeleted: 2},
		},
		Series:       map[schema.Granularity][]schema.TimeSeriesPoint{},
		TotalCommits: 3,
	}

	view := AssembleReport(res)

	assert.Equal(t, TotalRowName, view.Total.Contributor)
	assert.Equal(t, uint64(3), view.Total.Commits)
	assert.Equal(t, uint64(170), view.Total.LinesAdded)
	assert.Equal(t, uint64(17), view.Total.LinesDeleted)
}

func TestAssembleReportGapFilling(t *testing.T) {
	utc := time.UTC
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, utc)
	apr := time.Date(2024, 4, 1, 0, 0, 0, 0, utc)

	res := &schema.AggregationResult{
		Contributors: map[string]schema.ContributorStats{
			"x": {Name: "x", Commits: 2},
		},
		Series: map[schema.Granularity][]schema.TimeSeriesPoint{
			schema.MonthBucket: {
				{BucketStart: jan, Commits: map[string]uint64{"x": 1}},
				{BucketStart: apr, Commits: map[string]uint64{"x": 1}},
			},
		},
		TotalCommits: 2,
	}

	view := AssembleReport(res)

	series := view.Series[schema.MonthBucket]
	require.Len(t, series.Points, 4)
	assert.Equal(t, jan, series.Points[0].BucketStart)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, utc), series.Points[1].BucketStart)
	assert.Empty(t, series.Points[1].Commits)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, utc), series.Points[2].BucketStart)
	assert.Empty(t, series.Points[2].Commits)
	assert.Equal(t, apr, series.Points[3].BucketStart)

	// Stats over the filled series: totals are 1, 0, 0, 1.
	assert.Equal(t, 4, series.Stats.Buckets)
	assert.InDelta(t, 0.5, series.Stats.MeanCommits, 1e-9)
	assert.InDelta(t, 0.5, series.Stats.MedianCommits, 1e-9)
}

func TestAssembleReportEmpty(t *testing.T) {
	res := &schema.AggregationResult{
		Contributors: map[string]schema.ContributorStats{},
		Series:       map[schema.Granularity][]schema.TimeSeriesPoint{schema.DayBucket: {}},
	}

	view := AssembleReport(res)
	assert.Empty(t, view.Summary)
	assert.Zero(t, view.Total.Commits)
	assert.Empty(t, view.Series[schema.DayBucket].Points)
	assert.Zero(t, view.Series[schema.DayBucket].Stats.Buckets)
}
