package core

import (
	"errors"
	"sort"
	"time"

	"github.com/commitlens/commitlens/schema"
)

// ErrAggregatorFinalized is returned when Ingest is called after
// Finalize, or Finalize is called twice. Either one is a programming
// error in the orchestration, not a runtime condition; it is reported
// rather than silently corrupting the accumulated state.
var ErrAggregatorFinalized = errors.New("aggregator already finalized")

// Aggregator consumes an ordered commit stream and accumulates totals
// per canonical contributor and per time bucket for every supported
// granularity. It exclusively owns all mutable state during a run and
// must not be shared across goroutines. The alias table is read-only
// and may be shared across aggregators.
type Aggregator struct {
	aliases      *AliasTable
	loc          *time.Location
	contributors map[string]*schema.ContributorStats
	buckets      map[schema.Granularity]map[time.Time]map[string]uint64
	total        uint64
	finalized    bool
}

// NewAggregator creates an empty aggregator. The location is the
// reference timezone used for calendar-aligned bucketing.
func NewAggregator(aliases *AliasTable, loc *time.Location) *Aggregator {
	buckets := make(map[schema.Granularity]map[time.Time]map[string]uint64, len(schema.AllGranularities))
	for _, g := range schema.AllGranularities {
		buckets[g] = make(map[time.Time]map[string]uint64)
	}
	return &Aggregator{
		aliases:      aliases,
		loc:          loc,
		contributors: make(map[string]*schema.ContributorStats),
		buckets:      buckets,
	}
}

// Ingest resolves the commit's author and folds the commit into the
// per-contributor totals and into the matching bucket of every
// granularity. The commit is trusted to be in scope: branch and date
// filtering happen upstream in the commit source.
func (a *Aggregator) Ingest(c schema.RawCommit) error {
	if a.finalized {
		return ErrAggregatorFinalized
	}

	name := a.aliases.Resolve(c.Author)

	st := a.contributors[name]
	if st == nil {
		st = &schema.ContributorStats{Name: name}
		a.contributors[name] = st
	}
	st.Commits++
	st.LinesAdded += c.LinesAdded
	st.LinesDeleted += c.LinesDeleted
	a.total++

	for _, g := range schema.AllGranularities {
		start := BucketStart(c.Timestamp, g, a.loc)
		counts := a.buckets[g][start]
		if counts == nil {
			counts = make(map[string]uint64)
			a.buckets[g][start] = counts
		}
		counts[name]++
	}

	return nil
}

// Count returns the number of commits ingested so far.
func (a *Aggregator) Count() uint64 {
	return a.total
}

// Finalize closes accumulation and returns the result snapshot. The
// snapshot is immutable from the caller's point of view; the aggregator
// releases ownership of the bucket maps and refuses further use.
func (a *Aggregator) Finalize() (*schema.AggregationResult, error) {
	if a.finalized {
		return nil, ErrAggregatorFinalized
	}
	a.finalized = true

	res := &schema.AggregationResult{
		Contributors: make(map[string]schema.ContributorStats, len(a.contributors)),
		Series:       make(map[schema.Granularity][]schema.TimeSeriesPoint, len(a.buckets)),
		TotalCommits: a.total,
	}

	for name, st := range a.contributors {
		res.Contributors[name] = *st
	}

	for g, byStart := range a.buckets {
		points := make([]schema.TimeSeriesPoint, 0, len(byStart))
		for start, counts := range byStart {
			points = append(points, schema.TimeSeriesPoint{BucketStart: start, Commits: counts})
		}
		sort.Slice(points, func(i, j int) bool {
			return points[i].BucketStart.Before(points[j].BucketStart)
		})
		res.Series[g] = points
	}

	return res, nil
}
