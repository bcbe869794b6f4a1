package core

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/commitlens/commitlens/schema"
)

// TotalRowName labels the trailing summary row that sums all contributors.
const TotalRowName = "TOTAL"

// AssembleReport transforms a finalized aggregation result into the
// shapes the renderers consume: a contributor summary sorted by commit
// count (ties broken by name, so snapshot output is reproducible), a
// trailing TOTAL row, and a contiguous per-bucket time series for every
// granularity. The input is never mutated.
func AssembleReport(res *schema.AggregationResult) *schema.ReportView {
	rows := make([]schema.SummaryRow, 0, len(res.Contributors))
	for _, st := range res.Contributors {
		rows = append(rows, schema.SummaryRow{
			Contributor:  st.Name,
			Commits:      st.Commits,
			LinesAdded:   st.LinesAdded,
			LinesDeleted: st.LinesDeleted,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Commits != rows[j].Commits {
			return rows[i].Commits > rows[j].Commits
		}
		return rows[i].Contributor < rows[j].Contributor
	})

	total := schema.SummaryRow{Contributor: TotalRowName}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		total.Commits += r.Commits
		total.LinesAdded += r.LinesAdded
		total.LinesDeleted += r.LinesDeleted
		names = append(names, r.Contributor)
	}

	series := make(map[schema.Granularity]schema.GranularitySeries, len(res.Series))
	for g, points := range res.Series {
		filled := fillBucketGaps(points, g)
		series[g] = schema.GranularitySeries{
			Granularity: g,
			Points:      filled,
			Stats:       seriesStats(filled),
		}
	}

	return &schema.ReportView{
		Summary:      rows,
		Total:        total,
		Contributors: names,
		Series:       series,
	}
}

// fillBucketGaps inserts empty buckets between occupied ones so the
// series is contiguous from the first to the last active bucket. The
// input points are already sorted by bucket start.
func fillBucketGaps(points []schema.TimeSeriesPoint, g schema.Granularity) []schema.TimeSeriesPoint {
	if len(points) == 0 {
		return []schema.TimeSeriesPoint{}
	}
	filled := make([]schema.TimeSeriesPoint, 0, len(points))
	filled = append(filled, points[0])
	for _, p := range points[1:] {
		for next := NextBucketStart(filled[len(filled)-1].BucketStart, g); next.Before(p.BucketStart); next = NextBucketStart(next, g) {
			filled = append(filled, schema.TimeSeriesPoint{BucketStart: next, Commits: map[string]uint64{}})
		}
		filled = append(filled, p)
	}
	return filled
}

// seriesStats computes mean and median commits per bucket.
func seriesStats(points []schema.TimeSeriesPoint) schema.SeriesStats {
	if len(points) == 0 {
		return schema.SeriesStats{}
	}
	totals := make([]float64, len(points))
	for i, p := range points {
		var sum uint64
		for _, n := range p.Commits {
			sum += n
		}
		totals[i] = float64(sum)
	}
	mean, _ := stats.Mean(totals)
	median, _ := stats.Median(totals)
	return schema.SeriesStats{
		Buckets:       len(points),
		MeanCommits:   mean,
		MedianCommits: median,
	}
}
