// Package schema has models, constants and shared types for all parts of commitlens.
package schema

import "time"

// RawCommit is a single commit record yielded by a commit source.
// The author string is the raw identity as recorded in history; alias
// resolution happens downstream in the aggregator.
type RawCommit struct {
	Hash         string    `json:"hash"`
	Author       string    `json:"author"`
	Timestamp    time.Time `json:"timestamp"`
	LinesAdded   uint64    `json:"lines_added"`
	LinesDeleted uint64    `json:"lines_deleted"`
}

// ContributorStats holds the accumulated totals for one canonical contributor.
// Counts only ever grow while a run is accumulating.
type ContributorStats struct {
	Name         string `json:"name"`
	Commits      uint64 `json:"commits"`
	LinesAdded   uint64 `json:"lines_added"`
	LinesDeleted uint64 `json:"lines_deleted"`
}

// TimeSeriesPoint reports per-contributor commit counts within a single
// time bucket. Counts are per-bucket deltas, never cumulative; consumers
// that want running totals compute them on their side.
type TimeSeriesPoint struct {
	BucketStart time.Time         `json:"bucket_start"`
	Commits     map[string]uint64 `json:"commits"`
}

// AggregationResult is the artifact produced by Aggregator.Finalize.
// It is created once per run and treated as immutable afterwards;
// renderers never mutate it.
type AggregationResult struct {
	Contributors map[string]ContributorStats       `json:"contributors"`
	Series       map[Granularity][]TimeSeriesPoint `json:"series"`
	TotalCommits uint64                            `json:"total_commits"`
}

// SummaryRow is a single line of the contributor summary table.
type SummaryRow struct {
	Contributor  string `json:"contributor"`
	Commits      uint64 `json:"commits"`
	LinesAdded   uint64 `json:"lines_added"`
	LinesDeleted uint64 `json:"lines_deleted"`
}

// SeriesStats summarizes the bucket activity of one granularity.
type SeriesStats struct {
	Buckets       int     `json:"buckets"`
	MeanCommits   float64 `json:"mean_commits"`
	MedianCommits float64 `json:"median_commits"`
}

// GranularitySeries is the render-ready series for one granularity:
// contiguous, ordered by bucket start, with gap buckets present but empty.
type GranularitySeries struct {
	Granularity Granularity       `json:"granularity"`
	Points      []TimeSeriesPoint `json:"points"`
	Stats       SeriesStats       `json:"stats"`
}

// ReportView is the presentation shape handed to the terminal and HTML
// renderers. Contributors lists canonical names in summary order so that
// chart series and table rows agree.
type ReportView struct {
	Summary      []SummaryRow                      `json:"summary"`
	Total        SummaryRow                        `json:"total"`
	Contributors []string                          `json:"contributors"`
	Series       map[Granularity]GranularitySeries `json:"series"`
}
