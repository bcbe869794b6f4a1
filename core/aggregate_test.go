package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commitlens/commitlens/schema"
)

func mustAliasTable(t *testing.T, directives ...string) *AliasTable {
	t.Helper()
	table, err := NewAliasTable(directives)
	require.NoError(t, err)
	return table
}

func TestAggregatorMergeScenario(t *testing.T) {
	table := mustAliasTable(t, "john.doe,JohnD=>John")
	agg := NewAggregator(table, time.UTC)

	base := time.Date(2024, time.May, 6, 10, 0, 0, 0, time.UTC)
	commits := []schema.RawCommit{
		{Hash: "a1", Author: "john.doe", Timestamp: base, LinesAdded: 100, LinesDeleted: 10},
		{Hash: "b2", Author: "JohnD", Timestamp: base.Add(time.Hour), LinesAdded: 50, LinesDeleted: 5},
		{Hash: "c3", Author: "jane", Timestamp: base.Add(2 * time.Hour), LinesAdded: 20, LinesDeleted: 2},
	}
	for _, c := range commits {
		require.NoError(t, agg.Ingest(c))
	}
	assert.Equal(t, uint64(3), agg.Count())

	res, err := agg.Finalize()
	require.NoError(t, err)

	require.Len(t, res.Contributors, 2)
	john := res.Contributors["John"]
	assert.Equal(t, uint64(2), john.Commits)
	assert.Equal(t, uint64(150), john.LinesAdded)
	assert.Equal(t, uint64(15), john.LinesDeleted)

	jane := res.Contributors["jane"]
	assert.Equal(t, uint64(1), jane.Commits)
	assert.Equal(t, uint64(20), jane.LinesAdded)
	assert.Equal(t, uint64(2), jane.LinesDeleted)

	assert.Equal(t, uint64(3), res.TotalCommits)
}

func TestAggregatorConservation(t *testing.T) {
	table := mustAliasTable(t, "a,b=>AB")
	agg := NewAggregator(table, time.UTC)

	base := time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC)
	var wantAdded, wantDeleted uint64
	authors := []string{"a", "b", "c", "d", "a", "c"}
	for i, author := range authors {
		c := schema.RawCommit{
			Author:       author,
			Timestamp:    base.AddDate(0, 0, i*5),
			LinesAdded:   uint64(i * 7),
			LinesDeleted: uint64(i * 3),
		}
		wantAdded += c.LinesAdded
		wantDeleted += c.LinesDeleted
		require.NoError(t, agg.Ingest(c))
	}

	res, err := agg.Finalize()
	require.NoError(t, err)

	// Commit and line counts are conserved across alias merging.
	var commits, added, deleted uint64
	for _, st := range res.Contributors {
		commits += st.Commits
		added += st.LinesAdded
		deleted += st.LinesDeleted
	}
	assert.Equal(t, uint64(len(authors)), commits)
	assert.Equal(t, wantAdded, added)
	assert.Equal(t, wantDeleted, deleted)

	// Bucket counts are conserved per granularity as well.
	for g, points := range res.Series {
		var bucketed uint64
		for _, p := range points {
			for _, n := range p.Commits {
				bucketed += n
			}
		}
		assert.Equal(t, uint64(len(authors)), bucketed, "granularity %s", g)
	}
}

func TestAggregatorIdenticalTimestampsShareBucket(t *testing.T) {
	agg := NewAggregator(mustAliasTable(t), time.UTC)
	ts := time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)

	require.NoError(t, agg.Ingest(schema.RawCommit{Author: "x", Timestamp: ts}))
	require.NoError(t, agg.Ingest(schema.RawCommit{Author: "y", Timestamp: ts}))

	res, err := agg.Finalize()
	require.NoError(t, err)
	for g, points := range res.Series {
		require.Len(t, points, 1, "granularity %s", g)
		assert.Equal(t, uint64(1), points[0].Commits["x"])
		assert.Equal(t, uint64(1), points[0].Commits["y"])
	}
}

func TestAggregatorEmptyStream(t *testing.T) {
	agg := NewAggregator(mustAliasTable(t), time.UTC)

	res, err := agg.Finalize()
	require.NoError(t, err)
	assert.Empty(t, res.Contributors)
	assert.Zero(t, res.TotalCommits)
	for g, points := range res.Series {
		assert.Empty(t, points, "granularity %s", g)
	}
}

func TestAggregatorUseAfterFinalize(t *testing.T) {
	agg := NewAggregator(mustAliasTable(t), time.UTC)
	_, err := agg.Finalize()
	require.NoError(t, err)

	err = agg.Ingest(schema.RawCommit{Author: "x", Timestamp: time.Now()})
	assert.ErrorIs(t, err, ErrAggregatorFinalized)

	_, err = agg.Finalize()
	assert.ErrorIs(t, err, ErrAggregatorFinalized)
}

func TestAggregatorSeriesSorted(t *testing.T) {
	agg := NewAggregator(mustAliasTable(t), time.UTC)
	// Ingest out of chronological order.
	times := []time.Time{
		time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	for _, ts := range times {
		require.NoError(t, agg.Ingest(schema.RawCommit{Author: "x", Timestamp: ts}))
	}

	res, err := agg.Finalize()
	require.NoError(t, err)
	for g, points := range res.Series {
		for i := 1; i < len(points); i++ {
			assert.True(t, points[i-1].BucketStart.Before(points[i].BucketStart), "granularity %s", g)
		}
	}
}
