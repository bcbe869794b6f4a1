// Package parquet provides data structures and functions for exporting
// contributor summaries to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/commitlens/commitlens/schema"
)

// ContributorRow represents one contributor in the summary export.
type ContributorRow struct {
	// Name is the canonical contributor name after alias resolution
	Name string `parquet:"name,snappy"`

	// Commits is the number of commits attributed to the contributor
	Commits int64 `parquet:"commits,snappy"`

	// LinesAdded is the total lines added across those commits
	LinesAdded int64 `parquet:"lines_added,snappy"`

	// LinesDeleted is the total lines deleted across those commits
	LinesDeleted int64 `parquet:"lines_deleted,snappy"`

	// IsTotal marks the aggregate row that sums all contributors
	IsTotal bool `parquet:"is_total,snappy"`

	// ExportTime is when the summary was written
	ExportTime time.Time `parquet:"export_time,snappy"`
}

// WriteSummaryParquet writes the contributor summary, including the
// aggregate row, to a Parquet file.
func WriteSummaryParquet(view *schema.ReportView, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	now := time.Now()
	rows := make([]ContributorRow, 0, len(view.Summary)+1)
	for _, r := range view.Summary {
		rows = append(rows, ContributorRow{
			Name:         r.Contributor,
			Commits:      int64(r.Commits),
			LinesAdded:   int64(r.LinesAdded),
			LinesDeleted: int64(r.LinesDeleted),
			ExportTime:   now,
		})
	}
	rows = append(rows, ContributorRow{
		Name:         view.Total.Contributor,
		Commits:      int64(view.Total.Commits),
		LinesAdded:   int64(view.Total.LinesAdded),
		LinesDeleted: int64(view.Total.LinesDeleted),
		IsTotal:      true,
		ExportTime:   now,
	})

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ContributorRow struct tags
	writer := parquet.NewGenericWriter[ContributorRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
