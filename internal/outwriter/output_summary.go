package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/commitlens/commitlens/internal/contract"
	"github.com/commitlens/commitlens/internal/parquet"
	"github.com/commitlens/commitlens/schema"
)

// totalColor highlights the aggregate row in terminal output.
var totalColor = color.New(color.FgCyan, color.Bold)

// PrintSummaryResults outputs the contributor summary, dispatching based
// on the output format configured.
func PrintSummaryResults(view *schema.ReportView, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeSummaryJSONResults(view, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeSummaryCSVResults(view, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		outputFile := cfg.OutputFile
		if outputFile == "" {
			outputFile = "commitlens-summary.parquet"
		}
		if err := parquet.WriteSummaryParquet(view, outputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(color.Output, "💾 Wrote Parquet to %s\n", outputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(view, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// summaryPayload is the machine-readable shape for JSON output.
type summaryPayload struct {
	Summary []schema.SummaryRow `json:"summary"`
	Total   schema.SummaryRow   `json:"total"`
}

// writeSummaryJSONResults handles opening the file and calling the JSON writer.
func writeSummaryJSONResults(view *schema.ReportView, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, summaryPayload{Summary: view.Summary, Total: view.Total})
	}, "Wrote JSON")
}

// writeSummaryCSVResults handles opening the file and calling the CSV writer.
func writeSummaryCSVResults(view *schema.ReportView, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"contributor", "commits", "lines_added", "lines_deleted"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, r := range view.Summary {
				row := []string{
					r.Contributor,
					strconv.FormatUint(r.Commits, 10),
					strconv.FormatUint(r.LinesAdded, 10),
					strconv.FormatUint(r.LinesDeleted, 10),
				}
				if err := csvWriter.Write(row); err != nil {
					return err
				}
			}
			total := []string{
				view.Total.Contributor,
				strconv.FormatUint(view.Total.Commits, 10),
				strconv.FormatUint(view.Total.LinesAdded, 10),
				strconv.FormatUint(view.Total.LinesDeleted, 10),
			}
			return csvWriter.Write(total)
		})
	}, "Wrote CSV")
}

// writeSummaryTable generates and writes the human-readable table.
func writeSummaryTable(view *schema.ReportView, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Contributor", "Commits", "Added", "Deleted"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxNameWidth := GetMaxContributorWidth(cfg)
	var data [][]string
	for _, r := range view.Summary {
		data = append(data, []string{
			truncateName(r.Contributor, maxNameWidth),
			humanize.Comma(int64(r.Commits)),
			humanize.Comma(int64(r.LinesAdded)),
			humanize.Comma(int64(r.LinesDeleted)),
		})
	}

	totalName := view.Total.Contributor
	if cfg.UseColors {
		totalName = totalColor.Sprint(totalName)
	}
	data = append(data, []string{
		totalName,
		humanize.Comma(int64(view.Total.Commits)),
		humanize.Comma(int64(view.Total.LinesAdded)),
		humanize.Comma(int64(view.Total.LinesDeleted)),
	})

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d contributors (total commits: %s)\n",
		len(view.Summary), humanize.Comma(int64(view.Total.Commits))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Summary completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// PrintReportFooter prints a short confirmation after an HTML report is written.
func PrintReportFooter(view *schema.ReportView, cfg *contract.Config, duration time.Duration) {
	fmt.Printf("Report for %d contributors written to %s\n", len(view.Summary), cfg.ReportFile)
	fmt.Printf("Report completed in %v\n", duration)
}
