// Package htmlreport renders contributor activity charts to a
// standalone HTML page using go-echarts.
package htmlreport

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/commitlens/commitlens/internal/contract"
	"github.com/commitlens/commitlens/schema"
)

const (
	chartWidth  = "1200px"
	chartHeight = "500px"

	// maxChartContributors caps the number of per-contributor series so
	// charts stay readable on busy repositories.
	maxChartContributors = 20

	areaOpacity = 0.4
)

// WriteReport renders one activity chart per configured granularity and
// writes the assembled page to cfg.ReportFile.
func WriteReport(view *schema.ReportView, cfg *contract.Config) error {
	page := components.NewPage()
	page.PageTitle = "commitlens report"

	for _, g := range cfg.Granularities {
		series, ok := view.Series[g]
		if !ok {
			continue
		}
		page.AddCharts(
			buildActivityChart(view, series),
			buildTrendChart(view, series),
		)
	}

	file, err := os.Create(cfg.ReportFile)
	if err != nil {
		return fmt.Errorf("failed to create report file %q: %w", cfg.ReportFile, err)
	}
	defer func() { _ = file.Close() }()

	if err := page.Render(file); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// buildActivityChart creates a stacked area chart of per-contributor
// commit counts per bucket for one granularity.
func buildActivityChart(view *schema.ReportView, series schema.GranularitySeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Commits", series.Granularity.Label()),
			Subtitle: fmt.Sprintf("%d buckets, mean %.1f commits, median %.1f commits",
				series.Stats.Buckets, series.Stats.MeanCommits, series.Stats.MedianCommits),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	labels := make([]string, len(series.Points))
	for i, p := range series.Points {
		labels[i] = p.BucketStart.Format(series.Granularity.DateFormat())
	}
	line.SetXAxis(labels)

	contributors := view.Contributors
	if len(contributors) > maxChartContributors {
		contributors = contributors[:maxChartContributors]
	}
	for _, name := range contributors {
		data := make([]opts.LineData, len(series.Points))
		for i, p := range series.Points {
			data[i] = opts.LineData{Value: p.Commits[name]}
		}
		line.AddSeries(name, data,
			charts.WithLineChartOpts(opts.LineChart{Stack: "total", Smooth: opts.Bool(true)}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(areaOpacity)}),
		)
	}

	return line
}

// buildTrendChart creates a plain multi-line chart of the same series,
// unstacked, so individual contributors can be compared directly and
// toggled via the legend.
func buildTrendChart(view *schema.ReportView, series schema.GranularitySeries) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Commit Trend", series.Granularity.Label()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	labels := make([]string, len(series.Points))
	for i, p := range series.Points {
		labels[i] = p.BucketStart.Format(series.Granularity.DateFormat())
	}
	line.SetXAxis(labels)

	contributors := view.Contributors
	if len(contributors) > maxChartContributors {
		contributors = contributors[:maxChartContributors]
	}
	for _, name := range contributors {
		data := make([]opts.LineData, len(series.Points))
		for i, p := range series.Points {
			data[i] = opts.LineData{Value: p.Commits[name]}
		}
		line.AddSeries(name, data,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		)
	}

	return line
}
