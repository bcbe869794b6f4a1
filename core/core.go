// Package core has core logic for alias resolution, bucketing and aggregation.
package core

import (
	"context"
	"time"

	"github.com/commitlens/commitlens/internal/contract"
	"github.com/commitlens/commitlens/internal/htmlreport"
	"github.com/commitlens/commitlens/internal/outwriter"
	"github.com/commitlens/commitlens/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error

// ExecuteSummary computes per-contributor statistics and prints them in
// the configured output format. It serves as the main entry point for
// the 'summary' command.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	client := contract.NewLocalGitClient()
	view, err := BuildReportView(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintSummaryResults(view, cfg, duration)
}

// ExecuteReport computes per-contributor statistics plus activity time
// series and writes an HTML report. It serves as the main entry point
// for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) error {
	start := time.Now()
	client := contract.NewLocalGitClient()
	view, err := BuildReportView(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}
	if err := htmlreport.WriteReport(view, cfg); err != nil {
		return err
	}
	duration := time.Since(start)
	outwriter.PrintReportFooter(view, cfg, duration)
	return nil
}

// BuildReportView runs the full pipeline: alias table, commit stream,
// aggregation, report assembly. Directive errors surface before any
// commit is read. An empty stream yields an empty view, not an error.
func BuildReportView(ctx context.Context, cfg *contract.Config, client contract.GitClient, mgr contract.CacheManager) (*schema.ReportView, error) {
	aliases, err := NewAliasTable(cfg.MergeDirectives)
	if err != nil {
		return nil, err
	}

	commits, err := fetchCommits(ctx, cfg, client, mgr)
	if err != nil {
		return nil, err
	}

	agg := NewAggregator(aliases, cfg.Location)
	for _, c := range commits {
		if err := agg.Ingest(c); err != nil {
			return nil, err
		}
	}
	result, err := agg.Finalize()
	if err != nil {
		return nil, err
	}

	return AssembleReport(result), nil
}
