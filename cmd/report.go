package cmd

import (
	"github.com/spf13/cobra"

	"github.com/commitlens/commitlens/core"
	"github.com/commitlens/commitlens/internal/contract"
)

// reportCmd writes an HTML activity report.
var reportCmd = &cobra.Command{
	Use:   "report [repo-path]",
	Short: "Write an HTML report of contributor activity over time.",
	Long: `Bucket commit activity over calendar time and render one
stacked area chart per granularity to a standalone HTML file.

Each chart shows per-contributor commits per bucket. Buckets align to
calendar boundaries in the configured timezone: days at midnight, weeks
on Monday, months on the 1st, years on Jan 1. The 3days granularity
uses a fixed three-day grid.

Examples:
  # Full report for the current repository
  commitlens report

  # Weekly activity only, for the last year
  commitlens report --granularity week --since '1 year ago'

  # Write the report somewhere specific
  commitlens report --report-file /tmp/activity.html`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
	},
}
