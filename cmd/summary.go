package cmd

import (
	"github.com/spf13/cobra"

	"github.com/commitlens/commitlens/core"
	"github.com/commitlens/commitlens/internal/contract"
)

// summaryCmd performs the per-contributor summary.
var summaryCmd = &cobra.Command{
	Use:   "summary [repo-path]",
	Short: "Show per-contributor commit counts and line churn.",
	Long: `Walk the commit history of a branch and print one row per
contributor: commit count, lines added, lines deleted, plus a trailing
TOTAL row.

Contributors who committed under several identities can be merged with
alias directives so their work is counted once:

  # Count john.doe and JohnD as the same person
  commitlens summary --merge 'john.doe,JohnD=>John'

  # Single alias form
  commitlens summary --merge 'JohnD=John'

Examples:
  # Summarize the checked-out branch of the current repository
  commitlens summary

  # Summarize a specific branch and window
  commitlens summary --branch main --since '3 months ago'

  # Export the summary to CSV
  commitlens summary --output csv --output-file contributors.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run summary", err)
		}
	},
}
