package cmd

import (
	"github.com/huangsam/gitintel/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd summarizes commit classification for the analyzed range.
var metricsCmd = &cobra.Command{
	Use:   "metrics [repo-path]",
	Short: "Summarize commit types, daily activity, and velocity.",
	Long: `Classify every commit in the analyzed range and summarize the results.

Reports:
- Commit type distribution (feat, fix, chore, docs, ...)
- Busiest days by commit count
- Line velocity (average, max, min lines per commit)
- Ticket references extracted from commit messages

Examples:
  # Summarize the whole history
  gitintel metrics

  # Focus on the last quarter
  gitintel metrics --since 3m

  # Export as JSON for dashboards
  gitintel metrics --output json --output-file metrics.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		result, err := newEngine().RunMetrics(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot run metrics analysis", err)
		}
		if err := writer.WriteMetrics(result, cfg); err != nil {
			contract.LogFatal("Cannot write metrics output", err)
		}
	},
}
