package cmd

import (
	"github.com/huangsam/gitintel/internal/contract"
	"github.com/spf13/cobra"
)

// trendsCmd compares activity across trailing time windows.
var trendsCmd = &cobra.Command{
	Use:   "trends [repo-path]",
	Short: "Compare commit activity across trailing time windows.",
	Long: `Split recent history into equal trailing windows and compare them.

Each window reports its commit count, type distribution, velocity, and top
churn files. The newest window is compared against the prior one to call
the commit and fix-rate trends increasing, decreasing, or stable. Files
active in older windows but quiet in the newest are reported as dormant.

Trend windows anchor to the current time, so results are never cached.

Examples:
  # Four 30-day windows (default)
  gitintel trends

  # Six two-week windows
  gitintel trends --windows 6 --window-days 14`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		result, err := newEngine().RunTrends(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot run trend analysis", err)
		}
		if err := writer.WriteTrends(result, cfg); err != nil {
			contract.LogFatal("Cannot write trend output", err)
		}
	},
}
