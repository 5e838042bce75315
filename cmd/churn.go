package cmd

import (
	"github.com/huangsam/gitintel/internal/contract"
	"github.com/spf13/cobra"
)

// churnCmd ranks files by total churn.
var churnCmd = &cobra.Command{
	Use:   "churn [repo-path]",
	Short: "Rank files by lines added plus deleted.",
	Long: `Rank every file touched in the analyzed range by total churn.

Churn is lines added plus lines deleted, summed across all commits that
touched the file. High-churn files are where the work happens, and often
where the bugs live.

Examples:
  # Top 10 files by churn
  gitintel churn

  # Top 50 files over the last six months
  gitintel churn --since 6m --limit 50`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		result, err := newEngine().RunChurn(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot run churn analysis", err)
		}
		if err := writer.WriteChurn(result, cfg); err != nil {
			contract.LogFatal("Cannot write churn output", err)
		}
	},
}
