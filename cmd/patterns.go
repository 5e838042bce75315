package cmd

import (
	"github.com/huangsam/gitintel/internal/contract"
	"github.com/spf13/cobra"
)

// patternsCmd runs every pattern detector over the analyzed range.
var patternsCmd = &cobra.Command{
	Use:   "patterns [repo-path]",
	Short: "Detect fix-after-feature links, edit chains, clusters, and size convergence.",
	Long: `Run every pattern detector over the analyzed range.

Detectors:
- Fixes that follow a feature or refactor sharing files with it
- Files edited repeatedly with real churn (multi-edit chains)
- Top-level directories hit by many commits (directory chains)
- Bursts of same-type commits within an hour (temporal clusters)
- Files converging to near-identical sizes at HEAD

Each signal carries a severity in (0, 1] so findings can be ranked.

Examples:
  # Full pattern report
  gitintel patterns

  # Recent history, more convergence pairs
  gitintel patterns --since 3m --convergence-limit 100`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		result, err := newEngine().RunPatterns(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot run pattern analysis", err)
		}
		if err := writer.WritePatterns(result, cfg); err != nil {
			contract.LogFatal("Cannot write pattern output", err)
		}
	},
}
