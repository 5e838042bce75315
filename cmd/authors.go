package cmd

import (
	"github.com/huangsam/gitintel/internal/contract"
	"github.com/spf13/cobra"
)

// authorsCmd reports ownership and bus factor per directory.
var authorsCmd = &cobra.Command{
	Use:   "authors [repo-path]",
	Short: "Report directory ownership and bus factor.",
	Long: `Rank contributors per directory and compute each directory's bus factor.

The bus factor is the smallest number of authors who together account for
more than half of a directory's commits. A bus factor of 1 marks a
knowledge silo.

Author identities are unified via the repository's .mailmap when present.

Examples:
  # Ownership by top-level directory
  gitintel authors

  # Deeper rollup over the last year
  gitintel authors --depth 2 --since 1y`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		result, err := newEngine().RunAuthors(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot run authors analysis", err)
		}
		if err := writer.WriteAuthors(result, cfg); err != nil {
			contract.LogFatal("Cannot write authors output", err)
		}
	},
}
