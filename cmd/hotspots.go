package cmd

import (
	"github.com/huangsam/gitintel/internal/contract"
	"github.com/spf13/cobra"
)

// hotspotsCmd rolls churn up to directories.
var hotspotsCmd = &cobra.Command{
	Use:   "hotspots [repo-path]",
	Short: "Roll churn up to directories at a chosen depth.",
	Long: `Aggregate churn by directory prefix to find the busiest parts of the tree.

Each directory reports its total churn, distinct commits, distinct files,
and the distribution of commit types that touched it.

Examples:
  # Top-level directories
  gitintel hotspots

  # Two path components deep
  gitintel hotspots --depth 2

  # Recent activity only
  gitintel hotspots --since 30d`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		result, err := newEngine().RunHotspots(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot run hotspots analysis", err)
		}
		if err := writer.WriteHotspots(result, cfg); err != nil {
			contract.LogFatal("Cannot write hotspots output", err)
		}
	},
}
