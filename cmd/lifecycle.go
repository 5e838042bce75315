package cmd

import (
	"github.com/huangsam/gitintel/internal/contract"
	"github.com/spf13/cobra"
)

// lifecycleCmd traces the history of specific files.
var lifecycleCmd = &cobra.Command{
	Use:   "lifecycle <path> [path...]",
	Short: "Trace the full timeline of one or more files.",
	Long: `Walk the analyzed range and report every commit that touched the given paths.

Each snapshot shows the commit, the line count at that point, the churn, and
a status (created, deleted, grown, shrunk, modified). Paths are resolved
relative to the repository root; the repository itself comes from the current
directory or the --config file.

Examples:
  # One file's full history
  gitintel lifecycle core/parser.go

  # Several files at once, recent history only
  gitintel lifecycle --since 6m main.go internal/server.go`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: lifecycleSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		result, err := newEngine().RunLifecycle(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot run lifecycle analysis", err)
		}
		if err := writer.WriteLifecycle(result, cfg); err != nil {
			contract.LogFatal("Cannot write lifecycle output", err)
		}
	},
}
