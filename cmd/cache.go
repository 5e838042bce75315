package cmd

import (
	"fmt"

	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/internal/iocache"
	"github.com/spf13/cobra"
)

// cacheCmd focused on result cache management.
//
// The cache lives inside the repository's git directory, so these commands
// run the full shared setup to resolve the repository like any analysis.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the per-repository result cache",
	Long: `Manage the result cache that speeds up repeated analyses.

Gitintel caches each command's result inside the repository's git directory,
keyed by command, parameters, and time range. Entries are validated against
the current HEAD commit, so a stale cache is never served.

Subcommands:
  status - Show cache entry counts and size
  clear  - Remove all cached results

Examples:
  # Check cache status
  gitintel cache status

  # Clear cache after a history rewrite
  gitintel cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear [repo-path]",
	Short: "Remove all cached analysis results",
	Long: `Delete every cached result for the repository.

Use this when:
- Repository history was rewritten (rebase, force push)
- Cache may be stale or corrupted
- Testing performance without cache

Examples:
  # Clear the cache for the current repository
  gitintel cache clear`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		cache := iocache.NewFileCache(gitClient, cfg.RepoPath, cfg.GitDir)
		if err := cache.Clear(); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status [repo-path]",
	Short: "Display cache entry counts and size",
	Long: `Show detailed information about the result cache.

Displays:
- Cache directory location
- Number of cached entries
- Total bytes on disk

Examples:
  # Check cache status
  gitintel cache status`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		cache := iocache.NewFileCache(gitClient, cfg.RepoPath, cfg.GitDir)
		status, err := cache.Status()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(status)
	},
}
