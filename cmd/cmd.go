// Package cmd defines the command-line interface for gitintel.
package cmd

import (
	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(churnCmd)
	rootCmd.AddCommand(hotspotsCmd)
	rootCmd.AddCommand(authorsCmd)
	rootCmd.AddCommand(lifecycleCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(analysisCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the analysis subcommands to the parent analysis command
	analysisCmd.AddCommand(analysisClearCmd)
	analysisCmd.AddCommand(analysisStatusCmd)
	analysisCmd.AddCommand(analysisExportCmd)
	analysisCmd.AddCommand(analysisMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("since", "", "Inclusive lower date bound (YYYY-MM-DD or 30d, 4w, 6m, 1y)")
	rootCmd.PersistentFlags().String("until", "", "Inclusive upper date bound (YYYY-MM-DD or 30d, 4w, 6m, 1y)")
	rootCmd.PersistentFlags().IntP("limit", "l", schema.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.JSONOut), "Output format: json or table")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Skip the result cache and recompute")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("ml-command", "", "External classifier command for messages no rule matches")
	rootCmd.PersistentFlags().String("analysis-backend", "", "Analysis tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("analysis-db-connect", "", "Database connection string for analysis tracking")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of hotspotsCmd and authorsCmd to Viper
	hotspotsCmd.Flags().Int("depth", contract.DefaultDepth, "Directory depth for rollups")
	if err := viper.BindPFlags(hotspotsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding hotspots flags", err)
	}
	authorsCmd.Flags().Int("depth", contract.DefaultDepth, "Directory depth for rollups")
	if err := viper.BindPFlags(authorsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding authors flags", err)
	}

	// Bind all flags of patternsCmd to Viper
	patternsCmd.Flags().Int("convergence-limit", schema.DefaultConvergenceLimit, "Maximum convergence pairs to scan for")
	if err := viper.BindPFlags(patternsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding patterns flags", err)
	}

	// Bind all flags of trendsCmd to Viper
	trendsCmd.Flags().Int("windows", schema.DefaultTrendWindows, "Number of trailing windows to compare")
	trendsCmd.Flags().Int("window-days", schema.DefaultTrendWindowDays, "Size of each window in days")
	if err := viper.BindPFlags(trendsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding trends flags", err)
	}

	// Bind all flags of analysisMigrateCmd to Viper
	analysisMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(analysisMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding analysis migrate flags", err)
	}
}
