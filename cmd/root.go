package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/gitintel/core"
	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/internal/iocache"
	"github.com/huangsam/gitintel/internal/outwriter"
	"github.com/huangsam/gitintel/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// gitClient is the git client shared by all commands.
var gitClient contract.GitClient = contract.NewLocalGitClient()

// writer renders every report in the configured output format.
var writer = outwriter.NewOutWriter()

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "gitintel",
	Short:              "Analyze Git commit history for patterns, churn, and trends.",
	Long:               `Gitintel classifies your commit history and surfaces the patterns hiding in it: churn hotspots, fix-after-feature links, bus factors, and activity trends.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".gitintel") // Name of config file (without extension)
		viper.SetConfigType("yaml")      // We'll use YAML format
		viper.AddConfigPath(".")         // Look in the current directory
		viper.AddConfigPath("$HOME")     // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("GITINTEL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("limit", schema.DefaultResultLimit)
	viper.SetDefault("convergence-limit", schema.DefaultConvergenceLimit)
	viper.SetDefault("depth", contract.DefaultDepth)
	viper.SetDefault("output", schema.JSONOut)
	viper.SetDefault("windows", schema.DefaultTrendWindows)
	viper.SetDefault("window-days", schema.DefaultTrendWindowDays)
	viper.SetDefault("ml-command", "")
	viper.SetDefault("analysis-backend", "")
	viper.SetDefault("analysis-db-connect", "")
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(ctx context.Context, _ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// IsSet ignores flag and SetDefault defaults, so this is true only when
	// the user supplied a limit via flag, env var, or config file.
	input.LimitSet = viper.IsSet("limit")

	// 3. Handle positional arguments (which Viper doesn't do).
	if len(args) >= 1 {
		input.RepoPathStr = args[0]
	} else {
		input.RepoPathStr = "."
	}

	// 4. Run all validation and complex parsing.
	// This function now populates the global 'cfg' from 'input'.
	if err := contract.ProcessAndValidate(ctx, cfg, gitClient, input); err != nil {
		return err
	}

	// 5. Initialize the analysis store with validated config.
	if err := iocache.InitStores(cfg.AnalysisBackend, cfg.AnalysisDBConnect); err != nil {
		return fmt.Errorf("failed to initialize analysis tracking: %w", err)
	}

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// lifecycleSetupWrapper treats every positional argument after the first as a
// tracked file path instead of a repository path.
func lifecycleSetupWrapper(cmd *cobra.Command, args []string) error {
	input.PathArgs = args
	return sharedSetup(rootCtx, cmd, nil)
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	// Handle config file
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".gitintel")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// Load config file if present
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// newEngine assembles the analysis engine from the validated config.
func newEngine() *core.Engine {
	var ml contract.TextClassifier = contract.NoopClassifier{}
	if cfg.MLCommand != "" {
		ml = contract.NewExecClassifier(cfg.MLCommand)
	}
	return &core.Engine{
		Client:   gitClient,
		Resolver: contract.NewMailmapResolver(cfg.RepoPath),
		ML:       ml,
		Cache:    iocache.NewFileCache(gitClient, cfg.RepoPath, cfg.GitDir),
		Store:    iocache.Manager.GetAnalysisStore(),
		Cfg:      cfg,
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
