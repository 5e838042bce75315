package contract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/gitintel/schema"
)

// Default values for configuration.
const (
	MaxResultLimit = 1000
	DefaultDepth   = 1
)

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath string
	GitDir   string

	Since *int64 // Inclusive lower Unix bound, nil = unbounded
	Until *int64 // Inclusive upper Unix bound, nil = unbounded

	ResultLimit      int
	LimitExplicit    bool // True when the limit came from a flag, env var, or config file
	ConvergenceLimit int
	Depth            int
	Paths            []string

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	NoCache bool

	TrendWindows    int
	TrendWindowDays int

	MLCommand string // External classifier command, empty = rules only

	AnalysisBackend   schema.DatabaseBackend
	AnalysisDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	// This is set manually from positional args on lifecycle, so no tag
	PathArgs []string

	// This is set manually from viper.IsSet, so no tag
	LimitSet bool

	// --- Fields from rootCmd.PersistentFlags() ---
	Since             string `mapstructure:"since"`
	Until             string `mapstructure:"until"`
	Limit             int    `mapstructure:"limit"`
	Output            string `mapstructure:"output"`
	OutputFile        string `mapstructure:"output-file"`
	Width             int    `mapstructure:"width"`
	NoCache           bool   `mapstructure:"no-cache"`
	Color             string `mapstructure:"color"`
	MLCommand         string `mapstructure:"ml-command"`
	AnalysisBackend   string `mapstructure:"analysis-backend"`
	AnalysisDBConnect string `mapstructure:"analysis-db-connect"`

	// --- Fields from hotspotsCmd.Flags() ---
	Depth int `mapstructure:"depth"`

	// --- Fields from patternsCmd.Flags() ---
	ConvergenceLimit int `mapstructure:"convergence-limit"`

	// --- Fields from trendsCmd.Flags() ---
	Windows    int `mapstructure:"windows"`
	WindowDays int `mapstructure:"window-days"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Since != nil {
		s := *c.Since
		clone.Since = &s
	}
	if c.Until != nil {
		u := *c.Until
		clone.Until = &u
	}
	if c.Paths != nil {
		clone.Paths = make([]string, len(c.Paths))
		copy(clone.Paths, c.Paths)
	}
	return &clone
}

// CloneWithTimeWindow creates a copy of the Config and sets new since/until bounds.
func (c *Config) CloneWithTimeWindow(since, until int64) *Config {
	clone := c.Clone()
	clone.Since = &since
	clone.Until = &until
	return clone
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processTimeRange(cfg, input); err != nil {
		return err
	}
	if err := resolveGitPaths(ctx, cfg, client, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("analysis-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("analysis-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates the analysis backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.AnalysisBackend = schema.DatabaseBackend(strings.ToLower(input.AnalysisBackend))
	if cfg.AnalysisBackend == "" {
		cfg.AnalysisBackend = schema.NoneBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.AnalysisBackend]; !ok {
		return fmt.Errorf("invalid analysis backend '%s'. must be sqlite, mysql, postgresql, none", input.AnalysisBackend)
	}
	cfg.AnalysisDBConnect = input.AnalysisDBConnect
	return ValidateDatabaseConnectionString(cfg.AnalysisBackend, cfg.AnalysisDBConnect)
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.NoCache = input.NoCache
	cfg.MLCommand = strings.TrimSpace(input.MLCommand)

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit
	cfg.LimitExplicit = input.LimitSet

	// --- 2. ConvergenceLimit Validation ---
	if input.ConvergenceLimit <= 0 {
		return fmt.Errorf("convergence-limit must be greater than 0 (received %d)", input.ConvergenceLimit)
	}
	cfg.ConvergenceLimit = input.ConvergenceLimit

	// --- 3. Depth Validation ---
	if input.Depth < 1 {
		return fmt.Errorf("depth must be at least 1 (received %d)", input.Depth)
	}
	cfg.Depth = input.Depth

	// --- 4. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be json, table", cfg.Output)
	}

	// --- 5. Trend Window Validation ---
	if input.Windows < 2 {
		return fmt.Errorf("windows must be at least 2 (received %d)", input.Windows)
	}
	cfg.TrendWindows = input.Windows
	if input.WindowDays < 1 {
		return fmt.Errorf("window-days must be at least 1 (received %d)", input.WindowDays)
	}
	cfg.TrendWindowDays = input.WindowDays

	// --- 6. Backend Validation ---
	return validateBackendConfigs(cfg, input)
}

// processTimeRange handles date parsing and range validation.
func processTimeRange(cfg *Config, input *ConfigRawInput) error {
	now := time.Now().UTC()

	if input.Since != "" {
		since, err := ParseDateBound(input.Since, now, false)
		if err != nil {
			return fmt.Errorf("invalid --since: %w", err)
		}
		cfg.Since = &since
	}
	if input.Until != "" {
		until, err := ParseDateBound(input.Until, now, true)
		if err != nil {
			return fmt.Errorf("invalid --until: %w", err)
		}
		cfg.Until = &until
	}

	return ValidateRange(cfg.Since, cfg.Until)
}

// resolveGitPaths resolves the Git repository root and git dir, and normalizes
// any positional file path arguments relative to the root.
func resolveGitPaths(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	searchPath := input.RepoPathStr
	if searchPath == "" {
		searchPath = "."
	}
	absSearchPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}
	absSearchPath = filepath.Clean(absSearchPath)

	info, statErr := os.Stat(absSearchPath)
	gitContextPath := absSearchPath
	if statErr == nil && !info.IsDir() {
		gitContextPath = filepath.Dir(absSearchPath)
	}

	gitRoot, err := client.GetRepoRoot(ctx, gitContextPath)
	if err != nil {
		return err
	}
	cfg.RepoPath = gitRoot

	gitDir, err := client.GetGitDir(ctx, gitRoot)
	if err != nil {
		return err
	}
	cfg.GitDir = gitDir

	cfg.Paths = cfg.Paths[:0]
	for _, p := range input.PathArgs {
		normalized, err := NormalizeRepoFilePath(gitRoot, p)
		if err != nil {
			return err
		}
		cfg.Paths = append(cfg.Paths, normalized)
	}

	return nil
}
