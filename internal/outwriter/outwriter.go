// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteMetrics prints commit metrics using the configured output format.
func (ow *OutWriter) WriteMetrics(result *schema.MetricsOutput, cfg *contract.Config) error {
	return writeMetricsResults(result, cfg)
}

// WriteChurn prints file churn results using the configured output format.
func (ow *OutWriter) WriteChurn(result *schema.ChurnOutput, cfg *contract.Config) error {
	return writeChurnResults(result, cfg)
}

// WriteHotspots prints directory hotspot results using the configured output format.
func (ow *OutWriter) WriteHotspots(result *schema.HotspotsOutput, cfg *contract.Config) error {
	return writeHotspotsResults(result, cfg)
}

// WriteAuthors prints author ownership results using the configured output format.
func (ow *OutWriter) WriteAuthors(result *schema.AuthorsOutput, cfg *contract.Config) error {
	return writeAuthorsResults(result, cfg)
}

// WriteLifecycle prints file lifecycle timelines using the configured output format.
func (ow *OutWriter) WriteLifecycle(result *schema.LifecycleOutput, cfg *contract.Config) error {
	return writeLifecycleResults(result, cfg)
}

// WritePatterns prints pattern detection results using the configured output format.
func (ow *OutWriter) WritePatterns(result *schema.PatternsOutput, cfg *contract.Config) error {
	return writePatternsResults(result, cfg)
}

// WriteTrends prints windowed trend results using the configured output format.
func (ow *OutWriter) WriteTrends(result *schema.TrendsOutput, cfg *contract.Config) error {
	return writeTrendsResults(result, cfg)
}

// GetMaxTablePathWidth calculates the maximum width for file paths in table output
// based on terminal width and table configuration.
func GetMaxTablePathWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the numeric columns, table borders, and padding.
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable path width
		return 15
	}
	if available > 70 {
		// Maximum path width to prevent overly long paths
		return 70
	}
	return available
}
