package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/schema"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	fixColor     = color.New(color.FgRed, color.Bold)    // fixes and high-severity signals
	featColor    = color.New(color.FgGreen)              // new functionality
	warnColor    = color.New(color.FgYellow)             // caution, not bold
	infoColor    = color.New(color.FgCyan)               // informational / low-priority
	headingColor = color.New(color.FgWhite, color.Bold)  // section headings
	revertColor  = color.New(color.FgMagenta, color.Bold)
)

// labelColors maps classification labels to their console colors.
// Labels without an entry render uncolored.
var labelColors = map[schema.Label]*color.Color{
	schema.LabelFix:    fixColor,
	schema.LabelFeat:   featColor,
	schema.LabelRevert: revertColor,
	schema.LabelMerge:  infoColor,
	schema.LabelChore:  warnColor,
}

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// formatLabel renders a classification label, colored when enabled.
func formatLabel(label schema.Label, useColors bool) string {
	text := string(label)
	if !useColors {
		return text
	}
	if c, ok := labelColors[label]; ok {
		return c.Sprint(text)
	}
	return text
}

// formatSeverity renders a detector severity in (0, 1], colored by magnitude when enabled.
func formatSeverity(severity float64, useColors bool) string {
	text := fmt.Sprintf("%.2f", severity)
	if !useColors {
		return text
	}
	switch {
	case severity >= 0.75:
		return fixColor.Sprint(text)
	case severity >= 0.4:
		return warnColor.Sprint(text)
	default:
		return infoColor.Sprint(text)
	}
}

// formatTrend renders a trend direction with an arrow, colored when enabled.
func formatTrend(trend schema.TrendDirection, useColors bool) string {
	var text string
	switch trend {
	case schema.TrendIncreasing:
		text = "↑ increasing"
	case schema.TrendDecreasing:
		text = "↓ decreasing"
	default:
		text = "→ stable"
	}
	if !useColors {
		return text
	}
	switch trend {
	case schema.TrendIncreasing:
		return warnColor.Sprint(text)
	case schema.TrendDecreasing:
		return infoColor.Sprint(text)
	default:
		return text
	}
}

// writeHeading prints a bold section heading followed by a blank line of context.
func writeHeading(w io.Writer, useColors bool, heading string) error {
	if useColors {
		heading = headingColor.Sprint(heading)
	}
	_, err := fmt.Fprintf(w, "\n%s\n", heading)
	return err
}

// truncateMessage trims a commit subject line for table display.
func truncateMessage(msg string, maxWidth int) string {
	runes := []rune(msg)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return msg
}
