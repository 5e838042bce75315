package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeTrendsResults outputs windowed trends, dispatching based on the output format configured.
func writeTrendsResults(result *schema.TrendsOutput, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.TableOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendsTable(result, cfg, w)
		}, "Wrote table")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	}
}

// writeTrendsTable generates and writes the human-readable trends tables.
func writeTrendsTable(result *schema.TrendsOutput, cfg *contract.Config, w io.Writer) error {
	if err := writeHeading(w, cfg.UseColors,
		fmt.Sprintf("Trailing windows (%d x %d days, newest first)", result.WindowCount, result.WindowSizeDays)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Window", "Range", "Commits", "Fixes", "Velocity", "Top Churn"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, window := range result.Windows {
		data = append(data, []string{
			strconv.Itoa(window.Index),
			window.Label,
			strconv.Itoa(window.TotalCommits),
			strconv.Itoa(window.TypeDistribution[schema.LabelFix]),
			fmt.Sprintf("%.2f/day", window.Velocity),
			strings.Join(window.TopChurnFiles, " "),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nCommit trend:   %s\n",
		formatTrend(result.Deltas.CommitTrend, cfg.UseColors)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Fix rate trend: %s\n",
		formatTrend(result.Deltas.FixRateTrend, cfg.UseColors)); err != nil {
		return err
	}

	if len(result.DormantFiles) > 0 {
		if err := writeHeading(w, cfg.UseColors,
			fmt.Sprintf("Dormant files (%d active before, quiet in the newest window)", len(result.DormantFiles))); err != nil {
			return err
		}
		for _, path := range result.DormantFiles {
			if _, err := fmt.Fprintf(w, "  %s\n", path); err != nil {
				return err
			}
		}
	}
	return nil
}
