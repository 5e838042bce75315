package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeMetricsResults outputs commit metrics, dispatching based on the output format configured.
func writeMetricsResults(result *schema.MetricsOutput, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.TableOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsTable(result, cfg, w)
		}, "Wrote table")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	}
}

// writeMetricsTable generates and writes the human-readable metrics tables.
func writeMetricsTable(result *schema.MetricsOutput, cfg *contract.Config, w io.Writer) error {
	if err := writeHeading(w, cfg.UseColors, "Commit types"); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Type", "Count", "Share"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, ct := range result.CommitTypes {
		data = append(data, []string{
			formatLabel(ct.Type, cfg.UseColors),
			strconv.Itoa(ct.Count),
			fmt.Sprintf("%.1f%%", ct.Percentage),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(result.Activity) > 0 {
		if err := writeHeading(w, cfg.UseColors, "Busiest days"); err != nil {
			return err
		}
		activity := tablewriter.NewWriter(w)
		activity.Header([]string{"Date", "Commits"})
		var rows [][]string
		for _, burst := range result.Activity {
			rows = append(rows, []string{burst.Date, strconv.Itoa(burst.Commits)})
		}
		if err := activity.Bulk(rows); err != nil {
			return err
		}
		if err := activity.Render(); err != nil {
			return err
		}
	}

	if len(result.TicketRefs) > 0 {
		if err := writeHeading(w, cfg.UseColors, "Ticket references"); err != nil {
			return err
		}
		tickets := tablewriter.NewWriter(w)
		tickets.Header([]string{"Ticket", "Count"})
		var rows [][]string
		for _, ref := range result.TicketRefs {
			rows = append(rows, []string{ref.Ticket, strconv.Itoa(ref.Count)})
		}
		if err := tickets.Bulk(rows); err != nil {
			return err
		}
		if err := tickets.Render(); err != nil {
			return err
		}
	}

	v := result.Velocity
	if _, err := fmt.Fprintf(w, "\nVelocity: avg %.1f lines/commit (max %d, min %d, total %d)\n",
		v.AvgLinesPerCommit, v.MaxLinesInCommit, v.MinLinesInCommit, v.TotalLinesChanged); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Analyzed %d commits\n", result.TotalCommits)
	return err
}
