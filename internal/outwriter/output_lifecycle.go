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

// writeLifecycleResults outputs file lifecycle timelines, dispatching based on the output format configured.
func writeLifecycleResults(result *schema.LifecycleOutput, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.TableOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLifecycleTables(result, cfg, w)
		}, "Wrote table")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	}
}

// formatLineCount renders an optional line count, using "-" when unknown.
func formatLineCount(lines *int) string {
	if lines == nil {
		return "-"
	}
	return strconv.Itoa(*lines)
}

// writeLifecycleTables writes one timeline table per tracked path.
func writeLifecycleTables(result *schema.LifecycleOutput, cfg *contract.Config, w io.Writer) error {
	for _, file := range result.Files {
		status := "deleted"
		if file.Exists {
			status = fmt.Sprintf("%s lines at HEAD", formatLineCount(file.CurrentLines))
		}
		if err := writeHeading(w, cfg.UseColors, fmt.Sprintf("%s (%s)", file.Path, status)); err != nil {
			return err
		}

		table := tablewriter.NewWriter(w)
		table.Header([]string{"Commit", "Date", "Status", "Lines", "Added", "Deleted", "Message"})
		table.Configure(func(tc *tablewriter.Config) {
			tc.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for _, snap := range file.History {
			data = append(data, []string{
				snap.Commit,
				snap.Date,
				string(snap.Status),
				formatLineCount(snap.Lines),
				strconv.Itoa(snap.Additions),
				strconv.Itoa(snap.Deletions),
				truncateMessage(snap.Message, 50),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "%d commits touched %s\n", len(file.History), file.Path); err != nil {
			return err
		}
	}
	return nil
}
