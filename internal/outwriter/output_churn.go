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

// writeChurnResults outputs file churn, dispatching based on the output format configured.
func writeChurnResults(result *schema.ChurnOutput, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.TableOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChurnTable(result, cfg, w)
		}, "Wrote table")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	}
}

// writeChurnTable generates and writes the human-readable churn table.
func writeChurnTable(result *schema.ChurnOutput, cfg *contract.Config, w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Path", "Added", "Deleted", "Churn", "Commits"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	pathWidth := GetMaxTablePathWidth(cfg)
	var data [][]string
	for i, f := range result.Files {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(f.Path, pathWidth),
			strconv.Itoa(f.Additions),
			strconv.Itoa(f.Deletions),
			strconv.Itoa(f.TotalChurn),
			strconv.Itoa(f.CommitCount),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing top %d of %d files across %d commits\n",
		len(result.Files), result.TotalFiles, result.TotalCommitsAnalyzed)
	return err
}
