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

// writeAuthorsResults outputs author ownership, dispatching based on the output format configured.
func writeAuthorsResults(result *schema.AuthorsOutput, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.TableOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAuthorsTable(result, cfg, w)
		}, "Wrote table")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	}
}

// writeAuthorsTable generates and writes the human-readable ownership table.
func writeAuthorsTable(result *schema.AuthorsOutput, cfg *contract.Config, w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Directory", "Top Contributor", "Bus Factor", "Commits", "Authors"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	pathWidth := GetMaxTablePathWidth(cfg)
	var data [][]string
	for _, d := range result.Directories {
		busFactor := strconv.Itoa(d.BusFactor)
		if cfg.UseColors && d.BusFactor == 1 {
			busFactor = fixColor.Sprint(busFactor)
		}
		data = append(data, []string{
			contract.TruncatePath(d.Path, pathWidth),
			d.TopContributor,
			busFactor,
			strconv.Itoa(d.TotalCommits),
			strconv.Itoa(len(d.Authors)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d authors across %d commits at depth %d\n",
		result.TotalAuthors, result.TotalCommitsAnalyzed, result.Depth)
	return err
}
