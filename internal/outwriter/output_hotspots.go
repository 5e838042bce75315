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

// writeHotspotsResults outputs directory hotspots, dispatching based on the output format configured.
func writeHotspotsResults(result *schema.HotspotsOutput, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.TableOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHotspotsTable(result, cfg, w)
		}, "Wrote table")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	}
}

// dominantLabel picks the most frequent classification label for a directory.
// Ties resolve to the lexicographically smaller label.
func dominantLabel(labels map[schema.Label]int) schema.Label {
	var best schema.Label
	bestCount := 0
	for label, count := range labels {
		if count > bestCount || (count == bestCount && (best == "" || label < best)) {
			best = label
			bestCount = count
		}
	}
	return best
}

// writeHotspotsTable generates and writes the human-readable hotspots table.
func writeHotspotsTable(result *schema.HotspotsOutput, cfg *contract.Config, w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Directory", "Churn", "Commits", "Files", "Top Type"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	pathWidth := GetMaxTablePathWidth(cfg)
	var data [][]string
	for i, d := range result.Directories {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(d.Path, pathWidth),
			strconv.Itoa(d.TotalChurn),
			strconv.Itoa(d.CommitCount),
			strconv.Itoa(d.FileCount),
			formatLabel(dominantLabel(d.Labels), cfg.UseColors),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing top %d of %d directories at depth %d (%d commits analyzed)\n",
		len(result.Directories), result.TotalDirectories, result.Depth, result.TotalCommitsAnalyzed)
	return err
}
