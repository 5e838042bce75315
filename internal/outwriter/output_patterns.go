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

// writePatternsResults outputs pattern detections, dispatching based on the output format configured.
func writePatternsResults(result *schema.PatternsOutput, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.TableOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePatternsTables(result, cfg, w)
		}, "Wrote table")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	}
}

// writePatternsTables writes one section per detector.
func writePatternsTables(result *schema.PatternsOutput, cfg *contract.Config, w io.Writer) error {
	if err := writeFixAfterSection(result, cfg, w); err != nil {
		return err
	}
	if err := writeSignalsSection(result.Signals, cfg, w); err != nil {
		return err
	}
	if err := writeChainsSection(result, cfg, w); err != nil {
		return err
	}
	if err := writeClustersSection(result.Clusters, cfg, w); err != nil {
		return err
	}
	if err := writeConvergenceSection(result, cfg, w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nAnalyzed %d commits\n", result.TotalCommitsAnalyzed)
	return err
}

func writeFixAfterSection(result *schema.PatternsOutput, cfg *contract.Config, w io.Writer) error {
	if err := writeHeading(w, cfg.UseColors, "Fixes following features"); err != nil {
		return err
	}
	if len(result.FixAfterFeat) == 0 {
		_, err := fmt.Fprintln(w, "None found")
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Feat", "Feat Date", "Fix", "Fix Date", "Gap", "Fix Message"})
	var data [][]string
	for _, link := range result.FixAfterFeat {
		data = append(data, []string{
			link.FeatCommit,
			link.FeatDate,
			link.FixCommit,
			link.FixDate,
			strconv.Itoa(link.GapCommits),
			truncateMessage(link.FixMessage, 45),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeSignalsSection(signals []schema.Signal, cfg *contract.Config, w io.Writer) error {
	if err := writeHeading(w, cfg.UseColors, "Signals"); err != nil {
		return err
	}
	if len(signals) == 0 {
		_, err := fmt.Fprintln(w, "None found")
		return err
	}
	for _, sig := range signals {
		if _, err := fmt.Fprintf(w, "[%s] %s: %s\n",
			formatSeverity(sig.Severity, cfg.UseColors), sig.Kind, sig.Message); err != nil {
			return err
		}
	}
	return nil
}

func writeChainsSection(result *schema.PatternsOutput, cfg *contract.Config, w io.Writer) error {
	pathWidth := GetMaxTablePathWidth(cfg)

	if err := writeHeading(w, cfg.UseColors, "Multi-edit chains"); err != nil {
		return err
	}
	if len(result.MultiEditChains) == 0 {
		if _, err := fmt.Fprintln(w, "None found"); err != nil {
			return err
		}
	} else {
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Path", "Edits", "Churn"})
		table.Configure(func(tc *tablewriter.Config) {
			tc.Row.Alignment.Global = tw.AlignRight
		})
		var data [][]string
		for _, chain := range result.MultiEditChains {
			data = append(data, []string{
				contract.TruncatePath(chain.Path, pathWidth),
				strconv.Itoa(chain.EditCount),
				strconv.Itoa(chain.TotalChurn),
			})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	if err := writeHeading(w, cfg.UseColors, "Directory chains"); err != nil {
		return err
	}
	if len(result.DirectoryChains) == 0 {
		_, err := fmt.Fprintln(w, "None found")
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Directory", "Edits", "Churn", "Files"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, chain := range result.DirectoryChains {
		data = append(data, []string{
			contract.TruncatePath(chain.Path, pathWidth),
			strconv.Itoa(chain.EditCount),
			strconv.Itoa(chain.TotalChurn),
			strconv.Itoa(len(chain.Files)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeClustersSection(clusters []schema.TemporalCluster, cfg *contract.Config, w io.Writer) error {
	if err := writeHeading(w, cfg.UseColors, "Temporal clusters"); err != nil {
		return err
	}
	if len(clusters) == 0 {
		_, err := fmt.Fprintln(w, "None found")
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Type", "Size", "Start", "End", "Commits"})
	var data [][]string
	for _, cluster := range clusters {
		data = append(data, []string{
			formatLabel(cluster.Label, cfg.UseColors),
			strconv.Itoa(cluster.Size),
			contract.FormatTimestamp(cluster.StartTS),
			contract.FormatTimestamp(cluster.EndTS),
			strings.Join(cluster.Commits, " "),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeConvergenceSection(result *schema.PatternsOutput, cfg *contract.Config, w io.Writer) error {
	if err := writeHeading(w, cfg.UseColors, "Size convergence"); err != nil {
		return err
	}
	if len(result.Convergence) == 0 {
		_, err := fmt.Fprintln(w, "None found")
		return err
	}
	pathWidth := GetMaxTablePathWidth(cfg)
	table := tablewriter.NewWriter(w)
	table.Header([]string{"File A", "File B", "Bytes A", "Bytes B", "Ratio"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, pair := range result.Convergence {
		data = append(data, []string{
			contract.TruncatePath(pair.FileA, pathWidth/2),
			contract.TruncatePath(pair.FileB, pathWidth/2),
			strconv.FormatInt(pair.BytesA, 10),
			strconv.FormatInt(pair.BytesB, 10),
			fmt.Sprintf("%.3f", pair.BytesRatio),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if result.ConvergenceTruncated {
		if _, err := fmt.Fprintf(w, "Truncated to %d pairs; raise --convergence-limit for more\n",
			len(result.Convergence)); err != nil {
			return err
		}
	}
	return nil
}
