package core

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/schema"
)

// ComputeTrends splits the recent history into trailing windows of equal
// size, summarizes each one, and compares the newest window against the
// previous one. Dormant files are those active in any older window but absent
// from the newest.
func ComputeTrends(ctx context.Context, client contract.GitClient, resolver contract.IdentityResolver, ml contract.TextClassifier, cfg *contract.Config) (*schema.TrendsOutput, error) {
	now := time.Now().UTC().Unix()
	windowSecs := int64(cfg.TrendWindowDays) * 86400

	windows := make([]schema.WindowData, 0, cfg.TrendWindows)
	activeFiles := make([]map[string]struct{}, 0, cfg.TrendWindows)

	for i := 0; i < cfg.TrendWindows; i++ {
		untilEpoch := now - int64(i)*windowSecs
		sinceEpoch := untilEpoch - windowSecs

		windowCfg := cfg.CloneWithTimeWindow(sinceEpoch, untilEpoch)
		stream := NewCommitStream(client, resolver, windowCfg)
		commits, err := Enrich(ctx, stream, ml)
		if err != nil {
			return nil, err
		}

		typeDistribution := make(map[schema.Label]int)
		active := make(map[string]struct{})
		for _, c := range commits {
			typeDistribution[c.Label]++
			for _, f := range c.Files {
				active[f.Path] = struct{}{}
			}
		}
		activeFiles = append(activeFiles, active)

		churnResult := ComputeChurn(commits, cfg.ResultLimit)
		topChurnFiles := make([]string, 0, len(churnResult.Files))
		for _, f := range churnResult.Files {
			topChurnFiles = append(topChurnFiles, f.Path)
		}

		sinceDate := formatDate(sinceEpoch)
		untilDate := formatDate(untilEpoch)
		windows = append(windows, schema.WindowData{
			Index:            i,
			Label:            fmt.Sprintf("%s to %s", sinceDate, untilDate),
			Since:            sinceDate,
			Until:            untilDate,
			TotalCommits:     len(commits),
			TypeDistribution: typeDistribution,
			Velocity:         float64(len(commits)) / float64(cfg.TrendWindowDays),
			TopChurnFiles:    topChurnFiles,
		})
	}

	return &schema.TrendsOutput{
		Windows:        windows,
		WindowCount:    cfg.TrendWindows,
		WindowSizeDays: cfg.TrendWindowDays,
		Deltas:         computeDeltas(windows),
		DormantFiles:   dormantFiles(activeFiles),
	}, nil
}

// trendLabel compares two values: stable within a 10% band, otherwise
// increasing or decreasing.
func trendLabel(latest, previous float64) schema.TrendDirection {
	if previous == 0 && latest == 0 {
		return schema.TrendStable
	}
	if previous == 0 {
		return schema.TrendIncreasing
	}
	ratio := (latest - previous) / previous
	switch {
	case ratio > schema.TrendStableBand:
		return schema.TrendIncreasing
	case ratio < -schema.TrendStableBand:
		return schema.TrendDecreasing
	default:
		return schema.TrendStable
	}
}

func computeDeltas(windows []schema.WindowData) schema.Deltas {
	if len(windows) < 2 {
		return schema.Deltas{
			CommitTrend:  schema.TrendStable,
			FixRateTrend: schema.TrendStable,
		}
	}
	latest, previous := windows[0], windows[1]

	return schema.Deltas{
		CommitTrend:  trendLabel(float64(latest.TotalCommits), float64(previous.TotalCommits)),
		FixRateTrend: trendLabel(fixRate(latest), fixRate(previous)),
	}
}

func fixRate(w schema.WindowData) float64 {
	if w.TotalCommits == 0 {
		return 0
	}
	return float64(w.TypeDistribution[schema.LabelFix]) / float64(w.TotalCommits)
}

// dormantFiles is the union of older windows' active files minus the newest
// window's, sorted. Window 0 is the newest.
func dormantFiles(activeFiles []map[string]struct{}) []string {
	if len(activeFiles) == 0 {
		return []string{}
	}
	newest := activeFiles[0]

	dormantSet := make(map[string]struct{})
	for _, older := range activeFiles[1:] {
		for f := range older {
			if _, ok := newest[f]; !ok {
				dormantSet[f] = struct{}{}
			}
		}
	}

	dormant := make([]string, 0, len(dormantSet))
	for f := range dormantSet {
		dormant = append(dormant, f)
	}
	sort.Strings(dormant)
	return dormant
}
