package core

import (
	"sort"
	"strings"

	"github.com/huangsam/gitintel/schema"
)

// dirPrefix extracts the directory prefix at the given depth from a file path.
// depth=1: "src/lib.go" -> "src", "README.md" -> "."
// depth=2: "src/utils/helper.go" -> "src/utils", "src/lib.go" -> "src"
func dirPrefix(path string, depth int) string {
	parts := strings.Split(path, "/")
	if len(parts) <= depth {
		if len(parts) == 1 {
			return "."
		}
		return strings.Join(parts[:len(parts)-1], "/")
	}
	return strings.Join(parts[:depth], "/")
}

type dirAccumulator struct {
	additions   int
	deletions   int
	commitCount int
	files       map[string]struct{}
	labels      map[schema.Label]int
}

// ComputeHotspots aggregates churn into directory-level rollups at the given
// depth. A commit counts once per directory it touches, no matter how many
// files inside that directory it changed.
func ComputeHotspots(commits []schema.EnrichedCommit, depth, limit int) *schema.HotspotsOutput {
	dirMap := make(map[string]*dirAccumulator)

	for _, c := range commits {
		touched := make(map[string]struct{})
		for _, f := range c.Files {
			prefix := dirPrefix(f.Path, depth)
			acc, ok := dirMap[prefix]
			if !ok {
				acc = &dirAccumulator{
					files:  make(map[string]struct{}),
					labels: make(map[schema.Label]int),
				}
				dirMap[prefix] = acc
			}
			acc.additions += f.Additions
			acc.deletions += f.Deletions
			acc.files[f.Path] = struct{}{}
			touched[prefix] = struct{}{}
		}
		for prefix := range touched {
			dirMap[prefix].commitCount++
			dirMap[prefix].labels[c.Label]++
		}
	}

	directories := make([]schema.DirectoryHotspot, 0, len(dirMap))
	for path, acc := range dirMap {
		directories = append(directories, schema.DirectoryHotspot{
			Path:        path,
			Additions:   acc.additions,
			Deletions:   acc.deletions,
			TotalChurn:  acc.additions + acc.deletions,
			CommitCount: acc.commitCount,
			FileCount:   len(acc.files),
			Labels:      acc.labels,
		})
	}

	sort.Slice(directories, func(i, j int) bool {
		if directories[i].TotalChurn != directories[j].TotalChurn {
			return directories[i].TotalChurn > directories[j].TotalChurn
		}
		return directories[i].Path < directories[j].Path
	})

	totalDirectories := len(directories)
	directories = capSlice(directories, limit)

	return &schema.HotspotsOutput{
		Directories:          directories,
		TotalDirectories:     totalDirectories,
		TotalCommitsAnalyzed: len(commits),
		Depth:                depth,
	}
}
