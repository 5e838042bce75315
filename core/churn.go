package core

import (
	"sort"

	"github.com/huangsam/gitintel/schema"
)

// ComputeChurn ranks files by total add+delete churn across the commit range.
// TotalFiles reports the pre-truncation count so callers can tell whether the
// ranking was capped.
func ComputeChurn(commits []schema.EnrichedCommit, limit int) *schema.ChurnOutput {
	fileAdds := make(map[string]int)
	fileDels := make(map[string]int)
	fileCommits := make(map[string]int)

	for _, c := range commits {
		for _, f := range c.Files {
			fileAdds[f.Path] += f.Additions
			fileDels[f.Path] += f.Deletions
			fileCommits[f.Path]++
		}
	}

	files := make([]schema.FileChurn, 0, len(fileCommits))
	for path := range fileCommits {
		adds := fileAdds[path]
		dels := fileDels[path]
		files = append(files, schema.FileChurn{
			Path:        path,
			Additions:   adds,
			Deletions:   dels,
			TotalChurn:  adds + dels,
			CommitCount: fileCommits[path],
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].TotalChurn != files[j].TotalChurn {
			return files[i].TotalChurn > files[j].TotalChurn
		}
		return files[i].Path < files[j].Path
	})

	totalFiles := len(files)
	files = capSlice(files, limit)

	return &schema.ChurnOutput{
		Files:                files,
		TotalFiles:           totalFiles,
		TotalCommitsAnalyzed: len(commits),
	}
}
