package core

import (
	"context"
	"strings"

	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/schema"
)

// ComputeLifecycle builds a per-path timeline of every commit in the range
// that touched the path, plus the path's current state at HEAD. Blob content
// is probed at each touching commit and its first parent to tell creations
// and deletions apart from ordinary edits.
func ComputeLifecycle(ctx context.Context, client contract.GitClient, repoPath string, commits []schema.EnrichedCommit, paths []string) (*schema.LifecycleOutput, error) {
	out := &schema.LifecycleOutput{Files: make([]schema.FileLifecycle, 0, len(paths))}

	for _, path := range paths {
		var history []schema.FileSnapshot

		for _, c := range commits {
			stat, touched := findFileStat(c.Files, path)
			if !touched {
				continue
			}

			lines := countBlobLines(ctx, client, repoPath, c.ID, path)
			inParent := c.ParentCount > 0 &&
				countBlobLines(ctx, client, repoPath, c.ID+"^", path) != nil

			status := snapshotStatus(lines, inParent, stat.Additions, stat.Deletions)

			history = append(history, schema.FileSnapshot{
				Commit:    c.ShortID,
				Date:      formatDate(c.Timestamp),
				Message:   c.FirstLine,
				Lines:     lines,
				Additions: stat.Additions,
				Deletions: stat.Deletions,
				NetChange: int64(stat.Additions) - int64(stat.Deletions),
				Status:    status,
			})
		}

		currentLines := countBlobLines(ctx, client, repoPath, "HEAD", path)

		out.Files = append(out.Files, schema.FileLifecycle{
			Path:         path,
			Exists:       currentLines != nil,
			CurrentLines: currentLines,
			History:      history,
		})
	}

	return out, nil
}

func findFileStat(files []schema.FileStat, path string) (schema.FileStat, bool) {
	for _, f := range files {
		if f.Path == path {
			return f, true
		}
	}
	return schema.FileStat{}, false
}

func snapshotStatus(lines *int, inParent bool, adds, dels int) schema.SnapshotStatus {
	switch {
	case lines != nil && !inParent:
		return schema.StatusCreated
	case lines == nil:
		return schema.StatusDeleted
	case adds > 0 && dels > 0:
		return schema.StatusModified
	case adds > 0:
		return schema.StatusGrown
	case dels > 0:
		return schema.StatusShrunk
	default:
		return schema.StatusTouched
	}
}

// countBlobLines returns the line count of path at ref, or nil when the blob
// is absent. A trailing partial line counts as a line.
func countBlobLines(ctx context.Context, client contract.GitClient, repoPath, ref, path string) *int {
	raw, err := client.ReadBlob(ctx, repoPath, ref, path)
	if err != nil {
		return nil
	}
	content := string(raw)
	count := strings.Count(content, "\n")
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		count++
	}
	return &count
}
