package core

import (
	"testing"

	"github.com/huangsam/gitintel/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirPrefix(t *testing.T) {
	tests := []struct {
		path     string
		depth    int
		expected string
	}{
		{"src/lib.go", 1, "src"},
		{"README.md", 1, "."},
		{"src/utils/helper.go", 2, "src/utils"},
		{"src/lib.go", 2, "src"},
		{"a/b/c/d.go", 1, "a"},
		{"a/b/c/d.go", 3, "a/b/c"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, dirPrefix(tt.path, tt.depth), "dirPrefix(%q, %d)", tt.path, tt.depth)
	}
}

func TestComputeHotspots(t *testing.T) {
	commits := []schema.EnrichedCommit{
		enriched("c1", 100, schema.LabelFeat, "feat: a",
			schema.FileStat{Path: "core/a.go", Additions: 10, Deletions: 2},
			schema.FileStat{Path: "core/b.go", Additions: 5, Deletions: 1}),
		enriched("c2", 200, schema.LabelFix, "fix: a",
			schema.FileStat{Path: "core/a.go", Additions: 3, Deletions: 3},
			schema.FileStat{Path: "docs/readme.md", Additions: 1, Deletions: 0}),
	}

	out := ComputeHotspots(commits, 1, 10)

	assert.Equal(t, 2, out.TotalCommitsAnalyzed)
	assert.Equal(t, 2, out.TotalDirectories)
	require.Len(t, out.Directories, 2)

	core := out.Directories[0]
	assert.Equal(t, "core", core.Path)
	assert.Equal(t, 18, core.Additions)
	assert.Equal(t, 6, core.Deletions)
	assert.Equal(t, 24, core.TotalChurn)
	// c1 touched two core files but counts once.
	assert.Equal(t, 2, core.CommitCount)
	assert.Equal(t, 2, core.FileCount)
	assert.Equal(t, map[schema.Label]int{schema.LabelFeat: 1, schema.LabelFix: 1}, core.Labels)

	docs := out.Directories[1]
	assert.Equal(t, "docs", docs.Path)
	assert.Equal(t, 1, docs.CommitCount)
	assert.Equal(t, map[schema.Label]int{schema.LabelFix: 1}, docs.Labels)
}

func TestComputeHotspotsDepthAndLimit(t *testing.T) {
	commits := []schema.EnrichedCommit{
		enriched("c1", 100, schema.LabelFeat, "feat: a",
			schema.FileStat{Path: "src/utils/helper.go", Additions: 9, Deletions: 0},
			schema.FileStat{Path: "src/net/conn.go", Additions: 5, Deletions: 0},
			schema.FileStat{Path: "main.go", Additions: 1, Deletions: 0}),
	}

	out := ComputeHotspots(commits, 2, 2)

	assert.Equal(t, 3, out.TotalDirectories)
	require.Len(t, out.Directories, 2)
	assert.Equal(t, "src/utils", out.Directories[0].Path)
	assert.Equal(t, "src/net", out.Directories[1].Path)
	assert.Equal(t, 2, out.Depth)
}
