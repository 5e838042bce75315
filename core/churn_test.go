package core

import (
	"testing"

	"github.com/huangsam/gitintel/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeChurn(t *testing.T) {
	commits := []schema.EnrichedCommit{
		enriched("c1", 100, schema.LabelFeat, "feat: a",
			schema.FileStat{Path: "a.go", Additions: 10, Deletions: 5},
			schema.FileStat{Path: "b.go", Additions: 1, Deletions: 1}),
		enriched("c2", 200, schema.LabelFix, "fix: a",
			schema.FileStat{Path: "a.go", Additions: 3, Deletions: 2}),
	}

	out := ComputeChurn(commits, 10)

	assert.Equal(t, 2, out.TotalCommitsAnalyzed)
	assert.Equal(t, 2, out.TotalFiles)
	require.Len(t, out.Files, 2)

	top := out.Files[0]
	assert.Equal(t, "a.go", top.Path)
	assert.Equal(t, 13, top.Additions)
	assert.Equal(t, 7, top.Deletions)
	assert.Equal(t, 20, top.TotalChurn)
	assert.Equal(t, 2, top.CommitCount)
}

func TestComputeChurnTiesAndLimit(t *testing.T) {
	commits := []schema.EnrichedCommit{
		enriched("c1", 100, schema.LabelFeat, "feat: a",
			schema.FileStat{Path: "z.go", Additions: 5, Deletions: 0},
			schema.FileStat{Path: "a.go", Additions: 5, Deletions: 0},
			schema.FileStat{Path: "m.go", Additions: 9, Deletions: 0}),
	}

	out := ComputeChurn(commits, 2)

	// TotalFiles reports the pre-truncation count.
	assert.Equal(t, 3, out.TotalFiles)
	require.Len(t, out.Files, 2)
	assert.Equal(t, "m.go", out.Files[0].Path)
	// Equal churn orders by path.
	assert.Equal(t, "a.go", out.Files[1].Path)
}

func TestComputeChurnEmpty(t *testing.T) {
	out := ComputeChurn(nil, 10)
	assert.Empty(t, out.Files)
	assert.Zero(t, out.TotalFiles)
	assert.Zero(t, out.TotalCommitsAnalyzed)
}
