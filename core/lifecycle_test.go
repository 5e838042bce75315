package core

import (
	"context"
	"errors"
	"testing"

	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStatus(t *testing.T) {
	lines := func(n int) *int { return &n }

	tests := []struct {
		name     string
		lines    *int
		inParent bool
		adds     int
		dels     int
		want     schema.SnapshotStatus
	}{
		{"created", lines(10), false, 10, 0, schema.StatusCreated},
		{"deleted", nil, true, 0, 10, schema.StatusDeleted},
		{"modified", lines(10), true, 5, 3, schema.StatusModified},
		{"grown", lines(10), true, 5, 0, schema.StatusGrown},
		{"shrunk", lines(10), true, 0, 5, schema.StatusShrunk},
		{"touched", lines(10), true, 0, 0, schema.StatusTouched},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, snapshotStatus(tc.lines, tc.inParent, tc.adds, tc.dels))
		})
	}
}

func TestCountBlobLines(t *testing.T) {
	ctx := context.Background()
	client := new(contract.MockGitClient)
	client.On("ReadBlob", ctx, "/repo", "HEAD", "terminated.go").Return([]byte("a\nb\n"), nil)
	client.On("ReadBlob", ctx, "/repo", "HEAD", "partial.go").Return([]byte("a\nb"), nil)
	client.On("ReadBlob", ctx, "/repo", "HEAD", "empty.go").Return([]byte(""), nil)
	client.On("ReadBlob", ctx, "/repo", "HEAD", "gone.go").Return([]byte(nil), errors.New("no blob"))

	terminated := countBlobLines(ctx, client, "/repo", "HEAD", "terminated.go")
	require.NotNil(t, terminated)
	assert.Equal(t, 2, *terminated)

	partial := countBlobLines(ctx, client, "/repo", "HEAD", "partial.go")
	require.NotNil(t, partial)
	assert.Equal(t, 2, *partial)

	empty := countBlobLines(ctx, client, "/repo", "HEAD", "empty.go")
	require.NotNil(t, empty)
	assert.Equal(t, 0, *empty)

	assert.Nil(t, countBlobLines(ctx, client, "/repo", "HEAD", "gone.go"))
}

func TestComputeLifecycle(t *testing.T) {
	ctx := context.Background()
	commits := []schema.EnrichedCommit{
		enriched("ccccccc1", 3*86400, schema.LabelFix, "fix: trim handler",
			schema.FileStat{Path: "api.go", Additions: 2, Deletions: 8}),
		enriched("bbbbbbb1", 2*86400, schema.LabelChore, "chore: bump deps",
			schema.FileStat{Path: "go.mod", Additions: 1, Deletions: 1}),
		enriched("aaaaaaa1", 1*86400, schema.LabelFeat, "feat: add handler",
			schema.FileStat{Path: "api.go", Additions: 20, Deletions: 0}),
	}

	client := new(contract.MockGitClient)
	client.On("ReadBlob", ctx, "/repo", "ccccccc1", "api.go").Return([]byte("a\nb\nc\n"), nil)
	client.On("ReadBlob", ctx, "/repo", "ccccccc1^", "api.go").Return([]byte("old\n"), nil)
	client.On("ReadBlob", ctx, "/repo", "aaaaaaa1", "api.go").Return([]byte("a\nb\n"), nil)
	client.On("ReadBlob", ctx, "/repo", "aaaaaaa1^", "api.go").Return([]byte(nil), errors.New("no blob"))
	client.On("ReadBlob", ctx, "/repo", "HEAD", "api.go").Return([]byte("a\nb\nc\n"), nil)

	out, err := ComputeLifecycle(ctx, client, "/repo", commits, []string{"api.go"})
	require.NoError(t, err)
	require.Len(t, out.Files, 1)

	file := out.Files[0]
	assert.Equal(t, "api.go", file.Path)
	assert.True(t, file.Exists)
	require.NotNil(t, file.CurrentLines)
	assert.Equal(t, 3, *file.CurrentLines)

	// The chore commit never touched api.go and is absent from the history.
	require.Len(t, file.History, 2)

	newest := file.History[0]
	assert.Equal(t, "ccccccc", newest.Commit)
	assert.Equal(t, "1970-01-04", newest.Date)
	assert.Equal(t, schema.StatusModified, newest.Status)
	assert.Equal(t, int64(-6), newest.NetChange)

	oldest := file.History[1]
	assert.Equal(t, "aaaaaaa", oldest.Commit)
	assert.Equal(t, schema.StatusCreated, oldest.Status)
	assert.Equal(t, 20, oldest.Additions)
}

func TestComputeLifecycleDeletedFile(t *testing.T) {
	ctx := context.Background()
	commits := []schema.EnrichedCommit{
		enriched("ddddddd1", 86400, schema.LabelChore, "chore: drop legacy",
			schema.FileStat{Path: "legacy.go", Additions: 0, Deletions: 50}),
	}

	client := new(contract.MockGitClient)
	client.On("ReadBlob", ctx, "/repo", "ddddddd1", "legacy.go").Return([]byte(nil), errors.New("no blob"))
	client.On("ReadBlob", ctx, "/repo", "ddddddd1^", "legacy.go").Return([]byte("x\n"), nil)
	client.On("ReadBlob", ctx, "/repo", "HEAD", "legacy.go").Return([]byte(nil), errors.New("no blob"))

	out, err := ComputeLifecycle(ctx, client, "/repo", commits, []string{"legacy.go"})
	require.NoError(t, err)
	require.Len(t, out.Files, 1)

	file := out.Files[0]
	assert.False(t, file.Exists)
	assert.Nil(t, file.CurrentLines)
	require.Len(t, file.History, 1)
	assert.Equal(t, schema.StatusDeleted, file.History[0].Status)
	assert.Nil(t, file.History[0].Lines)
}
