package core

import (
	"context"
	"testing"

	"github.com/huangsam/gitintel/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = "--aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa|p1 p2|1700003000|Ada|ada@example.com|Merge branch 'main'\n" +
	"--bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb|p1|1700002000|Ada|ada@example.com|fix: parser crash\n" +
	"10\t2\tcore/parser.go\n" +
	"3\t1\tcore/parser_test.go\n" +
	"--cccccccccccccccccccccccccccccccccccccccc||1700001000|Bob|bob@example.com|feat: initial commit\n" +
	"5\t0\tmain.go\n" +
	"-\t-\tassets/logo.png\n"

func streamWithLog(t *testing.T, log string, cfg *contract.Config) *CommitStream {
	t.Helper()
	client := &contract.MockGitClient{}
	client.On("GetHistoryLog", context.Background(), cfg.RepoPath).Return([]byte(log), nil)
	return NewCommitStream(client, nil, cfg)
}

func TestCommitStreamCollect(t *testing.T) {
	cfg := &contract.Config{RepoPath: "/repo"}
	entries, err := streamWithLog(t, sampleLog, cfg).Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	merge := entries[0]
	assert.Equal(t, "aaaaaaa", merge.Record.ShortID)
	assert.Equal(t, 2, merge.Record.ParentCount)
	assert.Empty(t, merge.Files)

	fix := entries[1]
	assert.Equal(t, "fix: parser crash", fix.Record.FirstLine)
	assert.Equal(t, 1, fix.Record.ParentCount)
	require.Len(t, fix.Files, 2)
	assert.Equal(t, "core/parser.go", fix.Files[0].Path)
	assert.Equal(t, 10, fix.Files[0].Additions)
	assert.Equal(t, 2, fix.Files[0].Deletions)

	initial := entries[2]
	assert.Equal(t, 0, initial.Record.ParentCount)
	require.Len(t, initial.Files, 2)
	// Binary numstat rows count as zero churn.
	assert.Equal(t, "assets/logo.png", initial.Files[1].Path)
	assert.Equal(t, 0, initial.Files[1].Additions)
	assert.Equal(t, 0, initial.Files[1].Deletions)
}

func TestCommitStreamTimeBounds(t *testing.T) {
	t.Run("until skips newer commits", func(t *testing.T) {
		until := int64(1700002500)
		cfg := &contract.Config{RepoPath: "/repo", Until: &until}
		entries, err := streamWithLog(t, sampleLog, cfg).Collect(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "bbbbbbb", entries[0].Record.ShortID)
	})

	t.Run("since stops the walk early", func(t *testing.T) {
		since := int64(1700001500)
		cfg := &contract.Config{RepoPath: "/repo", Since: &since}
		entries, err := streamWithLog(t, sampleLog, cfg).Collect(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "aaaaaaa", entries[0].Record.ShortID)
		assert.Equal(t, "bbbbbbb", entries[1].Record.ShortID)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		since := int64(1700001000)
		until := int64(1700003000)
		cfg := &contract.Config{RepoPath: "/repo", Since: &since, Until: &until}
		entries, err := streamWithLog(t, sampleLog, cfg).Collect(context.Background())
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})
}

func TestCommitStreamMalformedInput(t *testing.T) {
	log := "--deadbeef|p1|not-a-number|Ada|ada@example.com|fix: thing\n" +
		"garbage line without tabs\n" +
		"--short|header|only\n"
	cfg := &contract.Config{RepoPath: "/repo"}
	entries, err := streamWithLog(t, log, cfg).Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	// A bad timestamp parses to zero instead of dropping the commit.
	assert.Equal(t, int64(0), entries[0].Record.Timestamp)
	assert.Empty(t, entries[0].Files)
}

func TestResolveRenamePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"plain path", "core/parser.go", "core/parser.go"},
		{"whole file rename", "old.go => new.go", "new.go"},
		{"braced middle segment", "src/{old => new}/mod.go", "src/new/mod.go"},
		{"braced empty old side", "src/{ => sub}/mod.go", "src/sub/mod.go"},
		{"braced empty new side", "src/{sub => }/mod.go", "src/mod.go"},
		{"brace without arrow", "weird/{literal}/path.go", "weird/{literal}/path.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveRenamePath(tt.path))
		})
	}
}
