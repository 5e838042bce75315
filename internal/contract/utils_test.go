package contract

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		maxWidth int
		want     string
	}{
		{"short path unchanged", "a.go", 20, "a.go"},
		{"exact width unchanged", "12345", 5, "12345"},
		{"long path keeps the tail", "internal/core/walker.go", 10, "...lker.go"},
		{"width too small for ellipsis", "internal/core/walker.go", 3, "internal/core/walker.go"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TruncatePath(tc.path, tc.maxWidth))
		})
	}
}

func TestNormalizeRepoFilePath(t *testing.T) {
	repo := t.TempDir()

	t.Run("relative path", func(t *testing.T) {
		got, err := NormalizeRepoFilePath(repo, "core/walker.go")
		require.NoError(t, err)
		assert.Equal(t, "core/walker.go", got)
	})

	t.Run("dot-prefixed path", func(t *testing.T) {
		got, err := NormalizeRepoFilePath(repo, "./core/walker.go")
		require.NoError(t, err)
		assert.Equal(t, "core/walker.go", got)
	})

	t.Run("absolute path inside the repo", func(t *testing.T) {
		got, err := NormalizeRepoFilePath(repo, filepath.Join(repo, "core", "walker.go"))
		require.NoError(t, err)
		assert.Equal(t, "core/walker.go", got)
	})

	t.Run("escaping path is rejected", func(t *testing.T) {
		_, err := NormalizeRepoFilePath(repo, "../outside.go")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "outside repository")
	})
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "True", "1"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.True(t, got, s)
	}
	for _, s := range []string{"no", "NO", "false", "False", "0"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.False(t, got, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
