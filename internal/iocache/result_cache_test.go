package iocache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/gitintel/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Value int `json:"value"`
}

func newTestCache(t *testing.T, head string) (*FileCache, *contract.MockGitClient) {
	t.Helper()
	client := new(contract.MockGitClient)
	client.On("GetHeadCommit", context.Background(), "/repo").Return(head, nil)
	return NewFileCache(client, "/repo", t.TempDir()), client
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t, "abc123")

	require.NoError(t, cache.Write(ctx, "metrics-all-all.json", samplePayload{Value: 42}))

	raw := cache.Read(ctx, "metrics-all-all.json")
	require.NotNil(t, raw)

	var got samplePayload
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 42, got.Value)
}

func TestFileCacheMissOnUnknownKey(t *testing.T) {
	cache, _ := newTestCache(t, "abc123")
	assert.Nil(t, cache.Read(context.Background(), "churn-all-all.json"))
}

func TestFileCacheInvalidatesOnNewHead(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	writeClient := new(contract.MockGitClient)
	writeClient.On("GetHeadCommit", ctx, "/repo").Return("abc123", nil)
	require.NoError(t, NewFileCache(writeClient, "/repo", dir).Write(ctx, "k.json", samplePayload{Value: 1}))

	// A new head makes every stamped entry stale.
	readClient := new(contract.MockGitClient)
	readClient.On("GetHeadCommit", ctx, "/repo").Return("def456", nil)
	assert.Nil(t, NewFileCache(readClient, "/repo", dir).Read(ctx, "k.json"))
}

func TestFileCacheRejectsCorruptEntry(t *testing.T) {
	cache, _ := newTestCache(t, "abc123")
	require.NoError(t, os.MkdirAll(cache.dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cache.dir, "k.json"), []byte("{not json"), 0o644))

	assert.Nil(t, cache.Read(context.Background(), "k.json"))
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t, "abc123")

	require.NoError(t, cache.Write(ctx, "a.json", samplePayload{Value: 1}))
	require.NoError(t, cache.Write(ctx, "b.json", samplePayload{Value: 2}))
	// Non-cache files survive a clear.
	require.NoError(t, os.WriteFile(filepath.Join(cache.dir, "notes.txt"), []byte("keep"), 0o644))

	require.NoError(t, cache.Clear())

	assert.Nil(t, cache.Read(ctx, "a.json"))
	assert.Nil(t, cache.Read(ctx, "b.json"))
	_, err := os.Stat(filepath.Join(cache.dir, "notes.txt"))
	assert.NoError(t, err)
}

func TestFileCacheClearMissingDir(t *testing.T) {
	cache, _ := newTestCache(t, "abc123")
	assert.NoError(t, cache.Clear())
}

func TestFileCacheStatus(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t, "abc123")

	status, err := cache.Status()
	require.NoError(t, err)
	assert.Zero(t, status.Entries)

	require.NoError(t, cache.Write(ctx, "a.json", samplePayload{Value: 1}))
	require.NoError(t, cache.Write(ctx, "b.json", samplePayload{Value: 2}))

	status, err = cache.Status()
	require.NoError(t, err)
	assert.Equal(t, 2, status.Entries)
	assert.Greater(t, status.TotalBytes, int64(0))
	assert.Equal(t, cache.dir, status.Directory)
}
