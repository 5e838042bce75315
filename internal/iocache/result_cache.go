package iocache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/schema"
)

// cacheEntry is the on-disk wrapper around a memoized analysis payload.
type cacheEntry struct {
	HeadCommit string          `json:"head_commit"`
	ComputedAt string          `json:"computed_at"`
	Result     json.RawMessage `json:"result"`
}

// FileCache memoizes analysis payloads as one JSON file per key inside a
// repository-local cache directory. An entry is valid only while the
// repository head matches the head stamped into it; validity is re-checked
// on every read.
type FileCache struct {
	client   contract.GitClient
	repoPath string
	dir      string
}

var _ contract.ResultCache = &FileCache{} // Compile-time check

// NewFileCache creates a cache rooted at gitDir/gitintel-cache.
func NewFileCache(client contract.GitClient, repoPath, gitDir string) *FileCache {
	return &FileCache{
		client:   client,
		repoPath: repoPath,
		dir:      filepath.Join(gitDir, schema.CacheDirName),
	}
}

// Read returns the cached payload for key, or nil on any kind of miss:
// missing file, unparsable JSON, or a stale head. All misses look the same
// to the caller.
func (fc *FileCache) Read(ctx context.Context, key string) json.RawMessage {
	data, err := os.ReadFile(filepath.Join(fc.dir, key))
	if err != nil {
		return nil
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}

	currentHead, err := fc.client.GetHeadCommit(ctx, fc.repoPath)
	if err != nil || entry.HeadCommit != currentHead {
		return nil
	}
	return entry.Result
}

// Write stores the payload for key stamped with the current head. Failures
// surface as errors for the caller to log; caching is never a correctness
// dependency.
func (fc *FileCache) Write(ctx context.Context, key string, result any) error {
	if err := os.MkdirAll(fc.dir, 0o755); err != nil {
		return err
	}

	currentHead, err := fc.client.GetHeadCommit(ctx, fc.repoPath)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}

	entry := cacheEntry{
		HeadCommit: currentHead,
		ComputedAt: time.Now().UTC().Format(time.RFC3339),
		Result:     payload,
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(fc.dir, key), data, 0o644)
}

// Clear removes every cache entry.
func (fc *FileCache) Clear() error {
	entries, err := os.ReadDir(fc.dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(fc.dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Status reports entry count and total size on disk.
func (fc *FileCache) Status() (schema.CacheStatus, error) {
	status := schema.CacheStatus{Directory: fc.dir}

	entries, err := os.ReadDir(fc.dir)
	if os.IsNotExist(err) {
		return status, nil
	}
	if err != nil {
		return status, err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		status.Entries++
		status.TotalBytes += info.Size()
	}
	return status, nil
}
