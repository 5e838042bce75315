package core

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/huangsam/gitintel/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCache struct {
	entries map[string]json.RawMessage
	reads   int
	writes  int
	failPut bool
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]json.RawMessage)}
}

func (s *stubCache) Read(_ context.Context, key string) json.RawMessage {
	s.reads++
	return s.entries[key]
}

func (s *stubCache) Write(_ context.Context, key string, result any) error {
	s.writes++
	if s.failPut {
		return errors.New("disk full")
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	s.entries[key] = raw
	return nil
}

func (s *stubCache) Clear() error {
	s.entries = make(map[string]json.RawMessage)
	return nil
}

func (s *stubCache) Status() (schema.CacheStatus, error) {
	return schema.CacheStatus{Entries: len(s.entries)}, nil
}

func TestCacheKey(t *testing.T) {
	since := int64(1700000000)
	until := int64(1700100000)

	tests := []struct {
		name    string
		command string
		since   *int64
		until   *int64
		extra   []string
		want    string
	}{
		{"no bounds", "metrics", nil, nil, nil, "metrics-all-all.json"},
		{"both bounds", "churn", &since, &until, nil, "churn-1700000000-1700100000.json"},
		{"since only", "churn", &since, nil, nil, "churn-1700000000-all.json"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CacheKey(tc.command, tc.since, tc.until, tc.extra))
		})
	}
}

func TestCacheKeyExtras(t *testing.T) {
	withExtra := CacheKey("hotspots", nil, nil, []string{"depth=2"})
	without := CacheKey("hotspots", nil, nil, nil)
	assert.NotEqual(t, without, withExtra)

	// Argument order never changes the key.
	assert.Equal(t,
		CacheKey("patterns", nil, nil, []string{"limit=5", "convergence=50"}),
		CacheKey("patterns", nil, nil, []string{"convergence=50", "limit=5"}))

	// Distinct extras hash apart.
	assert.NotEqual(t,
		CacheKey("hotspots", nil, nil, []string{"depth=1"}),
		CacheKey("hotspots", nil, nil, []string{"depth=2"}))
}

func TestCachedResult(t *testing.T) {
	ctx := context.Background()

	t.Run("miss computes and writes back", func(t *testing.T) {
		cache := newStubCache()
		calls := 0
		compute := func() (*schema.ChurnOutput, error) {
			calls++
			return &schema.ChurnOutput{TotalCommitsAnalyzed: 7}, nil
		}

		result, err := CachedResult(ctx, cache, false, "churn-all-all.json", compute)
		require.NoError(t, err)
		assert.Equal(t, 7, result.TotalCommitsAnalyzed)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, cache.writes)

		// Second call hits the cache.
		result, err = CachedResult(ctx, cache, false, "churn-all-all.json", compute)
		require.NoError(t, err)
		assert.Equal(t, 7, result.TotalCommitsAnalyzed)
		assert.Equal(t, 1, calls)
	})

	t.Run("noCache bypasses read and write", func(t *testing.T) {
		cache := newStubCache()
		compute := func() (*schema.ChurnOutput, error) {
			return &schema.ChurnOutput{TotalCommitsAnalyzed: 1}, nil
		}

		_, err := CachedResult(ctx, cache, true, "churn-all-all.json", compute)
		require.NoError(t, err)
		assert.Zero(t, cache.reads)
		assert.Zero(t, cache.writes)
	})

	t.Run("nil cache still computes", func(t *testing.T) {
		result, err := CachedResult(ctx, nil, false, "k", func() (*schema.ChurnOutput, error) {
			return &schema.ChurnOutput{TotalCommitsAnalyzed: 3}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, result.TotalCommitsAnalyzed)
	})

	t.Run("corrupt entry falls back to compute", func(t *testing.T) {
		cache := newStubCache()
		cache.entries["k"] = json.RawMessage(`{not json`)

		result, err := CachedResult(ctx, cache, false, "k", func() (*schema.ChurnOutput, error) {
			return &schema.ChurnOutput{TotalCommitsAnalyzed: 5}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 5, result.TotalCommitsAnalyzed)
	})

	t.Run("write failure does not fail the run", func(t *testing.T) {
		cache := newStubCache()
		cache.failPut = true

		result, err := CachedResult(ctx, cache, false, "k", func() (*schema.ChurnOutput, error) {
			return &schema.ChurnOutput{TotalCommitsAnalyzed: 9}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 9, result.TotalCommitsAnalyzed)
	})

	t.Run("compute error propagates", func(t *testing.T) {
		cache := newStubCache()
		_, err := CachedResult(ctx, cache, false, "k", func() (*schema.ChurnOutput, error) {
			return nil, errors.New("git failed")
		})
		require.Error(t, err)
		assert.Zero(t, cache.writes)
	})
}
