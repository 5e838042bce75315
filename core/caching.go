package core

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"

	"github.com/huangsam/gitintel/internal/contract"
)

// CacheKey builds the cache filename for an analysis. Absent bounds render as
// "all"; present bounds render as their raw epoch value. Extra parameters are
// sorted before hashing so that argument order never changes the key.
func CacheKey(command string, since, until *int64, extra []string) string {
	sinceLabel := boundLabel(since)
	untilLabel := boundLabel(until)

	if len(extra) == 0 {
		return fmt.Sprintf("%s-%s-%s.json", command, sinceLabel, untilLabel)
	}

	sorted := make([]string, len(extra))
	copy(sorted, extra)
	sort.Strings(sorted)

	h := fnv.New64a()
	for _, s := range sorted {
		_, _ = h.Write([]byte(s))
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%s-%x-%s-%s.json", command, h.Sum64(), sinceLabel, untilLabel)
}

func boundLabel(bound *int64) string {
	if bound == nil {
		return "all"
	}
	return strconv.FormatInt(*bound, 10)
}

// CachedResult wraps a compute function with the result cache. A valid cached
// payload is unmarshaled into T and returned; on miss the result is computed,
// written back, and returned. Cache failures in either direction collapse to
// a recompute, never an error.
func CachedResult[T any](ctx context.Context, cache contract.ResultCache, noCache bool, key string, compute func() (*T, error)) (*T, error) {
	if cache != nil && !noCache {
		if raw := cache.Read(ctx, key); raw != nil {
			var result T
			if err := json.Unmarshal(raw, &result); err == nil {
				return &result, nil
			}
		}
	}

	result, err := compute()
	if err != nil {
		return nil, err
	}

	if cache != nil && !noCache {
		if err := cache.Write(ctx, key, result); err != nil {
			contract.LogWarn("writing cache entry", err)
		}
	}
	return result, nil
}
