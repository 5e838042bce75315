package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/schema"
)

// Engine wires one analysis invocation together: the git client, the
// optional identity and ML collaborators, the result cache, and the optional
// analysis store.
type Engine struct {
	Client   contract.GitClient
	Resolver contract.IdentityResolver
	ML       contract.TextClassifier
	Cache    contract.ResultCache
	Store    contract.AnalysisStore
	Cfg      *contract.Config
}

// RunMetrics produces the classification summary for the configured range.
func (e *Engine) RunMetrics(ctx context.Context) (*schema.MetricsOutput, error) {
	key := CacheKey("metrics", e.Cfg.Since, e.Cfg.Until, e.extraLimitParams())
	return runRecorded(ctx, e, "metrics", func() (*schema.MetricsOutput, error) {
		return CachedResult(ctx, e.Cache, e.Cfg.NoCache, key, func() (*schema.MetricsOutput, error) {
			commits, err := e.enrichedCommits(ctx)
			if err != nil {
				return nil, err
			}
			return ComputeMetrics(commits, e.Cfg.ResultLimit), nil
		})
	}, func(out *schema.MetricsOutput) int { return out.TotalCommits })
}

// RunChurn produces the file churn ranking for the configured range. When an
// analysis store is active, the ranked rows are also persisted per run.
func (e *Engine) RunChurn(ctx context.Context) (*schema.ChurnOutput, error) {
	key := CacheKey("churn", e.Cfg.Since, e.Cfg.Until, e.extraLimitParams())
	return runRecordedWith(ctx, e, "churn", func() (*schema.ChurnOutput, error) {
		return CachedResult(ctx, e.Cache, e.Cfg.NoCache, key, func() (*schema.ChurnOutput, error) {
			commits, err := e.enrichedCommits(ctx)
			if err != nil {
				return nil, err
			}
			return ComputeChurn(commits, e.Cfg.ResultLimit), nil
		})
	}, func(out *schema.ChurnOutput) int { return out.TotalCommitsAnalyzed },
		func(runID int64, out *schema.ChurnOutput) {
			for _, f := range out.Files {
				if err := e.Store.RecordFileChurn(runID, f); err != nil {
					contract.LogWarn("recording file churn", err)
					return
				}
			}
		})
}

// RunHotspots produces the directory-level churn rollup.
func (e *Engine) RunHotspots(ctx context.Context) (*schema.HotspotsOutput, error) {
	extra := append(e.extraLimitParams(), fmt.Sprintf("depth=%d", e.Cfg.Depth))
	key := CacheKey("hotspots", e.Cfg.Since, e.Cfg.Until, extra)
	return runRecorded(ctx, e, "hotspots", func() (*schema.HotspotsOutput, error) {
		return CachedResult(ctx, e.Cache, e.Cfg.NoCache, key, func() (*schema.HotspotsOutput, error) {
			commits, err := e.enrichedCommits(ctx)
			if err != nil {
				return nil, err
			}
			return ComputeHotspots(commits, e.Cfg.Depth, e.Cfg.ResultLimit), nil
		})
	}, func(out *schema.HotspotsOutput) int { return out.TotalCommitsAnalyzed })
}

// RunAuthors produces the per-directory authorship and bus-factor table.
func (e *Engine) RunAuthors(ctx context.Context) (*schema.AuthorsOutput, error) {
	extra := append(e.extraLimitParams(), fmt.Sprintf("depth=%d", e.Cfg.Depth))
	key := CacheKey("authors", e.Cfg.Since, e.Cfg.Until, extra)
	return runRecorded(ctx, e, "authors", func() (*schema.AuthorsOutput, error) {
		return CachedResult(ctx, e.Cache, e.Cfg.NoCache, key, func() (*schema.AuthorsOutput, error) {
			commits, err := e.enrichedCommits(ctx)
			if err != nil {
				return nil, err
			}
			return ComputeAuthors(commits, e.Cfg.Depth, e.Cfg.ResultLimit), nil
		})
	}, func(out *schema.AuthorsOutput) int { return out.TotalCommitsAnalyzed })
}

// RunLifecycle produces timelines for the configured tracked paths.
func (e *Engine) RunLifecycle(ctx context.Context) (*schema.LifecycleOutput, error) {
	key := CacheKey("lifecycle", e.Cfg.Since, e.Cfg.Until, e.Cfg.Paths)
	return runRecorded(ctx, e, "lifecycle", func() (*schema.LifecycleOutput, error) {
		return CachedResult(ctx, e.Cache, e.Cfg.NoCache, key, func() (*schema.LifecycleOutput, error) {
			commits, err := e.enrichedCommits(ctx)
			if err != nil {
				return nil, err
			}
			return ComputeLifecycle(ctx, e.Client, e.Cfg.RepoPath, commits, e.Cfg.Paths)
		})
	}, func(out *schema.LifecycleOutput) int { return 0 })
}

// RunPatterns produces the full pattern and signal report.
func (e *Engine) RunPatterns(ctx context.Context) (*schema.PatternsOutput, error) {
	extra := append(e.extraLimitParams(),
		fmt.Sprintf("convergence-limit=%d", e.Cfg.ConvergenceLimit),
		fmt.Sprintf("limit-explicit=%t", e.Cfg.LimitExplicit))
	key := CacheKey("patterns", e.Cfg.Since, e.Cfg.Until, extra)
	return runRecorded(ctx, e, "patterns", func() (*schema.PatternsOutput, error) {
		return CachedResult(ctx, e.Cache, e.Cfg.NoCache, key, func() (*schema.PatternsOutput, error) {
			commits, err := e.enrichedCommits(ctx)
			if err != nil {
				return nil, err
			}
			fileSizes, err := e.Client.ListFileSizes(ctx, e.Cfg.RepoPath, "HEAD")
			if err != nil {
				return nil, err
			}
			return DetectPatterns(commits, fileSizes, e.Cfg.ResultLimit, e.Cfg.ConvergenceLimit, e.Cfg.LimitExplicit), nil
		})
	}, func(out *schema.PatternsOutput) int { return out.TotalCommitsAnalyzed })
}

// RunTrends produces the multi-window trend report. Never cached: window
// bounds derive from the wall clock, so entries would key on a moving target.
func (e *Engine) RunTrends(ctx context.Context) (*schema.TrendsOutput, error) {
	return runRecorded(ctx, e, "trends", func() (*schema.TrendsOutput, error) {
		return ComputeTrends(ctx, e.Client, e.Resolver, e.ML, e.Cfg)
	}, func(out *schema.TrendsOutput) int {
		total := 0
		for _, w := range out.Windows {
			total += w.TotalCommits
		}
		return total
	})
}

func (e *Engine) enrichedCommits(ctx context.Context) ([]schema.EnrichedCommit, error) {
	stream := NewCommitStream(e.Client, e.Resolver, e.Cfg)
	return Enrich(ctx, stream, e.ML)
}

func (e *Engine) extraLimitParams() []string {
	return []string{fmt.Sprintf("limit=%d", e.Cfg.ResultLimit)}
}

func (e *Engine) configParams() map[string]any {
	return map[string]any{
		"since": boundLabel(e.Cfg.Since),
		"until": boundLabel(e.Cfg.Until),
		"limit": e.Cfg.ResultLimit,
		"depth": e.Cfg.Depth,
	}
}

// runRecorded brackets a computation with analysis-run bookkeeping when a
// store is active. Store failures are warnings only.
func runRecorded[T any](ctx context.Context, e *Engine, command string, compute func() (*T, error), totalOf func(*T) int) (*T, error) {
	return runRecordedWith(ctx, e, command, compute, totalOf, nil)
}

func runRecordedWith[T any](ctx context.Context, e *Engine, command string, compute func() (*T, error), totalOf func(*T) int, record func(int64, *T)) (*T, error) {
	if e.Store == nil {
		return compute()
	}

	head, err := e.Client.GetHeadCommit(ctx, e.Cfg.RepoPath)
	if err != nil {
		return nil, err
	}

	runID, err := e.Store.BeginRun(command, head, time.Now(), e.configParams())
	if err != nil {
		contract.LogWarn("starting analysis run", err)
		return compute()
	}

	result, err := compute()
	if err != nil {
		return nil, err
	}

	if record != nil {
		record(runID, result)
	}
	if err := e.Store.EndRun(runID, time.Now(), totalOf(result)); err != nil {
		contract.LogWarn("finishing analysis run", err)
	}
	return result, nil
}
