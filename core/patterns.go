package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/huangsam/gitintel/schema"
)

// DetectPatterns runs every pattern detector over the enriched commit list
// (newest first) and the current snapshot's file sizes. limit caps the ranked
// lists; convergenceLimit caps the convergence pair list independently, and
// limit folds into it only when the caller set it explicitly.
func DetectPatterns(commits []schema.EnrichedCommit, fileSizes []schema.FileSize, limit, convergenceLimit int, limitExplicit bool) *schema.PatternsOutput {
	links, signals := detectFixAfter(commits, limit)
	convergence, truncated := detectConvergence(fileSizes, convergenceCap(limit, convergenceLimit, limitExplicit))

	return &schema.PatternsOutput{
		FixAfterFeat:         links,
		Signals:              signals,
		MultiEditChains:      detectMultiEditChains(commits, limit),
		DirectoryChains:      detectDirectoryChains(commits, limit),
		Clusters:             detectTemporalClusters(commits, limit),
		Convergence:          convergence,
		ConvergenceTruncated: truncated,
		ConvergenceLimit:     convergenceLimit,
		TotalCommitsAnalyzed: len(commits),
	}
}

// detectFixAfter links each fix commit to the nearest preceding feat or
// refactor commit, at most FixAfterWindow positions back, that shares a
// touched file with it. The nearest qualifying origin wins and the scan stops
// there. Refactor-origin matches produce signals only; feat-origin matches
// additionally populate the fix-after-feat list.
func detectFixAfter(commits []schema.EnrichedCommit, limit int) ([]schema.FixAfterLink, []schema.Signal) {
	var links []schema.FixAfterLink
	var signals []schema.Signal

	for i, c := range commits {
		if c.Label != schema.LabelFix {
			continue
		}
		for dist := 1; dist <= schema.FixAfterWindow && i+dist < len(commits); dist++ {
			older := commits[i+dist]
			if older.Label != schema.LabelFeat && older.Label != schema.LabelRefactor {
				continue
			}
			shared := sharedFiles(c.Files, older.Files)
			if len(shared) == 0 {
				continue
			}

			gap := dist - 1
			kind := schema.SignalFixAfterFeat
			if older.Label == schema.LabelRefactor {
				kind = schema.SignalFixAfterRefactor
			}
			signals = append(signals, schema.Signal{
				Kind:     kind,
				Severity: fixAfterSeverity(gap, len(shared)),
				Message: fmt.Sprintf("fix %s follows %s %s after %d commit(s), sharing %d file(s)",
					c.ShortID, older.Label, older.ShortID, gap, len(shared)),
				Commits: []string{c.ShortID, older.ShortID},
				Files:   shared,
			})

			if older.Label == schema.LabelFeat {
				links = append(links, schema.FixAfterLink{
					FeatCommit:  older.ShortID,
					FeatDate:    formatDate(older.Timestamp),
					FeatMessage: older.FirstLine,
					FixCommit:   c.ShortID,
					FixDate:     formatDate(c.Timestamp),
					FixMessage:  c.FirstLine,
					GapCommits:  gap,
				})
			}
			break
		}
	}

	return capSlice(links, limit), signals
}

// fixAfterSeverity decays with the commit gap and grows with the shared file
// count, capped at FixAfterSharedCap files. Always in (0, 1].
func fixAfterSeverity(gap, shared int) float64 {
	if shared > schema.FixAfterSharedCap {
		shared = schema.FixAfterSharedCap
	}
	return 1.0 / float64(gap+1) * float64(shared) / float64(schema.FixAfterSharedCap)
}

func sharedFiles(a, b []schema.FileStat) []string {
	set := make(map[string]struct{}, len(b))
	for _, f := range b {
		set[f.Path] = struct{}{}
	}
	var shared []string
	for _, f := range a {
		if _, ok := set[f.Path]; ok {
			shared = append(shared, f.Path)
			delete(set, f.Path)
		}
	}
	sort.Strings(shared)
	return shared
}

// detectMultiEditChains finds files touched at least ChainMinEdits times whose
// summed churn exceeds ChainMinChurn. Both thresholds are required: touch
// count alone over-counts trivial whitespace churn.
func detectMultiEditChains(commits []schema.EnrichedCommit, limit int) []schema.MultiEditChain {
	type fileHistory struct {
		commits []schema.ChainCommit
		churn   int
	}
	histories := make(map[string]*fileHistory)

	for _, c := range commits {
		for _, f := range c.Files {
			h, ok := histories[f.Path]
			if !ok {
				h = &fileHistory{}
				histories[f.Path] = h
			}
			h.commits = append(h.commits, schema.ChainCommit{
				Commit:  c.ShortID,
				Date:    formatDate(c.Timestamp),
				Message: c.FirstLine,
			})
			h.churn += f.Churn()
		}
	}

	var chains []schema.MultiEditChain
	for path, h := range histories {
		if len(h.commits) < schema.ChainMinEdits || h.churn <= schema.ChainMinChurn {
			continue
		}
		chains = append(chains, schema.MultiEditChain{
			Path:       path,
			EditCount:  len(h.commits),
			TotalChurn: h.churn,
			Commits:    h.commits,
		})
	}

	sort.Slice(chains, func(i, j int) bool {
		if chains[i].EditCount != chains[j].EditCount {
			return chains[i].EditCount > chains[j].EditCount
		}
		return chains[i].Path < chains[j].Path
	})
	return capSlice(chains, chainCap(limit))
}

// detectDirectoryChains aggregates edits by top-level directory. Each commit
// contributes its set of distinct directories once, so one commit touching
// many files in a directory counts as a single edit.
func detectDirectoryChains(commits []schema.EnrichedCommit, limit int) []schema.DirectoryChain {
	type dirHistory struct {
		edits int
		churn int
		files map[string]struct{}
	}
	histories := make(map[string]*dirHistory)

	for _, c := range commits {
		touched := make(map[string]struct{})
		for _, f := range c.Files {
			dir := dirPrefix(f.Path, 1)
			h, ok := histories[dir]
			if !ok {
				h = &dirHistory{files: make(map[string]struct{})}
				histories[dir] = h
			}
			h.churn += f.Churn()
			h.files[f.Path] = struct{}{}
			touched[dir] = struct{}{}
		}
		for dir := range touched {
			histories[dir].edits++
		}
	}

	var chains []schema.DirectoryChain
	for dir, h := range histories {
		if h.edits < schema.ChainMinEdits {
			continue
		}
		files := make([]string, 0, len(h.files))
		for f := range h.files {
			files = append(files, f)
		}
		sort.Strings(files)
		chains = append(chains, schema.DirectoryChain{
			Path:       dir,
			EditCount:  h.edits,
			TotalChurn: h.churn,
			Files:      files,
		})
	}

	sort.Slice(chains, func(i, j int) bool {
		if chains[i].TotalChurn != chains[j].TotalChurn {
			return chains[i].TotalChurn > chains[j].TotalChurn
		}
		return chains[i].Path < chains[j].Path
	})
	return capSlice(chains, chainCap(limit))
}

func chainCap(limit int) int {
	if limit > 0 && limit < schema.DefaultResultLimit {
		return limit
	}
	return schema.DefaultResultLimit
}

// detectTemporalClusters groups commits by label and, within each label,
// greedily partitions the ascending timeline into maximal runs where every
// member is within ClusterWindow of the run's first commit. Runs never
// overlap: a commit belongs to at most one cluster.
func detectTemporalClusters(commits []schema.EnrichedCommit, limit int) []schema.TemporalCluster {
	byLabel := make(map[schema.Label][]schema.EnrichedCommit)
	for _, c := range commits {
		byLabel[c.Label] = append(byLabel[c.Label], c)
	}

	window := int64(schema.ClusterWindow / time.Second)
	var clusters []schema.TemporalCluster

	for label, group := range byLabel {
		sort.Slice(group, func(i, j int) bool {
			return group[i].Timestamp < group[j].Timestamp
		})

		start := 0
		for start < len(group) {
			end := start + 1
			for end < len(group) && group[end].Timestamp-group[start].Timestamp <= window {
				end++
			}
			if end-start >= schema.ClusterMinSize {
				run := group[start:end]
				ids := make([]string, 0, len(run))
				fileSet := make(map[string]struct{})
				for _, c := range run {
					ids = append(ids, c.ShortID)
					for _, f := range c.Files {
						fileSet[f.Path] = struct{}{}
					}
				}
				files := make([]string, 0, len(fileSet))
				for f := range fileSet {
					files = append(files, f)
				}
				sort.Strings(files)
				clusters = append(clusters, schema.TemporalCluster{
					Label:   label,
					Size:    len(run),
					StartTS: run[0].Timestamp,
					EndTS:   run[len(run)-1].Timestamp,
					Commits: ids,
					Files:   files,
				})
			}
			start = end
		}
	}

	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Size != clusters[j].Size {
			return clusters[i].Size > clusters[j].Size
		}
		if clusters[i].StartTS != clusters[j].StartTS {
			return clusters[i].StartTS < clusters[j].StartTS
		}
		return clusters[i].Label < clusters[j].Label
	})
	return capSlice(clusters, limit)
}

// convergenceCap folds an explicit result limit into the convergence cap.
// The default result limit does not constrain convergence pairs.
func convergenceCap(limit, convergenceLimit int, limitExplicit bool) int {
	if limitExplicit && limit > 0 && limit < convergenceLimit {
		return limit
	}
	return convergenceLimit
}

// detectConvergence finds pairs of files at the current snapshot with nearly
// identical byte sizes. The list is sorted by size so the inner scan can stop
// at the first file that breaks the ratio floor.
func detectConvergence(fileSizes []schema.FileSize, pairCap int) ([]schema.ConvergencePair, bool) {
	sizes := make([]schema.FileSize, 0, len(fileSizes))
	for _, fs := range fileSizes {
		if fs.Bytes >= schema.ConvergenceMinBytes {
			sizes = append(sizes, fs)
		}
	}
	sort.Slice(sizes, func(i, j int) bool {
		if sizes[i].Bytes != sizes[j].Bytes {
			return sizes[i].Bytes < sizes[j].Bytes
		}
		return sizes[i].Path < sizes[j].Path
	})

	var pairs []schema.ConvergencePair
	for i := 0; i < len(sizes); i++ {
		for j := i + 1; j < len(sizes); j++ {
			ratio := float64(sizes[i].Bytes) / float64(sizes[j].Bytes)
			if ratio < schema.ConvergenceRatio {
				break
			}
			pairs = append(pairs, schema.ConvergencePair{
				FileA:      sizes[i].Path,
				FileB:      sizes[j].Path,
				BytesA:     sizes[i].Bytes,
				BytesB:     sizes[j].Bytes,
				BytesDiff:  sizes[j].Bytes - sizes[i].Bytes,
				BytesRatio: ratio,
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].BytesRatio > pairs[j].BytesRatio
	})

	truncated := len(pairs) > pairCap
	if truncated {
		pairs = pairs[:pairCap]
	}
	return pairs, truncated
}

func formatDate(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02")
}
