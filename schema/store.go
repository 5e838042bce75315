package schema

import "time"

// FileSize is one tracked blob's path and byte size at a given ref.
type FileSize struct {
	Path  string
	Bytes int64
}

// CacheStatus summarizes the on-disk result cache.
type CacheStatus struct {
	Directory  string
	Entries    int
	TotalBytes int64
}

// AnalysisStatus summarizes the analysis tracking store.
type AnalysisStatus struct {
	Backend             DatabaseBackend
	Connected           bool
	TotalRuns           int64
	LastRunID           int64
	LastRunTime         time.Time
	OldestRunTime       time.Time
	TotalCommitsTracked int64
	TableSizes          map[string]int64
}

// AnalysisRunRecord is one row of the analysis runs table.
type AnalysisRunRecord struct {
	RunID        int64
	Command      string
	HeadCommit   string
	StartTime    time.Time
	EndTime      *time.Time
	DurationMs   *int64
	TotalCommits int
	ConfigParams string
}

// RunFileChurnRecord is one row of the per-run file churn table.
type RunFileChurnRecord struct {
	RunID       int64
	FilePath    string
	Additions   int
	Deletions   int
	TotalChurn  int
	CommitCount int
}
