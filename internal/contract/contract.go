// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"encoding/json"
	"time"

	"github.com/huangsam/gitintel/schema"
)

// GitClient defines the necessary operations for commit history analysis.
// This allows the core analysis logic to be tested without needing a real git executable.
type GitClient interface {
	// --- Generic / Low-Level ---

	// Run executes a git command and returns its stdout.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// --- Reference Resolution ---

	// GetHeadCommit returns the current HEAD commit hash of the repository.
	GetHeadCommit(ctx context.Context, repoPath string) (string, error)

	// GetRepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// GetGitDir returns the absolute path to the repository's git directory.
	GetGitDir(ctx context.Context, repoPath string) (string, error)

	// --- History / Content ---

	// GetHistoryLog returns the raw commit log output with per-file numstat
	// blocks, newest-first, for the whole history reachable from HEAD.
	GetHistoryLog(ctx context.Context, repoPath string) ([]byte, error)

	// ListFileSizes returns the path and byte size of every blob at ref.
	ListFileSizes(ctx context.Context, repoPath string, ref string) ([]schema.FileSize, error)

	// ReadBlob returns the content of path at ref. A missing blob is an error.
	ReadBlob(ctx context.Context, repoPath string, ref string, path string) ([]byte, error)
}

// IdentityResolver canonicalizes raw author identities. Two raw identities
// that resolve to the same canonical pair are one author downstream.
type IdentityResolver interface {
	Resolve(name, email string) (string, string)
}

// TextClassifier is an optional capability that predicts a taxonomy label
// for a commit message. The second return is the model confidence and the
// third reports whether a prediction was produced at all.
type TextClassifier interface {
	Classify(message string) (schema.Label, float64, bool)
}

// ResultCache memoizes analysis payloads against the repository head.
type ResultCache interface {
	// Read returns the cached payload for key, or nil on any kind of miss.
	Read(ctx context.Context, key string) json.RawMessage

	// Write stores the payload for key stamped with the current head.
	Write(ctx context.Context, key string, result any) error

	// Clear removes every cache entry.
	Clear() error

	// Status reports entry count and total size on disk.
	Status() (schema.CacheStatus, error)
}

// AnalysisStore defines the interface for tracking analysis runs and storing
// per-run churn records in a durable database.
type AnalysisStore interface {
	// BeginRun creates a new analysis run and returns its unique ID
	BeginRun(command string, headCommit string, startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the analysis run with completion data
	EndRun(runID int64, endTime time.Time, totalCommits int) error

	// RecordFileChurn stores one file's aggregate churn for a run
	RecordFileChurn(runID int64, churn schema.FileChurn) error

	// GetStatus returns status information about the analysis store
	GetStatus() (schema.AnalysisStatus, error)

	// GetAllRuns returns every recorded analysis run
	GetAllRuns() ([]schema.AnalysisRunRecord, error)

	// GetAllFileChurn returns every recorded per-file churn row
	GetAllFileChurn() ([]schema.RunFileChurnRecord, error)

	// Close closes the underlying connection
	Close() error
}
