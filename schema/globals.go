package schema

import "time"

// Detector and walker tuning constants. These values are load-bearing:
// changing any of them changes reported severities and cache contents.
const (
	// ShortIDLength is the abbreviated commit hash length.
	ShortIDLength = 7

	// FixAfterWindow is how many commits ahead of a fix the detector
	// scans for a causal feat or refactor.
	FixAfterWindow = 5

	// FixAfterSharedCap caps the shared-file count used in severity.
	FixAfterSharedCap = 5

	// ChainMinEdits is the minimum touches for a multi-edit chain.
	ChainMinEdits = 3

	// ChainMinChurn is the minimum summed churn for a multi-edit chain.
	ChainMinChurn = 100

	// ClusterWindow bounds a temporal cluster: every member must land
	// within this duration of the cluster's first commit.
	ClusterWindow = time.Hour

	// ClusterMinSize is the minimum commit count for a reported cluster.
	ClusterMinSize = 3

	// ConvergenceMinBytes excludes small files from convergence scans.
	ConvergenceMinBytes = 500

	// ConvergenceRatio is the minimum size ratio for a convergent pair.
	ConvergenceRatio = 0.90

	// DefaultConvergenceLimit caps reported convergent pairs.
	DefaultConvergenceLimit = 50

	// DefaultResultLimit caps most ranked report sections.
	DefaultResultLimit = 10

	// DefaultTrendWindows is the number of trailing trend windows.
	DefaultTrendWindows = 4

	// DefaultTrendWindowDays is the width of each trend window in days.
	DefaultTrendWindowDays = 30

	// TrendStableBand is the relative change treated as stable.
	TrendStableBand = 0.1

	// MLConfidenceFloor rejects low-confidence external predictions.
	MLConfidenceFloor = 0.5
)

// CacheDirName is the result cache directory, created inside the
// repository's git directory so it never pollutes the worktree.
const CacheDirName = "gitintel-cache"
