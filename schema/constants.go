package schema

// Custom string types for type safety.
type (
	// Label is a commit classification label from the closed taxonomy.
	Label string

	// SignalKind identifies the detector that produced a signal.
	SignalKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for analysis tracking.
	DatabaseBackend string

	// SnapshotStatus describes what a commit did to a tracked file.
	SnapshotStatus string

	// TrendDirection compares the newest trend window against the prior one.
	TrendDirection string
)

// The closed classification taxonomy. A commit has exactly one label
// per classification run.
const (
	LabelMerge    Label = "merge"
	LabelRevert   Label = "revert"
	LabelRelease  Label = "release"
	LabelFeat     Label = "feat"
	LabelFix      Label = "fix"
	LabelChore    Label = "chore"
	LabelDocs     Label = "docs"
	LabelRefactor Label = "refactor"
	LabelTest     Label = "test"
	LabelStyle    Label = "style"
	LabelPerf     Label = "perf"
	LabelCI       Label = "ci"
	LabelBuild    Label = "build"
	LabelOther    Label = "other"
)

// All signal kinds emitted by the pattern detectors.
const (
	SignalFixAfterFeat     SignalKind = "fix_after_feat"
	SignalFixAfterRefactor SignalKind = "fix_after_refactor"
)

// All output modes supported.
const (
	JSONOut  OutputMode = "json" // default
	TableOut OutputMode = "table"
)

// All analysis tracking backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All file snapshot statuses.
const (
	StatusCreated  SnapshotStatus = "created"
	StatusDeleted  SnapshotStatus = "deleted"
	StatusModified SnapshotStatus = "modified"
	StatusGrown    SnapshotStatus = "grown"
	StatusShrunk   SnapshotStatus = "shrunk"
	StatusTouched  SnapshotStatus = "touched"
)

// All trend directions.
const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendStable     TrendDirection = "stable"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	JSONOut:  {},
	TableOut: {},
}

// ValidDatabaseBackends lists all valid analysis tracking backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
