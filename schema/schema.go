package schema

// CommitRecord is one commit parsed from the history log.
type CommitRecord struct {
	ID          string `json:"id"`
	ShortID     string `json:"short_id"`
	Timestamp   int64  `json:"timestamp"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	Message     string `json:"message"`
	FirstLine   string `json:"first_line"`
	ParentCount int    `json:"parent_count"`
}

// FileStat is one file's churn within a single commit.
type FileStat struct {
	Path      string `json:"path"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// Churn returns additions plus deletions.
func (f FileStat) Churn() int {
	return f.Additions + f.Deletions
}

// EnrichedCommit is a commit with its classification label and file stats.
type EnrichedCommit struct {
	CommitRecord
	Label Label      `json:"label"`
	Files []FileStat `json:"files"`
}

// Signal is one detector finding with a normalized severity in (0, 1].
type Signal struct {
	Kind     SignalKind `json:"kind"`
	Severity float64    `json:"severity"`
	Message  string     `json:"message"`
	Commits  []string   `json:"commits"`
	Files    []string   `json:"files"`
}

// AuthorStat aggregates one author's contribution.
type AuthorStat struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Commits   int    `json:"commits"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	FirstSeen int64  `json:"first_seen"`
	LastSeen  int64  `json:"last_seen"`
}
