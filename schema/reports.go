package schema

// MetricsOutput is the payload for the metrics command.
type MetricsOutput struct {
	CommitTypes  []CommitType    `json:"commit_types"`
	Activity     []ActivityBurst `json:"activity"`
	Velocity     VelocityStats   `json:"velocity"`
	TotalCommits int             `json:"total_commits"`
	TicketRefs   []TicketRef     `json:"ticket_refs,omitempty"`
}

// CommitType is one taxonomy label with its share of the analyzed range.
type CommitType struct {
	Type       Label   `json:"type"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ActivityBurst is the commit count for a single day.
type ActivityBurst struct {
	Date    string `json:"date"`
	Commits int    `json:"commits"`
}

// VelocityStats summarizes line throughput over the analyzed range.
type VelocityStats struct {
	AvgLinesPerCommit float64 `json:"avg_lines_per_commit"`
	MaxLinesInCommit  int     `json:"max_lines_in_commit"`
	MinLinesInCommit  int     `json:"min_lines_in_commit"`
	TotalLinesChanged int     `json:"total_lines_changed"`
}

// TicketRef is one extracted ticket reference with its occurrence count.
type TicketRef struct {
	Ticket string `json:"ticket"`
	Count  int    `json:"count"`
}

// ChurnOutput is the payload for the churn command.
type ChurnOutput struct {
	Files                []FileChurn `json:"files"`
	TotalFiles           int         `json:"total_files"`
	TotalCommitsAnalyzed int         `json:"total_commits_analyzed"`
}

// FileChurn is one file's aggregate churn across the analyzed range.
type FileChurn struct {
	Path        string `json:"path"`
	Additions   int    `json:"additions"`
	Deletions   int    `json:"deletions"`
	TotalChurn  int    `json:"total_churn"`
	CommitCount int    `json:"commit_count"`
}

// HotspotsOutput is the payload for the hotspots command.
type HotspotsOutput struct {
	Directories          []DirectoryHotspot `json:"directories"`
	TotalDirectories     int                `json:"total_directories"`
	TotalCommitsAnalyzed int                `json:"total_commits_analyzed"`
	Depth                int                `json:"depth"`
}

// DirectoryHotspot is one directory's aggregate churn rollup.
type DirectoryHotspot struct {
	Path        string        `json:"path"`
	Additions   int           `json:"additions"`
	Deletions   int           `json:"deletions"`
	TotalChurn  int           `json:"total_churn"`
	CommitCount int           `json:"commit_count"`
	FileCount   int           `json:"file_count"`
	Labels      map[Label]int `json:"labels"`
}

// AuthorsOutput is the payload for the authors command.
type AuthorsOutput struct {
	Directories          []DirectoryAuthors `json:"directories"`
	TotalAuthors         int                `json:"total_authors"`
	TotalCommitsAnalyzed int                `json:"total_commits_analyzed"`
	Depth                int                `json:"depth"`
}

// DirectoryAuthors ranks the contributors of one directory.
type DirectoryAuthors struct {
	Path           string       `json:"path"`
	Authors        []AuthorStat `json:"authors"`
	TopContributor string       `json:"top_contributor"`
	BusFactor      int          `json:"bus_factor"`
	TotalCommits   int          `json:"total_commits"`
}

// LifecycleOutput is the payload for the lifecycle command.
type LifecycleOutput struct {
	Files []FileLifecycle `json:"files"`
}

// FileLifecycle is the full timeline for one tracked path.
type FileLifecycle struct {
	Path         string         `json:"path"`
	Exists       bool           `json:"exists"`
	CurrentLines *int           `json:"current_lines"`
	History      []FileSnapshot `json:"history"`
}

// FileSnapshot is one commit's effect on a tracked path.
type FileSnapshot struct {
	Commit    string         `json:"commit"`
	Date      string         `json:"date"`
	Message   string         `json:"message"`
	Lines     *int           `json:"lines"`
	Additions int            `json:"additions"`
	Deletions int            `json:"deletions"`
	NetChange int64          `json:"net_change"`
	Status    SnapshotStatus `json:"status"`
}

// PatternsOutput is the payload for the patterns command.
type PatternsOutput struct {
	FixAfterFeat         []FixAfterLink    `json:"fix_after_feat"`
	Signals              []Signal          `json:"signals"`
	MultiEditChains      []MultiEditChain  `json:"multi_edit_chains"`
	DirectoryChains      []DirectoryChain  `json:"directory_chains"`
	Clusters             []TemporalCluster `json:"clusters"`
	Convergence          []ConvergencePair `json:"convergence"`
	ConvergenceTruncated bool              `json:"convergence_truncated"`
	ConvergenceLimit     int               `json:"convergence_limit"`
	TotalCommitsAnalyzed int               `json:"total_commits_analyzed"`
}

// FixAfterLink is one feat commit paired with the fix that followed it.
type FixAfterLink struct {
	FeatCommit  string `json:"feat_commit"`
	FeatDate    string `json:"feat_date"`
	FeatMessage string `json:"feat_message"`
	FixCommit   string `json:"fix_commit"`
	FixDate     string `json:"fix_date"`
	FixMessage  string `json:"fix_message"`
	GapCommits  int    `json:"gap_commits"`
}

// MultiEditChain is a single file edited repeatedly with real churn.
type MultiEditChain struct {
	Path       string        `json:"path"`
	EditCount  int           `json:"edit_count"`
	TotalChurn int           `json:"total_churn"`
	Commits    []ChainCommit `json:"commits"`
}

// ChainCommit is one edit within a multi-edit chain.
type ChainCommit struct {
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

// DirectoryChain is a top-level directory edited by several commits.
type DirectoryChain struct {
	Path       string   `json:"path"`
	EditCount  int      `json:"edit_count"`
	TotalChurn int      `json:"total_churn"`
	Files      []string `json:"files"`
}

// TemporalCluster is a burst of same-label commits within one hour.
type TemporalCluster struct {
	Label   Label    `json:"label"`
	Size    int      `json:"size"`
	StartTS int64    `json:"start_ts"`
	EndTS   int64    `json:"end_ts"`
	Commits []string `json:"commits"`
	Files   []string `json:"files"`
}

// ConvergencePair is two files of near-identical size at HEAD.
type ConvergencePair struct {
	FileA      string  `json:"file_a"`
	FileB      string  `json:"file_b"`
	BytesA     int64   `json:"bytes_a"`
	BytesB     int64   `json:"bytes_b"`
	BytesDiff  int64   `json:"bytes_diff"`
	BytesRatio float64 `json:"bytes_ratio"`
}

// TrendsOutput is the payload for the trends command.
type TrendsOutput struct {
	Windows        []WindowData `json:"windows"`
	WindowCount    int          `json:"window_count"`
	WindowSizeDays int          `json:"window_size_days"`
	Deltas         Deltas       `json:"deltas"`
	DormantFiles   []string     `json:"dormant_files"`
}

// WindowData summarizes one trailing trend window.
type WindowData struct {
	Index            int           `json:"index"`
	Label            string        `json:"label"`
	Since            string        `json:"since"`
	Until            string        `json:"until"`
	TotalCommits     int           `json:"total_commits"`
	TypeDistribution map[Label]int `json:"type_distribution"`
	Velocity         float64       `json:"velocity"`
	TopChurnFiles    []string      `json:"top_churn_files"`
}

// Deltas compares the newest trend window against the prior one.
type Deltas struct {
	CommitTrend  TrendDirection `json:"commit_trend"`
	FixRateTrend TrendDirection `json:"fix_rate_trend"`
}
