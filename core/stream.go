package core

import (
	"context"
	"strconv"
	"strings"

	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/schema"
)

// LogEntry is one commit from the history walk, paired with its per-file
// numstat rows.
type LogEntry struct {
	Record schema.CommitRecord
	Files  []schema.FileStat
}

// CommitStream walks git log output newest-first, applying the configured
// time bounds. Commits newer than the until bound are skipped; the walk stops
// at the first commit older than the since bound, since log output is ordered
// by commit time descending.
type CommitStream struct {
	client   contract.GitClient
	resolver contract.IdentityResolver
	repoPath string
	since    *int64
	until    *int64
}

// NewCommitStream builds a stream over the repository at cfg.RepoPath with
// cfg's time bounds.
func NewCommitStream(client contract.GitClient, resolver contract.IdentityResolver, cfg *contract.Config) *CommitStream {
	if resolver == nil {
		resolver = contract.PassthroughResolver{}
	}
	return &CommitStream{
		client:   client,
		resolver: resolver,
		repoPath: cfg.RepoPath,
		since:    cfg.Since,
		until:    cfg.Until,
	}
}

// Each invokes fn for every in-range commit, newest first. A non-nil error
// from fn aborts the walk and is returned as-is.
func (s *CommitStream) Each(ctx context.Context, fn func(LogEntry) error) error {
	raw, err := s.client.GetHistoryLog(ctx, s.repoPath)
	if err != nil {
		return err
	}

	var entry *LogEntry
	flush := func() error {
		if entry == nil {
			return nil
		}
		e := *entry
		entry = nil
		if s.until != nil && e.Record.Timestamp > *s.until {
			return nil
		}
		if s.since != nil && e.Record.Timestamp < *s.since {
			return errStopWalk
		}
		return fn(e)
	}

	for line := range strings.Lines(string(raw)) {
		line = strings.TrimRight(line, "\n")
		if strings.HasPrefix(line, "--") {
			if err := flush(); err != nil {
				return stopOrErr(err)
			}
			record, ok := s.parseHeader(line[2:])
			if !ok {
				continue
			}
			entry = &LogEntry{Record: record}
			continue
		}
		if entry == nil || line == "" {
			continue
		}
		if stat, ok := parseNumstat(line); ok {
			entry.Files = append(entry.Files, stat)
		}
	}
	return stopOrErr(flush())
}

// Collect gathers all in-range commits into a slice, newest first.
func (s *CommitStream) Collect(ctx context.Context) ([]LogEntry, error) {
	var entries []LogEntry
	err := s.Each(ctx, func(e LogEntry) error {
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

type stopWalk struct{}

func (stopWalk) Error() string { return "stop walk" }

var errStopWalk = stopWalk{}

func stopOrErr(err error) error {
	if err == errStopWalk {
		return nil
	}
	return err
}

// parseHeader parses a "%H|%P|%at|%an|%ae|%s" header line, already stripped
// of its "--" sentinel.
func (s *CommitStream) parseHeader(line string) (schema.CommitRecord, bool) {
	parts := strings.SplitN(line, "|", 6)
	if len(parts) != 6 {
		return schema.CommitRecord{}, false
	}

	timestamp, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		contract.LogWarn("parsing commit timestamp", err)
		timestamp = 0
	}

	parentCount := 0
	if parents := strings.TrimSpace(parts[1]); parents != "" {
		parentCount = len(strings.Fields(parents))
	}

	name, email := s.resolver.Resolve(parts[3], parts[4])

	id := parts[0]
	shortID := id
	if len(shortID) > schema.ShortIDLength {
		shortID = shortID[:schema.ShortIDLength]
	}

	return schema.CommitRecord{
		ID:          id,
		ShortID:     shortID,
		Timestamp:   timestamp,
		AuthorName:  name,
		AuthorEmail: email,
		Message:     parts[5],
		FirstLine:   firstLine(parts[5]),
		ParentCount: parentCount,
	}, true
}

// parseNumstat parses one "adds\tdels\tpath" row. Binary files report "-" for
// both counts, which we record as zero churn. Renames arrive either as
// "old => new" or with a braced segment like "src/{old => new}/mod.rs"; both
// resolve to the new path.
func parseNumstat(line string) (schema.FileStat, bool) {
	fields := strings.SplitN(line, "\t", 3)
	if len(fields) != 3 {
		return schema.FileStat{}, false
	}

	additions := parseChurnCount(fields[0])
	deletions := parseChurnCount(fields[1])

	return schema.FileStat{
		Path:      resolveRenamePath(fields[2]),
		Additions: additions,
		Deletions: deletions,
	}, true
}

func parseChurnCount(s string) int {
	if s == "-" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// resolveRenamePath maps a rename notation to the post-rename path.
func resolveRenamePath(path string) string {
	if open := strings.Index(path, "{"); open >= 0 {
		if arrow := strings.Index(path[open:], " => "); arrow >= 0 {
			if closing := strings.Index(path[open:], "}"); closing > arrow {
				prefix := path[:open]
				newPart := path[open+arrow+4 : open+closing]
				suffix := path[open+closing+1:]
				resolved := prefix + newPart + suffix
				// Collapse the doubled slash an empty side leaves behind.
				return strings.ReplaceAll(resolved, "//", "/")
			}
		}
	}
	if arrow := strings.Index(path, " => "); arrow >= 0 {
		return path[arrow+4:]
	}
	return path
}
