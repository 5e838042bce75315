package core

import (
	"sort"

	"github.com/huangsam/gitintel/schema"
)

type authorAccum struct {
	name      string
	email     string
	commits   int
	additions int
	deletions int
	firstSeen int64
	lastSeen  int64
}

type dirAuthorAccum struct {
	authors      map[string]*authorAccum
	totalCommits int
}

// busFactor returns the minimum number of authors whose cumulative commits
// strictly exceed 50% of total. Authors must already be sorted by commits
// descending.
func busFactor(authors []schema.AuthorStat, totalCommits int) int {
	if totalCommits == 0 || len(authors) == 0 {
		return 0
	}
	threshold := float64(totalCommits) * 0.5
	accumulated := 0
	for i, author := range authors {
		accumulated += author.Commits
		if float64(accumulated) > threshold {
			return i + 1
		}
	}
	return len(authors)
}

// ComputeAuthors builds the per-directory authorship table at the given
// depth: ranked author stats, top contributor, and bus factor. Authors are
// deduplicated by resolved email.
func ComputeAuthors(commits []schema.EnrichedCommit, depth, limit int) *schema.AuthorsOutput {
	dirMap := make(map[string]*dirAuthorAccum)
	globalAuthors := make(map[string]struct{})

	for _, c := range commits {
		globalAuthors[c.AuthorEmail] = struct{}{}

		// Per-directory line stats for this commit.
		dirLines := make(map[string][2]int)
		dirsTouched := make(map[string]struct{})
		for _, f := range c.Files {
			prefix := dirPrefix(f.Path, depth)
			dirsTouched[prefix] = struct{}{}
			lines := dirLines[prefix]
			lines[0] += f.Additions
			lines[1] += f.Deletions
			dirLines[prefix] = lines
		}

		for dir := range dirsTouched {
			dirAcc, ok := dirMap[dir]
			if !ok {
				dirAcc = &dirAuthorAccum{authors: make(map[string]*authorAccum)}
				dirMap[dir] = dirAcc
			}
			dirAcc.totalCommits++

			authorAcc, ok := dirAcc.authors[c.AuthorEmail]
			if !ok {
				authorAcc = &authorAccum{
					name:      c.AuthorName,
					email:     c.AuthorEmail,
					firstSeen: c.Timestamp,
					lastSeen:  c.Timestamp,
				}
				dirAcc.authors[c.AuthorEmail] = authorAcc
			}
			authorAcc.commits++
			if c.Timestamp < authorAcc.firstSeen {
				authorAcc.firstSeen = c.Timestamp
			}
			if c.Timestamp > authorAcc.lastSeen {
				authorAcc.lastSeen = c.Timestamp
			}
			lines := dirLines[dir]
			authorAcc.additions += lines[0]
			authorAcc.deletions += lines[1]
		}
	}

	directories := make([]schema.DirectoryAuthors, 0, len(dirMap))
	for path, acc := range dirMap {
		authors := make([]schema.AuthorStat, 0, len(acc.authors))
		for _, a := range acc.authors {
			authors = append(authors, schema.AuthorStat{
				Name:      a.name,
				Email:     a.email,
				Commits:   a.commits,
				Additions: a.additions,
				Deletions: a.deletions,
				FirstSeen: a.firstSeen,
				LastSeen:  a.lastSeen,
			})
		}
		sort.Slice(authors, func(i, j int) bool {
			if authors[i].Commits != authors[j].Commits {
				return authors[i].Commits > authors[j].Commits
			}
			return authors[i].Email < authors[j].Email
		})

		topContributor := ""
		if len(authors) > 0 {
			topContributor = authors[0].Name
		}

		directories = append(directories, schema.DirectoryAuthors{
			Path:           path,
			Authors:        authors,
			TopContributor: topContributor,
			BusFactor:      busFactor(authors, acc.totalCommits),
			TotalCommits:   acc.totalCommits,
		})
	}

	sort.Slice(directories, func(i, j int) bool {
		if directories[i].TotalCommits != directories[j].TotalCommits {
			return directories[i].TotalCommits > directories[j].TotalCommits
		}
		return directories[i].Path < directories[j].Path
	})
	directories = capSlice(directories, limit)

	return &schema.AuthorsOutput{
		Directories:          directories,
		TotalAuthors:         len(globalAuthors),
		TotalCommitsAnalyzed: len(commits),
		Depth:                depth,
	}
}
