package core

import (
	"sort"
	"time"

	"github.com/huangsam/gitintel/schema"
)

// ComputeMetrics builds the classification summary from labeled commits:
// per-type counts, daily activity bursts, line velocity, and ticket
// reference counts. limit caps each ranked list.
func ComputeMetrics(commits []schema.EnrichedCommit, limit int) *schema.MetricsOutput {
	typeCounts := make(map[schema.Label]int)
	dailyCounts := make(map[string]int)
	ticketCounts := make(map[string]int)
	lineCounts := make([]int, 0, len(commits))

	total := len(commits)
	for _, c := range commits {
		typeCounts[c.Label]++
		dailyCounts[time.Unix(c.Timestamp, 0).UTC().Format("2006-01-02")]++

		if ticket := ExtractTicketRef(c.Message); ticket != "" {
			ticketCounts[ticket]++
		}

		lines := 0
		for _, f := range c.Files {
			lines += f.Churn()
		}
		lineCounts = append(lineCounts, lines)
	}

	commitTypes := make([]schema.CommitType, 0, len(typeCounts))
	for label, count := range typeCounts {
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100.0
		}
		commitTypes = append(commitTypes, schema.CommitType{
			Type:       label,
			Count:      count,
			Percentage: pct,
		})
	}
	sort.Slice(commitTypes, func(i, j int) bool {
		if commitTypes[i].Count != commitTypes[j].Count {
			return commitTypes[i].Count > commitTypes[j].Count
		}
		return commitTypes[i].Type < commitTypes[j].Type
	})
	commitTypes = capSlice(commitTypes, limit)

	activity := make([]schema.ActivityBurst, 0, len(dailyCounts))
	for date, count := range dailyCounts {
		activity = append(activity, schema.ActivityBurst{Date: date, Commits: count})
	}
	sort.Slice(activity, func(i, j int) bool {
		return activity[i].Date > activity[j].Date
	})
	activity = capSlice(activity, limit)

	totalLines := 0
	maxLines, minLines := 0, 0
	for i, lines := range lineCounts {
		totalLines += lines
		if i == 0 || lines > maxLines {
			maxLines = lines
		}
		if i == 0 || lines < minLines {
			minLines = lines
		}
	}
	avgLines := 0.0
	if total > 0 {
		avgLines = float64(totalLines) / float64(total)
	}

	ticketRefs := make([]schema.TicketRef, 0, len(ticketCounts))
	for ticket, count := range ticketCounts {
		ticketRefs = append(ticketRefs, schema.TicketRef{Ticket: ticket, Count: count})
	}
	sort.Slice(ticketRefs, func(i, j int) bool {
		if ticketRefs[i].Count != ticketRefs[j].Count {
			return ticketRefs[i].Count > ticketRefs[j].Count
		}
		return ticketRefs[i].Ticket < ticketRefs[j].Ticket
	})
	ticketRefs = capSlice(ticketRefs, limit)

	return &schema.MetricsOutput{
		CommitTypes: commitTypes,
		Activity:    activity,
		Velocity: schema.VelocityStats{
			AvgLinesPerCommit: avgLines,
			MaxLinesInCommit:  maxLines,
			MinLinesInCommit:  minLines,
			TotalLinesChanged: totalLines,
		},
		TotalCommits: total,
		TicketRefs:   ticketRefs,
	}
}

func capSlice[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
