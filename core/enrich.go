package core

import (
	"context"

	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/schema"
)

// Enrich collects all in-range commits and labels each one.
func Enrich(ctx context.Context, stream *CommitStream, ml contract.TextClassifier) ([]schema.EnrichedCommit, error) {
	var commits []schema.EnrichedCommit
	err := stream.Each(ctx, func(e LogEntry) error {
		commits = append(commits, enrichEntry(e, ml))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return commits, nil
}

func enrichEntry(e LogEntry, ml contract.TextClassifier) schema.EnrichedCommit {
	return schema.EnrichedCommit{
		CommitRecord: e.Record,
		Label:        Classify(e.Record.Message, e.Record.ParentCount, ml),
		Files:        e.Files,
	}
}
