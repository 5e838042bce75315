// Package parquet provides data structures and functions for exporting
// analysis tracking data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/gitintel/schema"
	"github.com/parquet-go/parquet-go"
)

// AnalysisRun represents a single analysis run with metadata.
// This struct maps to the gitintel_analysis_runs database table.
type AnalysisRun struct {
	// RunID is the unique identifier for this analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// Command is the report command that produced this run
	Command string `parquet:"command,snappy"`

	// HeadCommit is the repository head at the time of the run
	HeadCommit string `parquet:"head_commit,snappy"`

	// StartTime is when the analysis began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the analysis completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the analysis run in milliseconds (nullable)
	RunDurationMs *int64 `parquet:"run_duration_ms,optional,snappy"`

	// TotalCommits is the number of commits covered by this run
	TotalCommits int32 `parquet:"total_commits,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters
	ConfigParams string `parquet:"config_params,snappy"`
}

// FileChurn represents one file's aggregate churn within an analysis run.
// This struct maps to the gitintel_file_churn database table.
type FileChurn struct {
	// RunID references the parent analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// FilePath is the relative path to the file in the repository
	FilePath string `parquet:"file_path,snappy"`

	// Additions is the number of lines added across the run's range
	Additions int32 `parquet:"additions,snappy"`

	// Deletions is the number of lines deleted across the run's range
	Deletions int32 `parquet:"deletions,snappy"`

	// TotalChurn is additions plus deletions
	TotalChurn int32 `parquet:"total_churn,snappy"`

	// CommitCount is the number of commits touching this file
	CommitCount int32 `parquet:"commit_count,snappy"`
}

// WriteAnalysisRunsParquet writes a slice of AnalysisRun structs to a Parquet file.
func WriteAnalysisRunsParquet(data []AnalysisRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the AnalysisRun struct tags
	writer := parquet.NewGenericWriter[AnalysisRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteFileChurnParquet writes a slice of FileChurn structs to a Parquet file.
func WriteFileChurnParquet(data []FileChurn, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the FileChurn struct tags
	writer := parquet.NewGenericWriter[FileChurn](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertAnalysisRunRecords converts schema.AnalysisRunRecord to AnalysisRun for Parquet export.
func ConvertAnalysisRunRecords(records []schema.AnalysisRunRecord) []AnalysisRun {
	result := make([]AnalysisRun, len(records))
	for i, record := range records {
		result[i] = AnalysisRun{
			RunID:         record.RunID,
			Command:       record.Command,
			HeadCommit:    record.HeadCommit,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.DurationMs,
			TotalCommits:  int32(record.TotalCommits),
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertFileChurnRecords converts schema.RunFileChurnRecord to FileChurn for Parquet export.
func ConvertFileChurnRecords(records []schema.RunFileChurnRecord) []FileChurn {
	result := make([]FileChurn, len(records))
	for i, record := range records {
		result[i] = FileChurn{
			RunID:       record.RunID,
			FilePath:    record.FilePath,
			Additions:   int32(record.Additions),
			Deletions:   int32(record.Deletions),
			TotalChurn:  int32(record.TotalChurn),
			CommitCount: int32(record.CommitCount),
		}
	}
	return result
}
