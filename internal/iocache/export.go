package iocache

import (
	"errors"
	"fmt"

	"github.com/huangsam/gitintel/internal/parquet"
)

// ExecuteAnalysisExport performs the actual export of analysis data to Parquet files.
func ExecuteAnalysisExport(outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetAnalysisStore()
	if store == nil {
		return errors.New("analysis tracking is disabled. Set --analysis-backend to enable it")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get analysis status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no analysis data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total analysis runs: %d\n", status.TotalRuns)
	fmt.Printf("Total churn records: %d\n", status.TableSizes[fileChurnTable])

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve analysis runs: %w", err)
	}
	churn, err := store.GetAllFileChurn()
	if err != nil {
		return fmt.Errorf("failed to retrieve file churn: %w", err)
	}

	parquetRuns := parquet.ConvertAnalysisRunRecords(runs)
	parquetChurn := parquet.ConvertFileChurnRecords(churn)

	runsFile := outputFile + ".analysis_runs.parquet"
	if err := parquet.WriteAnalysisRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write analysis runs: %w", err)
	}
	fmt.Printf("Exported %d analysis runs to: %s\n", len(parquetRuns), runsFile)

	churnFile := outputFile + ".file_churn.parquet"
	if err := parquet.WriteFileChurnParquet(parquetChurn, churnFile); err != nil {
		return fmt.Errorf("failed to write file churn: %w", err)
	}
	fmt.Printf("Exported %d churn records to: %s\n", len(parquetChurn), churnFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
