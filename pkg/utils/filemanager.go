// =============================================================================
// Receipt Generator - File Management Utilities
// =============================================================================
//
// This module handles output-side file operations:
//   - Ensuring the output directory exists
//   - Generating report file names from a configurable format
//   - Writing the run summary log
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file system operations for generation runs.
type FileManager struct {
	// OutputDir is the directory where reports and logs are written.
	OutputDir string
}

// NewFileManager creates a new FileManager instance.
func NewFileManager(outputDir string) *FileManager {
	return &FileManager{OutputDir: outputDir}
}

// EnsureDirectories creates the output directory if it does not exist.
func (fm *FileManager) EnsureDirectories() error {
	if err := os.MkdirAll(fm.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fm.OutputDir, err)
	}
	return nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName generates a report file name from a format string.
//
// PARAMETERS:
//   - format: The format string for the file name.
//             Placeholders:
//               {uuid}      - A random UUID
//               {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Current date (YYYYMMDD)
//               {time}      - Current time (HHMMSS)
//               {catalog}   - Catalog file name (without extension)
//   - params: A map of additional placeholder values.
//
// EXAMPLE:
//   format: "receipts_{catalog}_{timestamp}"
//   params: {"catalog": "grocery"}
//   output: "receipts_grocery_20240115_143022.xlsx"
func GenerateOutputFileName(format string, params map[string]string) string {
	now := time.Now()

	replacements := map[string]string{
		"{uuid}":      uuid.New().String(),
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
	}
	for key, value := range params {
		replacements["{"+key+"}"] = value
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	// Reports are XLSX workbooks.
	if !strings.HasSuffix(strings.ToLower(result), ".xlsx") {
		result += ".xlsx"
	}

	return result
}

// =============================================================================
// SUMMARY LOG
// =============================================================================

// GeneratedRun describes one successful generation run for the summary log.
type GeneratedRun struct {
	CatalogFile   string
	OutputFile    string
	Receipts      int
	Events        int
	RealizedTotal int64
	ProcessTime   time.Duration
}

// FailedRun describes one failed generation run for the summary log.
type FailedRun struct {
	CatalogFile  string
	ErrorMessage string
}

// GenerationSummary aggregates the outcome of one generate invocation.
type GenerationSummary struct {
	StartTime     time.Time
	EndTime       time.Time
	TotalCatalogs int
	Successful    int
	Failed        int
	Runs          []GeneratedRun
	FailedRuns    []FailedRun
}

// WriteSummaryLog writes a generation summary to a log file in outputDir
// and returns its path.
func WriteSummaryLog(summary GenerationSummary, outputDir string) (string, error) {
	timestamp := time.Now().Format("20060102_150405")
	summaryPath := filepath.Join(outputDir, fmt.Sprintf("generation_summary_%s.txt", timestamp))

	file, err := os.Create(summaryPath)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	duration := summary.EndTime.Sub(summary.StartTime)
	header := fmt.Sprintf("Receipt Generator - Run Summary\n"+
		"================================================================================\n\n"+
		"Run Information:\n"+
		"  Start Time: %s\n"+
		"  End Time:   %s\n"+
		"  Duration:   %s\n\n"+
		"Statistics:\n"+
		"  Total Catalogs: %d\n"+
		"  Successful:     %d\n"+
		"  Failed:         %d\n\n",
		summary.StartTime.Format("2006-01-02 15:04:05"),
		summary.EndTime.Format("2006-01-02 15:04:05"),
		duration.String(),
		summary.TotalCatalogs,
		summary.Successful,
		summary.Failed)
	writer.WriteString(header)

	if len(summary.Runs) > 0 {
		writer.WriteString("Successful Runs:\n")
		writer.WriteString("--------------------------------------------------------------------------------\n")
		for _, run := range summary.Runs {
			writer.WriteString(fmt.Sprintf("  Catalog:        %s\n", run.CatalogFile))
			writer.WriteString(fmt.Sprintf("  Output:         %s\n", run.OutputFile))
			writer.WriteString(fmt.Sprintf("  Receipts:       %d\n", run.Receipts))
			writer.WriteString(fmt.Sprintf("  Events:         %d\n", run.Events))
			writer.WriteString(fmt.Sprintf("  Realized Total: %d\n", run.RealizedTotal))
			writer.WriteString(fmt.Sprintf("  Process Time:   %s\n\n", run.ProcessTime.String()))
		}
	}

	if len(summary.FailedRuns) > 0 {
		writer.WriteString("Failed Runs:\n")
		writer.WriteString("--------------------------------------------------------------------------------\n")
		for _, run := range summary.FailedRuns {
			writer.WriteString(fmt.Sprintf("  Catalog: %s\n", run.CatalogFile))
			writer.WriteString(fmt.Sprintf("  Error:   %s\n\n", run.ErrorMessage))
		}
	}

	writer.WriteString("================================================================================\n")
	writer.WriteString("End of Summary\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush summary file: %w", err)
	}

	return summaryPath, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
