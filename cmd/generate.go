// =============================================================================
// Receipt Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which is the main command for
// producing synthetic receipts. It orchestrates the entire generation
// pipeline.
//
// COMMAND USAGE:
//   receiptgen generate [flags]
//
// FLAGS:
//   --catalog   : Catalog file to generate from (repeatable; YAML or CSV)
//   --target    : Target total spend in whole currency units
//   --receipts  : Number of receipts to distribute purchases across
//   --seed      : Random seed for reproducible output (0 = time-based)
//   --output    : Output directory (overrides config)
//   --dry-run   : Run generation without writing report files
//
// GENERATION PIPELINE:
//   1. Load configuration
//   2. Load and validate each catalog file
//   3. For each catalog (concurrently, bounded by max_concurrency):
//      a. Build the allocator over the catalog
//      b. Run the two-phase allocation
//      c. Write the XLSX report
//   4. Write the run summary log
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/receipt-generator/internal/catalog"
	"github.com/ginjaninja78/receipt-generator/internal/config"
	"github.com/ginjaninja78/receipt-generator/internal/generator"
	"github.com/ginjaninja78/receipt-generator/internal/report"
	"github.com/ginjaninja78/receipt-generator/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// catalogFiles lists the catalog files to generate from.
var catalogFiles []string

// targetAmount is the target total spend per catalog.
var targetAmount int64

// receiptCount is the number of receipts per catalog.
var receiptCount int

// seed seeds the random stream; 0 means time-based seeding.
var seed int64

// outputDir overrides the configured output directory when set.
var outputDir string

// dryRun runs generation without writing report files.
var dryRun bool

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate synthetic receipts and write XLSX reports",
	Long: `The generate command loads one or more catalog files, runs the receipt
allocation algorithm for each, and writes an XLSX report per catalog.

Each report contains a per-receipt breakdown (item, quantity, unit price,
line total, receipt grand total) and a summary sheet with the realized
total and a bar chart of total quantity per item across all receipts.

Catalogs are processed concurrently. Errors in one catalog do not affect
the processing of others. With --seed, output is reproducible: each catalog
file gets a sub-seed derived from its position, so a multi-catalog run
replays exactly as long as the file order is unchanged.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the generate command with the root command and sets up
// flags.
func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringSliceVar(
		&catalogFiles,
		"catalog",
		nil,
		"Catalog file to generate from (repeatable; .yaml, .yml or .csv)",
	)
	generateCmd.Flags().Int64Var(
		&targetAmount,
		"target",
		0,
		"Target total spend in whole currency units",
	)
	generateCmd.Flags().IntVar(
		&receiptCount,
		"receipts",
		0,
		"Number of receipts to distribute purchases across",
	)
	generateCmd.Flags().Int64Var(
		&seed,
		"seed",
		0,
		"Random seed for reproducible output (0 = time-based)",
	)
	generateCmd.Flags().StringVar(
		&outputDir,
		"output",
		"",
		"Output directory (overrides the configured output_dir)",
	)
	generateCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run generation without writing report files",
	)

	generateCmd.MarkFlagRequired("catalog")
	generateCmd.MarkFlagRequired("target")
	generateCmd.MarkFlagRequired("receipts")
}

// =============================================================================
// RUN RESULT
// =============================================================================

// runResult is the outcome of generating one catalog file.
type runResult struct {
	CatalogFile string
	OutputFile  string
	Receipts    int
	Events      int
	Realized    int64
	ProcessTime time.Duration
	Err         error
}

// =============================================================================
// MAIN GENERATION FUNCTION
// =============================================================================

// runGenerate is the main function that orchestrates the generation
// pipeline.
func runGenerate() error {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	fmt.Println("=== Receipt Generator ===")

	mainConfig, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if outputDir != "" {
		mainConfig.OutputDir = outputDir
	}
	if seed == 0 {
		seed = mainConfig.Seed
	}

	fm := utils.NewFileManager(mainConfig.OutputDir)
	if !dryRun {
		if err := fm.EnsureDirectories(); err != nil {
			return err
		}
	}

	fmt.Printf("Generating %d receipt(s) per catalog, target %d, %d catalog file(s)\n",
		receiptCount, targetAmount, len(catalogFiles))
	if seed != 0 {
		fmt.Printf("Using seed %d (reproducible run)\n", seed)
	}

	// =========================================================================
	// STEP 2: GENERATE CONCURRENTLY
	// =========================================================================
	// Each catalog file is generated in its own goroutine, bounded by a
	// semaphore at max_concurrency. Every run owns its allocator and random
	// stream; nothing is shared between goroutines except the results
	// channel.

	var wg sync.WaitGroup
	results := make(chan runResult, len(catalogFiles))
	sem := make(chan struct{}, mainConfig.MaxConcurrency)

	for i, file := range catalogFiles {
		wg.Add(1)

		go func(index int, catalogPath string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results <- generateOne(index, catalogPath, mainConfig)
		}(i, file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 3: COLLECT RESULTS
	// =========================================================================

	summary := utils.GenerationSummary{
		StartTime:     startTime,
		TotalCatalogs: len(catalogFiles),
	}

	for res := range results {
		if res.Err != nil {
			summary.Failed++
			summary.FailedRuns = append(summary.FailedRuns, utils.FailedRun{
				CatalogFile:  res.CatalogFile,
				ErrorMessage: res.Err.Error(),
			})
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(res.CatalogFile), res.Err)
			continue
		}

		summary.Successful++
		summary.Runs = append(summary.Runs, utils.GeneratedRun{
			CatalogFile:   res.CatalogFile,
			OutputFile:    res.OutputFile,
			Receipts:      res.Receipts,
			Events:        res.Events,
			RealizedTotal: res.Realized,
			ProcessTime:   res.ProcessTime,
		})
		if dryRun {
			fmt.Printf("  ✓ %s: %d receipts, %d events, realized total %d (dry run)\n",
				filepath.Base(res.CatalogFile), res.Receipts, res.Events, res.Realized)
		} else {
			fmt.Printf("  ✓ %s -> %s (%d receipts, realized total %d)\n",
				filepath.Base(res.CatalogFile), res.OutputFile, res.Receipts, res.Realized)
		}
	}

	// =========================================================================
	// STEP 4: PRINT AND WRITE SUMMARY
	// =========================================================================

	summary.EndTime = time.Now()

	fmt.Println("\n=== Generation Complete ===")
	fmt.Printf("Total catalogs: %d\n", summary.TotalCatalogs)
	fmt.Printf("Successful:     %d\n", summary.Successful)
	fmt.Printf("Failed:         %d\n", summary.Failed)
	fmt.Printf("Time elapsed:   %s\n", summary.EndTime.Sub(summary.StartTime))

	if !dryRun {
		summaryPath, err := utils.WriteSummaryLog(summary, mainConfig.OutputDir)
		if err != nil {
			fmt.Printf("Warning: failed to write summary log: %v\n", err)
		} else if verbose {
			fmt.Printf("Summary written to %s\n", summaryPath)
		}
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d catalog(s) failed", summary.Failed, summary.TotalCatalogs)
	}
	return nil
}

// =============================================================================
// PER-CATALOG GENERATION
// =============================================================================

// generateOne loads, validates and generates a single catalog file.
// The per-file sub-seed keeps multi-catalog runs reproducible while giving
// each file a distinct random stream.
func generateOne(index int, catalogPath string, mainConfig *config.MainConfig) runResult {
	start := time.Now()
	res := runResult{CatalogFile: catalogPath}

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		res.Err = err
		return res
	}

	if verrs := cat.Validate(); len(verrs) > 0 {
		res.Err = fmt.Errorf("catalog validation failed:\n%s", catalog.FormatErrors(verrs))
		return res
	}

	var opts []generator.Option
	if seed != 0 {
		opts = append(opts, generator.WithSeed(seed+int64(index)))
	}

	alloc, err := generator.New(cat, opts...)
	if err != nil {
		res.Err = err
		return res
	}

	result, err := alloc.Generate(targetAmount, receiptCount)
	if err != nil {
		res.Err = err
		return res
	}

	res.Receipts = len(result.Receipts)
	res.Events = result.EventCount
	res.Realized = result.RealizedTotal

	if !dryRun {
		baseName := strings.TrimSuffix(filepath.Base(catalogPath), filepath.Ext(catalogPath))
		fileName := utils.GenerateOutputFileName(mainConfig.ReportNameFormat, map[string]string{
			"catalog": baseName,
		})
		outputPath := filepath.Join(mainConfig.OutputDir, fileName)

		reportOpts := report.DefaultOptions()
		reportOpts.Currency = mainConfig.Currency
		if err := report.Write(outputPath, result, cat, targetAmount, reportOpts); err != nil {
			res.Err = err
			return res
		}
		res.OutputFile = outputPath
	}

	res.ProcessTime = time.Since(start)
	return res
}
