// =============================================================================
// Receipt Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'generate', 'validate') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (receiptgen)
//   ├── generateCmd (receiptgen generate)
//   ├── validateCmd (receiptgen validate)
//   ├── serveCmd    (receiptgen serve)
//   └── versionCmd  (receiptgen version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	// Use is the one-line usage message.
	Use: "receiptgen",

	// Short is a short description shown in the 'help' output.
	Short: "Receipt Generator - Produce synthetic retail receipts from an item catalog",

	// Long is a longer description shown in the 'help <command>' output.
	Long: `Receipt Generator is a CLI tool that produces synthetic retail receipts
for test data and demo data: given a catalog of items with prices, a target
total spend and a receipt count, it randomly distributes item purchases
across receipts until the cumulative total meets the target, then aggregates
per-receipt quantities and prices.

Key Features:
  - Catalog input as YAML or CSV files
  - Reproducible output via a fixed random seed
  - XLSX reports with per-receipt line items and an aggregate bar chart
  - An HTTP API for wiring the generator into UI prototypes

Example Usage:
  receiptgen generate --catalog grocery.yaml --target 5000 --receipts 20
  receiptgen generate --catalog a.yaml --catalog b.csv --seed 42
  receiptgen validate --catalog grocery.yaml
  receiptgen serve`,

	// Run prints the help message when no subcommand is provided.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================
	// Persistent flags are available to this command and all subcommands.

	// --config flag: Allows the user to specify a custom configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables verbose/debug output.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
