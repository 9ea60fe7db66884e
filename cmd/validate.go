// =============================================================================
// Receipt Generator - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks configuration and
// catalog files without generating anything.
//
// COMMAND USAGE:
//   receiptgen validate [flags]
//
// FLAGS:
//   --catalog : Catalog file to validate (repeatable; YAML or CSV)
//
// All violations are collected and printed, not just the first, so a
// catalog can be fixed in one pass.
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/receipt-generator/internal/catalog"
	"github.com/ginjaninja78/receipt-generator/internal/config"
)

// validateCatalogFiles lists the catalog files to validate.
var validateCatalogFiles []string

// =============================================================================
// VALIDATE COMMAND DEFINITION
// =============================================================================

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and catalog files without generating",
	Long: `The validate command loads the main configuration file and each catalog
file and reports every constraint violation:

  - item names: letters, digits and spaces only, 1..200 characters, unique
  - prices: whole currency units between 1 and 1000 inclusive

The command exits non-zero if any file is invalid.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

// init registers the validate command with the root command and sets up
// flags.
func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringSliceVar(
		&validateCatalogFiles,
		"catalog",
		nil,
		"Catalog file to validate (repeatable; .yaml, .yml or .csv)",
	)
}

// =============================================================================
// MAIN VALIDATION FUNCTION
// =============================================================================

// runValidate validates the configuration and all given catalog files.
func runValidate() error {
	fmt.Println("=== Receipt Generator - Validation ===")

	// Main configuration.
	if _, err := config.LoadMainConfig(cfgFile); err != nil {
		return fmt.Errorf("configuration is invalid: %w", err)
	}
	fmt.Printf("  ✓ configuration (%s)\n", cfgFile)

	// Catalog files.
	invalid := 0
	for _, file := range validateCatalogFiles {
		cat, err := catalog.Load(file)
		if err != nil {
			invalid++
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(file), err)
			continue
		}

		if verrs := cat.Validate(); len(verrs) > 0 {
			invalid++
			fmt.Printf("  ✗ %s:\n", filepath.Base(file))
			fmt.Print(catalog.FormatErrors(verrs))
			continue
		}

		fmt.Printf("  ✓ %s (%d items)\n", filepath.Base(file), cat.Len())
	}

	if invalid > 0 {
		return fmt.Errorf("%d catalog file(s) failed validation", invalid)
	}

	fmt.Println("All files are valid.")
	return nil
}
