// =============================================================================
// Receipt Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Receipt Generator CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   receiptgen generate      - Generate synthetic receipts from a catalog
//   receiptgen validate      - Validate configuration and catalog files
//   receiptgen serve         - Run the HTTP generation API
//   receiptgen version       - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/receipt-generator/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
