// =============================================================================
// Receipt Generator - Serve Command
// =============================================================================
//
// This file defines the 'serve' command, which runs the HTTP generation API
// for UI prototypes.
//
// COMMAND USAGE:
//   receiptgen serve [flags]
//
// FLAGS:
//   --addr : Listen address (overrides the configured listen_addr)
//
// ENDPOINTS:
//   POST /receipts/generate - run one generation call
//   GET  /healthz           - liveness probe
//
// =============================================================================

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ginjaninja78/receipt-generator/internal/config"
	"github.com/ginjaninja78/receipt-generator/internal/transport"
)

// listenAddr overrides the configured listen address when set.
var listenAddr string

// =============================================================================
// SERVE COMMAND DEFINITION
// =============================================================================

// serveCmd represents the 'serve' command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP generation API",
	Long: `The serve command starts an HTTP server exposing the receipt generator
to UI prototypes. Each request carries its own catalog and parameters and
returns the full generation result; nothing is stored between requests.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// init registers the serve command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(
		&listenAddr,
		"addr",
		"",
		"Listen address (overrides the configured listen_addr)",
	)
}

// =============================================================================
// MAIN SERVE FUNCTION
// =============================================================================

// runServe builds the logger and router, then serves until interrupted.
func runServe() error {
	mainConfig, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if listenAddr != "" {
		mainConfig.ListenAddr = listenAddr
	}

	logger, err := newLogger(mainConfig.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()

	server := transport.NewServer(mainConfig.Currency, logger)
	httpServer := &http.Server{
		Addr:              mainConfig.ListenAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", mainConfig.ListenAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(ctx)
}

// =============================================================================
// LOGGER CONSTRUCTION
// =============================================================================

// newLogger builds a zap production logger at the configured level.
// The --verbose flag forces debug level regardless of configuration.
func newLogger(level string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		zapLevel = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	return cfg.Build()
}
