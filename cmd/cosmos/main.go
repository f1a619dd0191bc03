// Package main provides the cosmos CLI.
//
// cosmos keeps worldbuilding worksheets in a local database and runs the
// cross-tool rules over them:
//   - preview/import carry speculative parameters into a planet worksheet
//   - implications/apply turn mythology traits into pantheon suggestions
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/config"
	"github.com/Escielenn/cosmos-builders-toolkit-v2-sub000/internal/worksheet"
)

var (
	// Global flags
	verbose    bool
	jsonOutput bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger

	// store is opened lazily by commands that need it.
	store worksheet.Store
)

var rootCmd = &cobra.Command{
	Use:   "cosmos",
	Short: "Cosmos Builders Toolkit worksheet rules",
	Long: `cosmos stores worldbuilding worksheets and applies the toolkit's
cross-tool rules to them.

Speculative parameter worksheets can be previewed and imported into planet
worksheets. Mythology worksheets can be scanned for implications, and any
implication can be added to the pantheon as a new archetype.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		logger, err = cfg.Logging.ZapConfig(verbose).Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config file")

	rootCmd.AddCommand(worksheetCmd, previewCmd, importCmd, implicationsCmd, applyCmd, catalogCmd, mappingsCmd)
}

// openStore returns the shared store, opening the configured database on
// first use.
func openStore(ctx context.Context) (worksheet.Store, error) {
	if store != nil {
		return store, nil
	}

	s, err := worksheet.OpenSQLite(ctx, cfg.DatabasePath, worksheet.WithStoreLogger(logger))
	if err != nil {
		return nil, err
	}

	store = s

	return store, nil
}

// cleanup closes the store and flushes the logger. It runs after Execute
// whether or not the command failed.
func cleanup() {
	if store != nil {
		if err := store.Close(); err != nil && logger != nil {
			logger.Warn("failed to close worksheet store", zap.Error(err))
		}

		store = nil
	}

	if logger != nil {
		_ = logger.Sync()
	}
}

func main() {
	err := rootCmd.Execute()
	cleanup()

	if err != nil {
		os.Exit(1)
	}
}
