package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gotab/internal/config"
	"github.com/alexiusacademia/gotab/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configFile string
	verbose    bool

	// Set up by the root command before any subcommand runs
	logger *zap.Logger
	conf   *config.Configuration
)

var rootCmd = &cobra.Command{
	Use:   "gotab",
	Short: "Timber Arch Bridge Geometry Tool",
	Long: `gotab - Go Timber Arch Bridge

A CLI tool for laying out segmented timber arch bridges built from
identical square stobs seated on cross timbers.

Given the stob length, width and rebate depth it solves the arch
radius and segment angle, then reports:
  - Span and soffit height for the chosen number of segments
  - Stob counts (longs, ends, cross pieces, uprights)
  - Piece profiles, volumes and timber mass

Parameters come from flags, a YAML file (--config) or GOTAB_*
environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initiate logger: %w", err)
		}

		conf, err = config.LoadConfiguration(configFile)
		if err != nil {
			logger.Error("failed to load configuration",
				zap.String("op", "cmd.root"),
				zap.String("path", configFile),
				zap.Error(err),
			)
			return err
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gotab v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Timber Arch Bridge                                   ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Arch radius and segment angle from stob dimensions")
		fmt.Println("    • Span, soffit height and overarch check")
		fmt.Println("    • Stob counts, piece profiles and timber mass")
		fmt.Println("    • Elevation diagrams, XLSX and PDF reports")
		fmt.Println()
		fmt.Println("  Use 'gotab --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to bridge YAML configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log solver iterations")
}

// newLogger logs warnings and above as JSON to stderr, or everything with verbose
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
