package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"salescli/internal/app"
	"salescli/internal/config"
	apperrors "salescli/internal/errors"
	"salescli/internal/infrastructure"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "salescli",
	Short: "Sales analytics pipeline: clean, validate, enrich and report on sales data",
	Long: `salescli ingests a pipe-delimited sales transaction file, cleans and
validates each record, enriches the records with external product catalog
metadata, computes aggregate statistics, and renders a formatted text report.

Outputs are written under the configured output directory: the text report,
the enriched pipe-delimited data file, and an XLSX workbook.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// setup loads configuration, initializes logging, and builds the app.
func setup() (*app.App, *config.Config, *config.Paths, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, nil, apperrors.NewConfigError("failed to load configuration", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	paths, err := cfg.ResolvePaths()
	if err != nil {
		return nil, nil, nil, err
	}

	logger.Debug("Configuration loaded",
		slog.String("config_file", cfgFile),
		slog.String("data_dir", paths.DataDir),
		slog.String("output_dir", paths.OutputDir))

	return app.New(cfg, paths, logger), cfg, paths, nil
}

func main() {
	defer infrastructure.CloseLogger()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
