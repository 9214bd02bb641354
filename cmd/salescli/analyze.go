package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"salescli/internal/app"
	"salescli/internal/dataprocessing"
)

var (
	analyzeInput     string
	analyzeRegion    string
	analyzeMinAmount float64
	analyzeMaxAmount float64
	analyzeNoEnrich  bool
	analyzeQuiet     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full pipeline and write the report and enriched data files",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, _, paths, err := setup()
		if err != nil {
			return err
		}

		opts := app.RunOptions{
			InputFile:  analyzeInput,
			Filter:     filterFromFlags(cmd, analyzeRegion, analyzeMinAmount, analyzeMaxAmount),
			Enrich:     !analyzeNoEnrich,
			WriteFiles: true,
		}

		artifacts, err := application.Run(cmd.Context(), opts)
		if err != nil {
			return err
		}

		if !analyzeQuiet {
			fmt.Print(artifacts.ReportText)
		}
		fmt.Printf("Report written to %s\n", paths.ReportFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "input file (defaults to the configured data path)")
	analyzeCmd.Flags().StringVar(&analyzeRegion, "region", "", "only include transactions from this region")
	analyzeCmd.Flags().Float64Var(&analyzeMinAmount, "min-amount", 0, "minimum transaction amount (inclusive)")
	analyzeCmd.Flags().Float64Var(&analyzeMaxAmount, "max-amount", 0, "maximum transaction amount (inclusive)")
	analyzeCmd.Flags().BoolVar(&analyzeNoEnrich, "no-enrich", false, "skip product catalog enrichment")
	analyzeCmd.Flags().BoolVarP(&analyzeQuiet, "quiet", "q", false, "do not echo the report to stdout")
}

// filterFromFlags is kept separate so serve can reuse the same flag wiring.
func filterFromFlags(cmd *cobra.Command, region string, min, max float64) dataprocessing.FilterOptions {
	opts := dataprocessing.FilterOptions{Region: region}
	if cmd.Flags().Changed("min-amount") {
		v := min
		opts.MinAmount = &v
	}
	if cmd.Flags().Changed("max-amount") {
		v := max
		opts.MaxAmount = &v
	}
	return opts
}
