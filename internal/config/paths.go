package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathsConfig contains file system locations, relative paths resolved
// against BaseDir (the working directory when BaseDir is empty).
type PathsConfig struct {
	BaseDir      string `yaml:"base_dir" envconfig:"BASE_DIR"`
	DataDir      string `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	OutputDir    string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
	LogsDir      string `yaml:"logs_dir" envconfig:"LOGS_DIR" validate:"required"`
	InputFile    string `yaml:"input_file" envconfig:"INPUT_FILE" validate:"required"`
	ReportFile   string `yaml:"report_file" envconfig:"REPORT_FILE" validate:"required"`
	EnrichedFile string `yaml:"enriched_file" envconfig:"ENRICHED_FILE" validate:"required"`
	WorkbookFile string `yaml:"workbook_file" envconfig:"WORKBOOK_FILE" validate:"required"`
}

// DefaultPathsConfig returns the default file layout.
func DefaultPathsConfig() PathsConfig {
	return PathsConfig{
		DataDir:      "data",
		OutputDir:    "output",
		LogsDir:      "logs",
		InputFile:    "sales_data.txt",
		ReportFile:   "sales_report.txt",
		EnrichedFile: "enriched_data.txt",
		WorkbookFile: "enriched_data.xlsx",
	}
}

// Paths holds fully resolved absolute paths. This is the single source of
// truth for all file locations used by the pipeline.
type Paths struct {
	BaseDir      string
	DataDir      string
	OutputDir    string
	LogsDir      string
	InputFile    string
	ReportFile   string
	EnrichedFile string
	WorkbookFile string
}

// ResolvePaths resolves the configured locations into absolute paths.
func (c *Config) ResolvePaths() (*Paths, error) {
	base := c.Paths.BaseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		base = wd
	}
	abs := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	dataDir := abs(c.Paths.DataDir)
	outputDir := abs(c.Paths.OutputDir)
	return &Paths{
		BaseDir:      base,
		DataDir:      dataDir,
		OutputDir:    outputDir,
		LogsDir:      abs(c.Paths.LogsDir),
		InputFile:    filepath.Join(dataDir, c.Paths.InputFile),
		ReportFile:   filepath.Join(outputDir, c.Paths.ReportFile),
		EnrichedFile: filepath.Join(outputDir, c.Paths.EnrichedFile),
		WorkbookFile: filepath.Join(outputDir, c.Paths.WorkbookFile),
	}, nil
}

// EnsureDirectories creates the output and logs directories if missing. The
// data directory is intentionally not created: a missing input location is a
// fatal condition reported at read time, not silently papered over.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.OutputDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
