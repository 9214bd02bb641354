package dataprocessing

import (
	"log/slog"

	"github.com/google/uuid"

	"salescli/pkg/contracts/domain"
)

// Pipeline runs the cleaning, validation and filtering stages over raw file
// lines and collects a structured run summary instead of printing progress.
type Pipeline struct {
	logger *slog.Logger
}

// Result is the outcome of a pipeline run. Valid holds every transaction
// that passed validation; Filtered is the subset remaining after the
// optional region/amount filters.
type Result struct {
	RunID        string
	LinesRead    int
	DroppedLines int
	TotalParsed  int
	Valid        []domain.Transaction
	Invalid      []domain.InvalidRecord
	Filtered     []domain.Transaction
	Filter       FilterSummary
}

// NewPipeline creates a pipeline with the given logger.
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger.With(slog.String("component", "pipeline"))}
}

// Run parses, validates and filters the raw lines. The first line is the
// header; an empty input yields an empty result. Parse and validation
// failures are captured as data on the result, never raised.
func (p *Pipeline) Run(lines []string, opts FilterOptions) *Result {
	result := &Result{
		RunID:     uuid.NewString(),
		LinesRead: len(lines),
	}

	logger := p.logger.With(slog.String("run_id", result.RunID))
	if len(lines) == 0 {
		logger.Warn("No lines to process")
		return result
	}

	headers := ReadHeader(lines[0])
	if err := CheckHeader(headers); err != nil {
		logger.Warn("Header deviates from canonical columns", slog.Any("error", err))
	}

	parsed := ParseLines(lines[1:])
	result.DroppedLines = parsed.DroppedLines

	validation := Validate(parsed.Records)
	result.TotalParsed = validation.TotalParsed
	result.Valid = validation.Valid
	result.Invalid = validation.Invalid

	result.Filtered, result.Filter = ApplyFilters(validation.Valid, validation.InvalidCount, opts)

	logger.Info("Pipeline run complete",
		slog.Int("lines_read", result.LinesRead),
		slog.Int("dropped_lines", result.DroppedLines),
		slog.Int("total_parsed", result.TotalParsed),
		slog.Int("valid", len(result.Valid)),
		slog.Int("invalid", len(result.Invalid)),
		slog.Int("filtered_by_region", result.Filter.FilteredByRegion),
		slog.Int("filtered_by_amount", result.Filter.FilteredByAmount),
		slog.Int("final_count", result.Filter.FinalCount))

	return result
}
