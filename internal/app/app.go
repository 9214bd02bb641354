package app

import (
	"context"
	"log/slog"

	"salescli/internal/config"
	"salescli/internal/dataprocessing"
	"salescli/internal/enrichment"
	"salescli/internal/exporter"
	"salescli/internal/files"
	"salescli/internal/report"
	"salescli/pkg/contracts/domain"
)

// App wires the pipeline stages together for a full analytics run.
type App struct {
	cfg    *config.Config
	paths  *config.Paths
	logger *slog.Logger
}

// RunOptions controls a single run.
type RunOptions struct {
	InputFile  string // overrides the configured input path when set
	Filter     dataprocessing.FilterOptions
	Enrich     bool
	WriteFiles bool
}

// RunArtifacts is everything a completed run produced.
type RunArtifacts struct {
	Result     *dataprocessing.Result
	Enriched   []domain.EnrichedTransaction
	Data       *report.Data
	ReportText string
}

// New creates the application with resolved configuration and paths.
func New(cfg *config.Config, paths *config.Paths, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{cfg: cfg, paths: paths, logger: logger.With(slog.String("component", "app"))}
}

// Run executes the full pipeline: read, parse, validate, filter, enrich,
// aggregate, render, and (optionally) write the output files. Enrichment
// runs only when both opts.Enrich and the enrichment config allow it. Only
// a missing or unreadable input file is fatal; enrichment failures degrade
// to zero products enriched.
func (a *App) Run(ctx context.Context, opts RunOptions) (*RunArtifacts, error) {
	inputFile := opts.InputFile
	if inputFile == "" {
		inputFile = a.paths.InputFile
	}

	lines, err := files.ReadLines(inputFile)
	if err != nil {
		return nil, err
	}

	pipeline := dataprocessing.NewPipeline(a.logger)
	result := pipeline.Run(lines, opts.Filter)

	var enrichSummary *enrichment.Summary
	var enriched []domain.EnrichedTransaction
	if opts.Enrich && a.cfg.Enrichment.Enabled {
		catalog := a.fetchCatalog(ctx)
		var summary enrichment.Summary
		enriched, summary = enrichment.EnrichAll(result.Filtered, catalog)
		enrichSummary = &summary
	}

	data := report.Build(result, enrichSummary, a.cfg.Analytics)
	text := report.Render(data)

	if opts.WriteFiles {
		if err := a.writeOutputs(text, enriched, data); err != nil {
			return nil, err
		}
	}

	return &RunArtifacts{
		Result:     result,
		Enriched:   enriched,
		Data:       data,
		ReportText: text,
	}, nil
}

// fetchCatalog retrieves the product catalog, returning nil (all unmatched)
// when the provider is unreachable, slow, or malformed.
func (a *App) fetchCatalog(ctx context.Context) domain.ProductCatalog {
	client := enrichment.NewClient(a.cfg.Enrichment, a.logger)
	catalog, err := client.FetchCatalog(ctx)
	if err != nil {
		a.logger.Warn("Enrichment degraded to zero matches", slog.Any("error", err))
		return nil
	}
	return catalog
}

// writeOutputs writes the report, the enriched data file and the workbook.
func (a *App) writeOutputs(reportText string, enriched []domain.EnrichedTransaction, data *report.Data) error {
	if err := a.paths.EnsureDirectories(); err != nil {
		return err
	}

	if err := files.WriteText(a.paths.ReportFile, reportText); err != nil {
		return err
	}

	if enriched == nil {
		return nil
	}

	if err := exporter.WriteEnrichedFile(a.paths.EnrichedFile, enriched); err != nil {
		return err
	}

	summary := exporter.WorkbookSummary{
		TotalRevenue:     data.Summary.TotalRevenue,
		TransactionCount: data.Summary.TransactionCount,
	}
	if data.Enrichment != nil {
		summary.Matched = data.Enrichment.Matched
		summary.Unmatched = data.Enrichment.Unmatched
		summary.SuccessRate = data.Enrichment.SuccessRate
	}
	return exporter.WriteWorkbook(a.paths.WorkbookFile, enriched, summary)
}
