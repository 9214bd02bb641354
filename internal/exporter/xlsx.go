package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

const (
	dataSheet    = "Enriched Data"
	summarySheet = "Summary"
)

// WorkbookSummary carries the run totals written to the workbook's summary
// sheet. Values come from the aggregator, never recomputed here.
type WorkbookSummary struct {
	TotalRevenue     float64
	TransactionCount int
	Matched          int
	Unmatched        int
	SuccessRate      float64
}

// WriteWorkbook writes the enriched transactions to an XLSX workbook with a
// data sheet and a summary sheet.
func WriteWorkbook(path string, enriched []domain.EnrichedTransaction, summary WorkbookSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create workbook directory", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return fmt.Errorf("failed to rename data sheet: %w", err)
	}

	for col, name := range domain.EnrichedFieldNames {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build header cell name: %w", err)
		}
		if err := f.SetCellValue(dataSheet, cell, name); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, e := range enriched {
		values := []interface{}{
			e.TransactionID, e.Date, e.ProductID, e.ProductName,
			e.Quantity, e.UnitPrice, e.CustomerID, e.Region,
			e.Category, e.Brand, nil, formatMatch(e.Matched),
		}
		if e.Matched {
			values[10] = e.Rating
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(dataSheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	rows := [][]interface{}{
		{"Total Revenue", summary.TotalRevenue},
		{"Transactions", summary.TransactionCount},
		{"Enriched", summary.Matched},
		{"Unenriched", summary.Unmatched},
		{"Success Rate %", summary.SuccessRate},
	}
	for i, row := range rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+1)
			if err != nil {
				return fmt.Errorf("failed to build summary cell name: %w", err)
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to save workbook %s", path), err)
	}

	slog.Info("Wrote enriched workbook",
		slog.String("path", path),
		slog.Int("records", len(enriched)))
	return nil
}
