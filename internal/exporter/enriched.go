package exporter

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"salescli/internal/dataprocessing"
	"salescli/internal/files"
	"salescli/pkg/contracts/domain"
)

// WriteEnrichedFile writes the enriched transactions as pipe-delimited text:
// the eight input columns plus API_Category, API_Brand, API_Rating and
// API_Match. Absent metadata renders as empty strings.
func WriteEnrichedFile(path string, enriched []domain.EnrichedTransaction) error {
	var b strings.Builder
	b.WriteString(strings.Join(domain.EnrichedFieldNames, "|"))
	b.WriteByte('\n')

	for _, e := range enriched {
		row := []string{
			e.TransactionID,
			e.Date,
			e.ProductID,
			e.ProductName,
			strconv.Itoa(e.Quantity),
			formatPrice(e.UnitPrice),
			e.CustomerID,
			e.Region,
			e.Category,
			e.Brand,
			formatRating(e.Rating, e.Matched),
			formatMatch(e.Matched),
		}
		b.WriteString(strings.Join(row, "|"))
		b.WriteByte('\n')
	}

	if err := files.WriteText(path, b.String()); err != nil {
		return err
	}

	slog.Debug("Wrote enriched data file",
		slog.String("path", path),
		slog.Int("records", len(enriched)))
	return nil
}

// ReadEnrichedFile parses an enriched data file back into enriched
// transactions. The first eight columns go through the same parse and
// validation stages as the raw input, so a written file always reads back
// to the identical transaction set.
func ReadEnrichedFile(path string) ([]domain.EnrichedTransaction, error) {
	lines, err := files.ReadLines(path)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}

	headers := dataprocessing.ReadHeader(lines[0])
	if len(headers) != len(domain.EnrichedFieldNames) {
		return nil, fmt.Errorf("enriched file has %d columns, expected %d",
			len(headers), len(domain.EnrichedFieldNames))
	}

	var enriched []domain.EnrichedTransaction
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) != len(domain.EnrichedFieldNames) {
			continue
		}
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}

		base := strings.Join(fields[:domain.FieldCount], "|")
		parsed := dataprocessing.ParseLines([]string{base})
		validation := dataprocessing.Validate(parsed.Records)
		if len(validation.Valid) != 1 {
			continue
		}

		e := domain.EnrichedTransaction{Transaction: validation.Valid[0]}
		if fields[11] == "True" {
			e.Matched = true
			e.Category = fields[8]
			e.Brand = fields[9]
			if rating, err := strconv.ParseFloat(fields[10], 64); err == nil {
				e.Rating = rating
			}
		}
		enriched = append(enriched, e)
	}
	return enriched, nil
}
