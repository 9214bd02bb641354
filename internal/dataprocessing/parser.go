package dataprocessing

import (
	"fmt"
	"strings"

	"salescli/pkg/contracts/domain"
)

// ParseResult holds the outcome of parsing raw data lines.
type ParseResult struct {
	Records      []domain.FieldRecord
	DroppedLines int
}

// ReadHeader splits a header line into column names, stripping a UTF-8
// byte-order-mark if present.
func ReadHeader(line string) []string {
	line = strings.TrimPrefix(strings.TrimSpace(line), "\ufeff")
	parts := strings.Split(line, "|")
	headers := make([]string, len(parts))
	for i, p := range parts {
		headers[i] = strings.TrimSpace(p)
	}
	return headers
}

// CheckHeader verifies that the header names the eight canonical columns in
// order.
func CheckHeader(headers []string) error {
	if len(headers) != domain.FieldCount {
		return fmt.Errorf("header has %d columns, expected %d", len(headers), domain.FieldCount)
	}
	for i, want := range domain.FieldNames {
		if headers[i] != want {
			return fmt.Errorf("header column %d is %q, expected %q", i+1, headers[i], want)
		}
	}
	return nil
}

// ParseLines converts raw data lines (header already stripped) into field
// records. Each line is split on '|' with surrounding whitespace trimmed
// from every field. Empty lines are skipped silently; lines whose field
// count differs from eight are dropped and counted. Commas are stripped
// from the product name here; numeric fields stay raw strings for the
// validator.
func ParseLines(lines []string) ParseResult {
	var result ParseResult
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) != domain.FieldCount {
			result.DroppedLines++
			continue
		}
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}

		result.Records = append(result.Records, domain.FieldRecord{
			TransactionID: fields[0],
			Date:          fields[1],
			ProductID:     fields[2],
			ProductName:   strings.ReplaceAll(fields[3], ",", ""),
			Quantity:      fields[4],
			UnitPrice:     fields[5],
			CustomerID:    fields[6],
			Region:        fields[7],
		})
	}
	return result
}
