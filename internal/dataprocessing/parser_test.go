package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescli/pkg/contracts/domain"
)

func TestReadHeader(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain header",
			line: "TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region",
			want: domain.FieldNames,
		},
		{
			name: "header with BOM",
			line: "\ufeffTransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region",
			want: domain.FieldNames,
		},
		{
			name: "header with padding",
			line: " TransactionID | Date |ProductID|ProductName|Quantity|UnitPrice|CustomerID| Region ",
			want: domain.FieldNames,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadHeader(tt.line))
		})
	}
}

func TestCheckHeader(t *testing.T) {
	assert.NoError(t, CheckHeader(domain.FieldNames))
	assert.Error(t, CheckHeader([]string{"TransactionID", "Date"}))

	wrong := append([]string{}, domain.FieldNames...)
	wrong[2] = "SKU"
	assert.Error(t, CheckHeader(wrong))
}

func TestParseLines(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		wantRecords int
		wantDropped int
	}{
		{
			name:        "valid line",
			lines:       []string{"T001|2024-12-01|P101|Laptop|2|45000|C001|North"},
			wantRecords: 1,
			wantDropped: 0,
		},
		{
			name:        "wrong arity dropped",
			lines:       []string{"T001|2024-12-01|P101|Laptop|2|45000|C001", "T002|2024-12-01|P102|Mouse|50|500|C002|South|extra"},
			wantRecords: 0,
			wantDropped: 2,
		},
		{
			name:        "empty lines skipped silently",
			lines:       []string{"", "   ", "T001|2024-12-01|P101|Laptop|2|45000|C001|North"},
			wantRecords: 1,
			wantDropped: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseLines(tt.lines)
			assert.Len(t, result.Records, tt.wantRecords)
			assert.Equal(t, tt.wantDropped, result.DroppedLines)
		})
	}
}

func TestParseLinesFieldHandling(t *testing.T) {
	result := ParseLines([]string{" T001 | 2024-12-01 |P101| Gaming Laptop, Pro | 2 | 45,000 | C001 | North "})
	require.Len(t, result.Records, 1)

	rec := result.Records[0]
	assert.Equal(t, "T001", rec.TransactionID)
	assert.Equal(t, "2024-12-01", rec.Date)
	assert.Equal(t, "P101", rec.ProductID)
	assert.Equal(t, "Gaming Laptop Pro", rec.ProductName, "commas stripped from product name")
	assert.Equal(t, "45,000", rec.UnitPrice, "numeric conversion deferred to the validator")
	assert.Equal(t, "North", rec.Region)
}
