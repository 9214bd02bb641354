package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescli/pkg/contracts/domain"
)

func sampleEnriched() []domain.EnrichedTransaction {
	return []domain.EnrichedTransaction{
		{
			Transaction: domain.Transaction{
				TransactionID: "T001", Date: "2024-01-15",
				ProductID: "P101", ProductName: "Laptop Pro 15",
				Quantity: 2, UnitPrice: 45000.5,
				CustomerID: "C501", Region: "North",
			},
			Category: "laptops", Brand: "TechCorp", Rating: 4.5, Matched: true,
		},
		{
			Transaction: domain.Transaction{
				TransactionID: "T002", Date: "2024-01-16",
				ProductID: "P999", ProductName: "Mystery Gadget",
				Quantity: 1, UnitPrice: 250,
				CustomerID: "C502", Region: "South",
			},
		},
	}
}

func TestWriteEnrichedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched_data.txt")
	require.NoError(t, WriteEnrichedFile(path, sampleEnriched()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, strings.Join(domain.EnrichedFieldNames, "|"), lines[0])
	assert.Equal(t, "T001|2024-01-15|P101|Laptop Pro 15|2|45000.5|C501|North|laptops|TechCorp|4.50|True", lines[1])
	assert.Equal(t, "T002|2024-01-16|P999|Mystery Gadget|1|250|C502|South||||False", lines[2])
}

func TestWriteEnrichedFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched_data.txt")
	require.NoError(t, WriteEnrichedFile(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(domain.EnrichedFieldNames, "|")+"\n", string(data))
}

func TestEnrichedFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched_data.txt")
	original := sampleEnriched()
	require.NoError(t, WriteEnrichedFile(path, original))

	restored, err := ReadEnrichedFile(path)
	require.NoError(t, err)
	require.Len(t, restored, 2)

	assert.Equal(t, original[0].Transaction, restored[0].Transaction)
	assert.Equal(t, "laptops", restored[0].Category)
	assert.Equal(t, "TechCorp", restored[0].Brand)
	assert.InDelta(t, 4.5, restored[0].Rating, 0.001)
	assert.True(t, restored[0].Matched)

	assert.Equal(t, original[1].Transaction, restored[1].Transaction)
	assert.False(t, restored[1].Matched)
	assert.Empty(t, restored[1].Category)
	assert.Zero(t, restored[1].Rating)
}

func TestReadEnrichedFileWrongColumnCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched_data.txt")
	require.NoError(t, os.WriteFile(path, []byte("A|B|C\n"), 0644))

	_, err := ReadEnrichedFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 12")
}

func TestReadEnrichedFileSkipsBadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched_data.txt")
	header := strings.Join(domain.EnrichedFieldNames, "|")
	content := header + "\n" +
		"T001|2024-01-15|P101|Widget|2|100|C501|North||||False\n" +
		"short|row\n" +
		"X002|2024-01-15|P101|Widget|2|100|C501|North||||False\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	restored, err := ReadEnrichedFile(path)
	require.NoError(t, err)
	require.Len(t, restored, 1)
	assert.Equal(t, "T001", restored[0].TransactionID)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "45000.5", formatPrice(45000.5))
	assert.Equal(t, "250", formatPrice(250))
	assert.Equal(t, "0.01", formatPrice(0.01))

	assert.Equal(t, "4.50", formatRating(4.5, true))
	assert.Equal(t, "", formatRating(0, false))

	assert.Equal(t, "True", formatMatch(true))
	assert.Equal(t, "False", formatMatch(false))
}
