package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"salescli/pkg/contracts/domain"
)

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched_data.xlsx")
	summary := WorkbookSummary{
		TotalRevenue:     90251.0,
		TransactionCount: 2,
		Matched:          1,
		Unmatched:        1,
		SuccessRate:      50.0,
	}
	require.NoError(t, WriteWorkbook(path, sampleEnriched(), summary))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Enriched Data", "Summary"}, f.GetSheetList())

	rows, err := f.GetRows("Enriched Data")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, domain.EnrichedFieldNames, rows[0])

	assert.Equal(t, "T001", rows[1][0])
	assert.Equal(t, "laptops", rows[1][8])
	assert.Equal(t, "4.5", rows[1][10])
	assert.Equal(t, "True", rows[1][11])

	// unmatched row has no rating cell at all
	assert.Equal(t, "T002", rows[2][0])
	assert.Equal(t, "False", rows[2][11])
	rating, err := f.GetCellValue("Enriched Data", "K3")
	require.NoError(t, err)
	assert.Empty(t, rating)

	sumRows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, sumRows, 5)
	assert.Equal(t, []string{"Total Revenue", "90251"}, sumRows[0])
	assert.Equal(t, []string{"Success Rate %", "50"}, sumRows[4])
}

func TestWriteWorkbookEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched_data.xlsx")
	require.NoError(t, WriteWorkbook(path, nil, WorkbookSummary{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Enriched Data")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.EnrichedFieldNames, rows[0])
}
