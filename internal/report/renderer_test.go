package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescli/internal/config"
	"salescli/internal/dataprocessing"
	"salescli/internal/enrichment"
	"salescli/pkg/contracts/domain"
)

func sampleResult() *dataprocessing.Result {
	txs := []domain.Transaction{
		{TransactionID: "T001", Date: "2024-01-15", ProductID: "P101", ProductName: "Laptop Pro 15", Quantity: 2, UnitPrice: 45000, CustomerID: "C501", Region: "North"},
		{TransactionID: "T002", Date: "2024-01-15", ProductID: "P102", ProductName: "Wireless Mouse", Quantity: 5, UnitPrice: 500, CustomerID: "C502", Region: "South"},
		{TransactionID: "T003", Date: "2024-01-16", ProductID: "P101", ProductName: "Laptop Pro 15", Quantity: 1, UnitPrice: 45000, CustomerID: "C501", Region: "North"},
	}
	return &dataprocessing.Result{
		RunID:        "run-1",
		LinesRead:    6,
		DroppedLines: 1,
		TotalParsed:  5,
		Valid:        txs,
		Invalid: []domain.InvalidRecord{
			{FieldRecord: domain.FieldRecord{TransactionID: "X004"}, Error: "TransactionID 'X004' does not start with 'T'"},
			{FieldRecord: domain.FieldRecord{TransactionID: "T005"}, Error: "Missing Region"},
		},
		Filtered: txs,
		Filter: dataprocessing.FilterSummary{
			TotalInput: 5,
			Invalid:    2,
			FinalCount: 3,
		},
	}
}

func TestBuild(t *testing.T) {
	limits := config.Default().Analytics
	data := Build(sampleResult(), nil, limits)

	assert.Equal(t, "run-1", data.RunID)
	assert.Equal(t, 5, data.TotalParsed)
	assert.Equal(t, 2, data.InvalidCount)
	assert.Equal(t, 3, data.ValidCount)

	assert.InDelta(t, 137500.0, data.Summary.TotalRevenue, 0.001)
	assert.Equal(t, 3, data.Summary.TransactionCount)
	assert.InDelta(t, 45833.33, data.Summary.AvgOrderValue, 0.001)
	assert.Equal(t, "2024-01-15", data.Summary.FirstDate)
	assert.Equal(t, "2024-01-16", data.Summary.LastDate)

	require.Len(t, data.Regions, 2)
	assert.Equal(t, "North", data.Regions[0].Region)

	require.NotNil(t, data.TopProductByRevenue)
	assert.Equal(t, "Laptop Pro 15", data.TopProductByRevenue.Key)
	require.NotNil(t, data.TopRegionByRevenue)
	assert.Equal(t, "North", data.TopRegionByRevenue.Key)
	require.NotNil(t, data.TopCustomerByRevenue)
	assert.Equal(t, "C501", data.TopCustomerByRevenue.Key)

	require.Len(t, data.InvalidReasons, 2)
	assert.Equal(t, 1, data.InvalidReasons[0].Count)
	assert.Nil(t, data.Enrichment)
}

func TestBuildEmptyResult(t *testing.T) {
	result := &dataprocessing.Result{RunID: "run-2"}
	data := Build(result, nil, config.Default().Analytics)

	assert.Zero(t, data.Summary.TotalRevenue)
	assert.Zero(t, data.Summary.AvgOrderValue)
	assert.Empty(t, data.Summary.FirstDate)
	assert.Nil(t, data.TopProductByRevenue)
	assert.Empty(t, data.InvalidReasons)
}

func TestCountReasonsOrdering(t *testing.T) {
	result := &dataprocessing.Result{
		Invalid: []domain.InvalidRecord{
			{Error: "Missing Region"},
			{Error: "Missing CustomerID"},
			{Error: "Missing Region"},
			{Error: "Invalid UnitPrice format"},
		},
	}

	reasons := countReasons(result)
	require.Len(t, reasons, 3)
	assert.Equal(t, ReasonCount{Reason: "Missing Region", Count: 2}, reasons[0])
	// ties broken alphabetically
	assert.Equal(t, "Invalid UnitPrice format", reasons[1].Reason)
	assert.Equal(t, "Missing CustomerID", reasons[2].Reason)
}

func TestRenderSections(t *testing.T) {
	limits := config.Default().Analytics
	data := Build(sampleResult(), nil, limits)
	text := Render(data)

	sections := []string{
		"SALES ANALYTICS REPORT",
		"DATA CLEANING SUMMARY",
		"SALES STATISTICS",
		"REGION BREAKDOWN",
		"TOP 5 PRODUCTS BY QUANTITY",
		"TOP 5 CUSTOMERS BY SPEND",
		"DAILY SALES TREND",
		"PERFORMANCE ANALYSIS",
		"INVALID RECORDS SUMMARY",
		"ENRICHMENT SUMMARY",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(text, s)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", s)
		assert.Greater(t, idx, last, "section %q out of order", s)
		last = idx
	}

	assert.Contains(t, text, "Total Revenue: $137,500.00")
	assert.Contains(t, text, "Malformed lines dropped: 1")
	assert.Contains(t, text, "Date Range: 2024-01-15 to 2024-01-16")
	assert.Contains(t, text, "Enrichment skipped.")
	assert.Contains(t, text, "Missing Region: 1 record(s)")

	for _, line := range strings.Split(text, "\n") {
		assert.LessOrEqual(t, len(line), 80)
	}
}

func TestRenderEnrichmentSummary(t *testing.T) {
	limits := config.Default().Analytics
	summary := &enrichment.Summary{
		Matched:      2,
		Unmatched:    1,
		SuccessRate:  66.67,
		UnmatchedIDs: []string{"P999"},
	}
	data := Build(sampleResult(), summary, limits)
	text := Render(data)

	assert.Contains(t, text, "Products enriched: 2")
	assert.Contains(t, text, "Products unmatched: 1")
	assert.Contains(t, text, "Success rate: 66.67%")
	assert.Contains(t, text, "Unenriched product ids: P999")
	assert.NotContains(t, text, "Enrichment skipped.")
}

func TestRenderEmptyData(t *testing.T) {
	data := Build(&dataprocessing.Result{RunID: "run-3"}, nil, config.Default().Analytics)
	text := Render(data)

	assert.Contains(t, text, "No regional data available.")
	assert.Contains(t, text, "No product data available.")
	assert.Contains(t, text, "No customer data available.")
	assert.Contains(t, text, "No daily data available.")
	assert.Contains(t, text, "Peak Day: n/a")
	assert.True(t, strings.HasSuffix(text, strings.Repeat("=", 80)+"\n"))
}

func TestRenderTrendTruncation(t *testing.T) {
	limits := config.Default().Analytics
	limits.TrendDays = 1

	data := Build(sampleResult(), nil, limits)
	text := Render(data)

	assert.Contains(t, text, "... +1 more")
	assert.NotContains(t, text, "2024-01-16 ")
}
