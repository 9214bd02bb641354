package report

import (
	"fmt"
	"strings"
)

// Render assembles the fixed-section text report. Section order: header,
// cleaning summary, overall summary, regions, top products, top customers,
// daily trend, performance analysis, invalid records, enrichment.
func Render(data *Data) string {
	var b strings.Builder

	writeHeader(&b, data)
	writeCleaningSummary(&b, data)
	writeOverallSummary(&b, data)
	writeRegions(&b, data)
	writeTopProducts(&b, data)
	writeTopCustomers(&b, data)
	writeDailyTrend(&b, data)
	writePerformance(&b, data)
	writeInvalidSummary(&b, data)
	writeEnrichment(&b, data)

	b.WriteString(rule('='))
	b.WriteByte('\n')
	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString(rule('-'))
	b.WriteByte('\n')
	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString(rule('-'))
	b.WriteByte('\n')
}

func writeHeader(b *strings.Builder, data *Data) {
	b.WriteString(rule('='))
	b.WriteByte('\n')
	b.WriteString("SALES ANALYTICS REPORT\n")
	b.WriteString(rule('='))
	b.WriteByte('\n')
	fmt.Fprintf(b, "Generated on: %s\n", data.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(b, "Records analyzed: %d\n\n", data.Summary.TransactionCount)
}

func writeCleaningSummary(b *strings.Builder, data *Data) {
	section(b, "DATA CLEANING SUMMARY")
	fmt.Fprintf(b, "Total records parsed: %d\n", data.TotalParsed)
	fmt.Fprintf(b, "Invalid records removed: %d\n", data.InvalidCount)
	fmt.Fprintf(b, "Valid records after cleaning: %d\n", data.ValidCount)
	if data.DroppedLines > 0 {
		fmt.Fprintf(b, "Malformed lines dropped: %d\n", data.DroppedLines)
	}
	if data.Filter.FilteredByRegion > 0 || data.Filter.FilteredByAmount > 0 {
		fmt.Fprintf(b, "Filtered by region: %d\n", data.Filter.FilteredByRegion)
		fmt.Fprintf(b, "Filtered by amount: %d\n", data.Filter.FilteredByAmount)
		fmt.Fprintf(b, "Records after filtering: %d\n", data.Filter.FinalCount)
	}
	b.WriteByte('\n')
}

func writeOverallSummary(b *strings.Builder, data *Data) {
	section(b, "SALES STATISTICS")
	fmt.Fprintf(b, "Total Revenue: $%s\n", money(data.Summary.TotalRevenue))
	fmt.Fprintf(b, "Total Transactions: %d\n", data.Summary.TransactionCount)
	fmt.Fprintf(b, "Average Transaction Value: $%s\n", money(data.Summary.AvgOrderValue))
	if data.Summary.FirstDate != "" {
		fmt.Fprintf(b, "Date Range: %s to %s\n", data.Summary.FirstDate, data.Summary.LastDate)
	}
	b.WriteByte('\n')
}

func writeRegions(b *strings.Builder, data *Data) {
	section(b, "REGION BREAKDOWN")
	if len(data.Regions) == 0 {
		b.WriteString("No regional data available.\n\n")
		return
	}
	fmt.Fprintf(b, "%-20s %18s %10s %12s\n", "Region", "Total Sales", "Share", "Count")
	for _, r := range data.Regions {
		fmt.Fprintf(b, "%-20s %18s %9.2f%% %12d\n", r.Region, "$"+money(r.TotalSales), r.Percentage, r.Count)
	}
	b.WriteByte('\n')
}

func writeTopProducts(b *strings.Builder, data *Data) {
	section(b, fmt.Sprintf("TOP %d PRODUCTS BY QUANTITY", data.Limits.TopProducts))
	if len(data.TopProducts) == 0 {
		b.WriteString("No product data available.\n\n")
		return
	}
	fmt.Fprintf(b, "%-30s %12s %20s\n", "Product", "Quantity", "Revenue")
	for i, p := range data.TopProducts {
		fmt.Fprintf(b, "%d. %-27s %12d %20s\n", i+1, p.Name, p.TotalQuantity, "$"+money(p.TotalRevenue))
	}
	b.WriteByte('\n')
}

func writeTopCustomers(b *strings.Builder, data *Data) {
	section(b, fmt.Sprintf("TOP %d CUSTOMERS BY SPEND", data.Limits.TopCustomers))
	if len(data.Customers) == 0 {
		b.WriteString("No customer data available.\n\n")
		return
	}
	shown := data.Customers
	if len(shown) > data.Limits.TopCustomers {
		shown = shown[:data.Limits.TopCustomers]
	}
	fmt.Fprintf(b, "%-12s %18s %10s %16s\n", "Customer", "Total Spent", "Orders", "Avg Order")
	for _, c := range shown {
		fmt.Fprintf(b, "%-12s %18s %10d %16s\n", c.CustomerID, "$"+money(c.TotalSpent), c.PurchaseCount, "$"+money(c.AvgOrderValue))
	}
	b.WriteByte('\n')
}

func writeDailyTrend(b *strings.Builder, data *Data) {
	section(b, "DAILY SALES TREND")
	if len(data.Trend) == 0 {
		b.WriteString("No daily data available.\n\n")
		return
	}
	shown := data.Trend
	more := 0
	if len(shown) > data.Limits.TrendDays {
		more = len(shown) - data.Limits.TrendDays
		shown = shown[:data.Limits.TrendDays]
	}
	fmt.Fprintf(b, "%-12s %18s %14s %12s\n", "Date", "Revenue", "Transactions", "Customers")
	for _, d := range shown {
		fmt.Fprintf(b, "%-12s %18s %14d %12d\n", d.Date, "$"+money(d.Revenue), d.Count, d.UniqueCustomers)
	}
	if more > 0 {
		fmt.Fprintf(b, "... +%d more\n", more)
	}
	b.WriteByte('\n')
}

func writePerformance(b *strings.Builder, data *Data) {
	section(b, "PERFORMANCE ANALYSIS")

	if data.Peak.Date != "" {
		fmt.Fprintf(b, "Peak Day: %s ($%s across %d transactions)\n",
			data.Peak.Date, money(data.Peak.Revenue), data.Peak.Count)
	} else {
		b.WriteString("Peak Day: n/a\n")
	}

	if data.TopProductByRevenue != nil {
		fmt.Fprintf(b, "Top Product by Revenue: %s ($%s)\n",
			data.TopProductByRevenue.Key, money(data.TopProductByRevenue.Revenue))
	}
	if data.TopRegionByRevenue != nil {
		fmt.Fprintf(b, "Top Region by Revenue: %s ($%s)\n",
			data.TopRegionByRevenue.Key, money(data.TopRegionByRevenue.Revenue))
	}
	if data.TopCustomerByRevenue != nil {
		fmt.Fprintf(b, "Top Customer by Revenue: %s ($%s)\n",
			data.TopCustomerByRevenue.Key, money(data.TopCustomerByRevenue.Revenue))
	}

	fmt.Fprintf(b, "\nLow Performers (quantity below %d):\n", data.Limits.LowPerformerThreshold)
	if len(data.LowPerformers) == 0 {
		b.WriteString("  none\n")
	} else {
		shown := data.LowPerformers
		more := 0
		if len(shown) > data.Limits.LowPerformerListLimit {
			more = len(shown) - data.Limits.LowPerformerListLimit
			shown = shown[:data.Limits.LowPerformerListLimit]
		}
		for _, p := range shown {
			fmt.Fprintf(b, "  %s: %d sold\n", p.Name, p.TotalQuantity)
		}
		if more > 0 {
			fmt.Fprintf(b, "  ... +%d more\n", more)
		}
	}

	if len(data.RegionAverages) > 0 {
		b.WriteString("\nAverage Transaction Value by Region:\n")
		for _, r := range data.RegionAverages {
			fmt.Fprintf(b, "  %s: $%s\n", r.Region, money(r.Average))
		}
	}
	b.WriteByte('\n')
}

func writeInvalidSummary(b *strings.Builder, data *Data) {
	if len(data.InvalidReasons) == 0 {
		return
	}
	section(b, "INVALID RECORDS SUMMARY")
	for _, r := range data.InvalidReasons {
		fmt.Fprintf(b, "%s: %d record(s)\n", r.Reason, r.Count)
	}
	b.WriteByte('\n')
}

func writeEnrichment(b *strings.Builder, data *Data) {
	section(b, "ENRICHMENT SUMMARY")
	if data.Enrichment == nil {
		b.WriteString("Enrichment skipped.\n\n")
		return
	}

	fmt.Fprintf(b, "Products enriched: %d\n", data.Enrichment.Matched)
	fmt.Fprintf(b, "Products unmatched: %d\n", data.Enrichment.Unmatched)
	fmt.Fprintf(b, "Success rate: %.2f%%\n", data.Enrichment.SuccessRate)

	if len(data.Enrichment.UnmatchedIDs) > 0 {
		b.WriteString("Unenriched product ids: ")
		ids := data.Enrichment.UnmatchedIDs
		more := 0
		if len(ids) > data.Limits.UnenrichedListLimit {
			more = len(ids) - data.Limits.UnenrichedListLimit
			ids = ids[:data.Limits.UnenrichedListLimit]
		}
		b.WriteString(strings.Join(ids, ", "))
		if more > 0 {
			fmt.Fprintf(b, " +%d more", more)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}
