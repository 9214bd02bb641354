package report

import (
	"math"
	"sort"
	"time"

	"salescli/internal/config"
	"salescli/internal/dataprocessing"
	"salescli/internal/enrichment"
)

// ReasonCount is one entry of the invalid-records breakdown.
type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// Summary is the overall figures block of a run.
type Summary struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TransactionCount int     `json:"transaction_count"`
	AvgOrderValue    float64 `json:"avg_order_value"`
	FirstDate        string  `json:"first_date"`
	LastDate         string  `json:"last_date"`
}

// Data is everything the renderer needs, all computed by the aggregator and
// enrichment adapter up front. The renderer itself holds no decision logic
// beyond formatting, so the report always agrees with any other consumer of
// the same statistics.
type Data struct {
	GeneratedAt time.Time `json:"generated_at"`
	RunID       string    `json:"run_id"`

	LinesRead    int `json:"lines_read"`
	DroppedLines int `json:"dropped_lines"`
	TotalParsed  int `json:"total_parsed"`
	InvalidCount int `json:"invalid_count"`
	ValidCount   int `json:"valid_count"`

	Filter dataprocessing.FilterSummary `json:"filter"`

	Summary        Summary                        `json:"summary"`
	Regions        []dataprocessing.RegionStat    `json:"regions"`
	TopProducts    []dataprocessing.ProductStat   `json:"top_products"`
	Customers      []dataprocessing.CustomerStat  `json:"customers"`
	Trend          []dataprocessing.DailyStat     `json:"trend"`
	Peak           dataprocessing.PeakDay         `json:"peak_day"`
	LowPerformers  []dataprocessing.ProductStat   `json:"low_performers"`
	RegionAverages []dataprocessing.RegionAverage `json:"region_averages"`

	TopProductByRevenue  *dataprocessing.RevenueLeader `json:"top_product_by_revenue,omitempty"`
	TopRegionByRevenue   *dataprocessing.RevenueLeader `json:"top_region_by_revenue,omitempty"`
	TopCustomerByRevenue *dataprocessing.RevenueLeader `json:"top_customer_by_revenue,omitempty"`

	InvalidReasons []ReasonCount       `json:"invalid_reasons,omitempty"`
	Enrichment     *enrichment.Summary `json:"enrichment,omitempty"`

	Limits config.AnalyticsConfig `json:"-"`
}

// Build assembles the report data from a pipeline result. Statistics are
// computed over the filtered transaction set; enrichSummary may be nil when
// enrichment was disabled or skipped.
func Build(result *dataprocessing.Result, enrichSummary *enrichment.Summary, limits config.AnalyticsConfig) *Data {
	txs := result.Filtered

	total := dataprocessing.TotalRevenue(txs)
	avg := 0.0
	if len(txs) > 0 {
		avg = math.Round(total/float64(len(txs))*100) / 100
	}

	trend := dataprocessing.DailyTrend(txs)
	summary := Summary{
		TotalRevenue:     total,
		TransactionCount: len(txs),
		AvgOrderValue:    avg,
	}
	if len(trend) > 0 {
		summary.FirstDate = trend[0].Date
		summary.LastDate = trend[len(trend)-1].Date
	}

	data := &Data{
		GeneratedAt:    time.Now(),
		RunID:          result.RunID,
		LinesRead:      result.LinesRead,
		DroppedLines:   result.DroppedLines,
		TotalParsed:    result.TotalParsed,
		InvalidCount:   len(result.Invalid),
		ValidCount:     len(result.Valid),
		Filter:         result.Filter,
		Summary:        summary,
		Regions:        dataprocessing.RegionStats(txs),
		TopProducts:    dataprocessing.TopProducts(txs, limits.TopProducts),
		Customers:      dataprocessing.CustomerStats(txs),
		Trend:          trend,
		Peak:           dataprocessing.FindPeakDay(txs),
		LowPerformers:  dataprocessing.LowPerformers(txs, limits.LowPerformerThreshold),
		RegionAverages: dataprocessing.RegionAverages(txs),
		Enrichment:     enrichSummary,
		Limits:         limits,
	}

	if leader, ok := dataprocessing.TopProductByRevenue(txs); ok {
		data.TopProductByRevenue = &leader
	}
	if leader, ok := dataprocessing.TopRegionByRevenue(txs); ok {
		data.TopRegionByRevenue = &leader
	}
	if leader, ok := dataprocessing.TopCustomerByRevenue(txs); ok {
		data.TopCustomerByRevenue = &leader
	}

	data.InvalidReasons = countReasons(result)
	return data
}

// countReasons groups invalid records by their error reason, most frequent
// first, ties broken alphabetically.
func countReasons(result *dataprocessing.Result) []ReasonCount {
	counts := make(map[string]int)
	for _, rec := range result.Invalid {
		counts[rec.Error]++
	}
	reasons := make([]ReasonCount, 0, len(counts))
	for reason, count := range counts {
		reasons = append(reasons, ReasonCount{Reason: reason, Count: count})
	}
	sort.Slice(reasons, func(i, j int) bool {
		if reasons[i].Count != reasons[j].Count {
			return reasons[i].Count > reasons[j].Count
		}
		return reasons[i].Reason < reasons[j].Reason
	})
	return reasons
}
