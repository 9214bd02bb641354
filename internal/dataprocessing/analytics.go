package dataprocessing

import (
	"math"
	"sort"
	"strings"

	"salescli/pkg/contracts/domain"
)

// The analytics queries are independent, pure and deterministic for a fixed
// input. Grouping preserves first-encountered key order before the stable
// sort, which fixes tie-break behavior. A record with a blank group key is
// skipped for that aggregation only.

// TotalRevenue sums Quantity x UnitPrice across all transactions.
func TotalRevenue(transactions []domain.Transaction) float64 {
	var total float64
	for _, tx := range transactions {
		total += tx.Amount()
	}
	return total
}

// RegionStats groups transactions by region and computes per-region sales,
// count, and share of total revenue (rounded to 2 decimals), sorted by total
// sales descending.
func RegionStats(transactions []domain.Transaction) []RegionStat {
	order, buckets := groupBy(transactions, func(tx domain.Transaction) string { return tx.Region })

	total := TotalRevenue(transactions)
	stats := make([]RegionStat, 0, len(order))
	for _, region := range order {
		txs := buckets[region]
		sales := TotalRevenue(txs)
		pct := 0.0
		if total > 0 {
			pct = round2(sales / total * 100)
		}
		stats = append(stats, RegionStat{
			Region:     region,
			TotalSales: sales,
			Count:      len(txs),
			Percentage: pct,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool { return stats[i].TotalSales > stats[j].TotalSales })
	return stats
}

// TopProducts returns up to n products ranked by total quantity sold,
// descending.
func TopProducts(transactions []domain.Transaction, n int) []ProductStat {
	stats := productStats(transactions)
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].TotalQuantity > stats[j].TotalQuantity })
	if n >= 0 && len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// LowPerformers returns products whose total sold quantity is strictly below
// threshold, sorted by quantity ascending.
func LowPerformers(transactions []domain.Transaction, threshold int) []ProductStat {
	var low []ProductStat
	for _, stat := range productStats(transactions) {
		if stat.TotalQuantity < threshold {
			low = append(low, stat)
		}
	}
	sort.SliceStable(low, func(i, j int) bool { return low[i].TotalQuantity < low[j].TotalQuantity })
	return low
}

// CustomerStats groups transactions by customer and computes spend, purchase
// count, average order value, and the sorted distinct product names bought,
// sorted by total spent descending.
func CustomerStats(transactions []domain.Transaction) []CustomerStat {
	order, buckets := groupBy(transactions, func(tx domain.Transaction) string { return tx.CustomerID })

	stats := make([]CustomerStat, 0, len(order))
	for _, customer := range order {
		txs := buckets[customer]
		spent := TotalRevenue(txs)

		products := make(map[string]struct{})
		for _, tx := range txs {
			if name := strings.TrimSpace(tx.ProductName); name != "" {
				products[name] = struct{}{}
			}
		}
		bought := make([]string, 0, len(products))
		for name := range products {
			bought = append(bought, name)
		}
		sort.Strings(bought)

		avg := 0.0
		if len(txs) > 0 {
			avg = round2(spent / float64(len(txs)))
		}

		stats = append(stats, CustomerStat{
			CustomerID:     customer,
			TotalSpent:     spent,
			PurchaseCount:  len(txs),
			AvgOrderValue:  avg,
			ProductsBought: bought,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool { return stats[i].TotalSpent > stats[j].TotalSpent })
	return stats
}

// DailyTrend groups transactions by date and computes revenue, transaction
// count and distinct customer count, ordered by date ascending. Dates are
// ISO YYYY-MM-DD strings, so lexicographic order equals chronological.
func DailyTrend(transactions []domain.Transaction) []DailyStat {
	order, buckets := groupBy(transactions, func(tx domain.Transaction) string { return tx.Date })

	trend := make([]DailyStat, 0, len(order))
	for _, date := range order {
		txs := buckets[date]

		customers := make(map[string]struct{})
		for _, tx := range txs {
			if id := strings.TrimSpace(tx.CustomerID); id != "" {
				customers[id] = struct{}{}
			}
		}

		trend = append(trend, DailyStat{
			Date:            date,
			Revenue:         TotalRevenue(txs),
			Count:           len(txs),
			UniqueCustomers: len(customers),
		})
	}

	sort.SliceStable(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })
	return trend
}

// FindPeakDay returns the date with maximum revenue from the daily trend.
// Ties go to the earliest date; an empty input yields the zero sentinel.
func FindPeakDay(transactions []domain.Transaction) PeakDay {
	var peak PeakDay
	for _, day := range DailyTrend(transactions) {
		if peak.Date == "" || day.Revenue > peak.Revenue {
			peak = PeakDay{Date: day.Date, Revenue: day.Revenue, Count: day.Count}
		}
	}
	return peak
}

// RegionAverages computes the average transaction value per region, sorted
// descending by average.
func RegionAverages(transactions []domain.Transaction) []RegionAverage {
	stats := RegionStats(transactions)
	averages := make([]RegionAverage, 0, len(stats))
	for _, stat := range stats {
		avg := 0.0
		if stat.Count > 0 {
			avg = round2(stat.TotalSales / float64(stat.Count))
		}
		averages = append(averages, RegionAverage{Region: stat.Region, Average: avg})
	}
	sort.SliceStable(averages, func(i, j int) bool { return averages[i].Average > averages[j].Average })
	return averages
}

// TopProductByRevenue returns the product with the highest total revenue.
func TopProductByRevenue(transactions []domain.Transaction) (RevenueLeader, bool) {
	return leaderBy(transactions, func(tx domain.Transaction) string { return tx.ProductName })
}

// TopRegionByRevenue returns the region with the highest total revenue.
func TopRegionByRevenue(transactions []domain.Transaction) (RevenueLeader, bool) {
	return leaderBy(transactions, func(tx domain.Transaction) string { return tx.Region })
}

// TopCustomerByRevenue returns the customer with the highest total revenue.
func TopCustomerByRevenue(transactions []domain.Transaction) (RevenueLeader, bool) {
	return leaderBy(transactions, func(tx domain.Transaction) string { return tx.CustomerID })
}

// productStats aggregates quantity and revenue per product name in
// first-encountered order.
func productStats(transactions []domain.Transaction) []ProductStat {
	order, buckets := groupBy(transactions, func(tx domain.Transaction) string { return tx.ProductName })

	stats := make([]ProductStat, 0, len(order))
	for _, name := range order {
		txs := buckets[name]
		quantity := 0
		for _, tx := range txs {
			quantity += tx.Quantity
		}
		stats = append(stats, ProductStat{
			Name:          name,
			TotalQuantity: quantity,
			TotalRevenue:  TotalRevenue(txs),
		})
	}
	return stats
}

// groupBy buckets transactions by key, preserving first-encountered key
// order. Blank keys are skipped.
func groupBy(transactions []domain.Transaction, key func(domain.Transaction) string) ([]string, map[string][]domain.Transaction) {
	var order []string
	buckets := make(map[string][]domain.Transaction)
	for _, tx := range transactions {
		k := strings.TrimSpace(key(tx))
		if k == "" {
			continue
		}
		if _, ok := buckets[k]; !ok {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], tx)
	}
	return order, buckets
}

// leaderBy finds the group key with maximum revenue, ties broken by
// first-encountered order.
func leaderBy(transactions []domain.Transaction, key func(domain.Transaction) string) (RevenueLeader, bool) {
	order, buckets := groupBy(transactions, key)
	if len(order) == 0 {
		return RevenueLeader{}, false
	}

	leader := RevenueLeader{Key: order[0], Revenue: TotalRevenue(buckets[order[0]])}
	for _, k := range order[1:] {
		if revenue := TotalRevenue(buckets[k]); revenue > leader.Revenue {
			leader = RevenueLeader{Key: k, Revenue: revenue}
		}
	}
	return leader, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
