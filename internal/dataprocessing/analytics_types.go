package dataprocessing

// RegionStat holds per-region revenue aggregates.
type RegionStat struct {
	Region     string  `json:"region"`
	TotalSales float64 `json:"total_sales"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ProductStat holds per-product quantity and revenue aggregates.
type ProductStat struct {
	Name          string  `json:"name"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// CustomerStat holds per-customer purchase aggregates. ProductsBought is
// the sorted list of distinct product names the customer purchased.
type CustomerStat struct {
	CustomerID     string   `json:"customer_id"`
	TotalSpent     float64  `json:"total_spent"`
	PurchaseCount  int      `json:"purchase_count"`
	AvgOrderValue  float64  `json:"avg_order_value"`
	ProductsBought []string `json:"products_bought"`
}

// DailyStat holds per-date revenue aggregates.
type DailyStat struct {
	Date            string  `json:"date"`
	Revenue         float64 `json:"revenue"`
	Count           int     `json:"transaction_count"`
	UniqueCustomers int     `json:"unique_customers"`
}

// PeakDay is the date with maximum revenue. An empty Date is the sentinel
// for an empty input.
type PeakDay struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"transaction_count"`
}

// RegionAverage holds the average transaction value for a region.
type RegionAverage struct {
	Region  string  `json:"region"`
	Average float64 `json:"average"`
}

// RevenueLeader names the top product, region, or customer by revenue.
type RevenueLeader struct {
	Key     string  `json:"key"`
	Revenue float64 `json:"revenue"`
}
