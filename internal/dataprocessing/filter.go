package dataprocessing

import (
	"sort"
	"strings"

	"salescli/pkg/contracts/domain"
)

// FilterOptions narrows the valid transaction set. A nil bound leaves that
// side of the amount range open; an empty region disables the region filter.
type FilterOptions struct {
	Region    string
	MinAmount *float64
	MaxAmount *float64
}

// FilterSummary records how many transactions each filter removed and how
// many remain. Removed counts are relative to the set size immediately
// before the respective filter.
type FilterSummary struct {
	TotalInput       int `json:"total_input"`
	Invalid          int `json:"invalid"`
	FilteredByRegion int `json:"filtered_by_region"`
	FilteredByAmount int `json:"filtered_by_amount"`
	FinalCount       int `json:"final_count"`
}

// ApplyFilters narrows transactions by region first, then by amount range
// (inclusive bounds on Quantity x UnitPrice). invalidCount is carried into
// the summary for presentation; it does not affect filtering.
func ApplyFilters(transactions []domain.Transaction, invalidCount int, opts FilterOptions) ([]domain.Transaction, FilterSummary) {
	summary := FilterSummary{
		TotalInput: len(transactions),
		Invalid:    invalidCount,
	}

	narrowed := transactions
	if region := strings.TrimSpace(opts.Region); region != "" {
		kept := make([]domain.Transaction, 0, len(narrowed))
		for _, tx := range narrowed {
			if tx.Region == region {
				kept = append(kept, tx)
			}
		}
		summary.FilteredByRegion = len(narrowed) - len(kept)
		narrowed = kept
	}

	if opts.MinAmount != nil || opts.MaxAmount != nil {
		kept := make([]domain.Transaction, 0, len(narrowed))
		for _, tx := range narrowed {
			amount := tx.Amount()
			if opts.MinAmount != nil && amount < *opts.MinAmount {
				continue
			}
			if opts.MaxAmount != nil && amount > *opts.MaxAmount {
				continue
			}
			kept = append(kept, tx)
		}
		summary.FilteredByAmount = len(narrowed) - len(kept)
		narrowed = kept
	}

	summary.FinalCount = len(narrowed)
	return narrowed, summary
}

// AvailableRegions returns the distinct regions present in the transaction
// set, sorted lexicographically.
func AvailableRegions(transactions []domain.Transaction) []string {
	seen := make(map[string]struct{})
	var regions []string
	for _, tx := range transactions {
		region := strings.TrimSpace(tx.Region)
		if region == "" {
			continue
		}
		if _, ok := seen[region]; !ok {
			seen[region] = struct{}{}
			regions = append(regions, region)
		}
	}
	sort.Strings(regions)
	return regions
}

// AmountRange returns the minimum and maximum transaction amount across the
// set. ok is false for an empty input.
func AmountRange(transactions []domain.Transaction) (min, max float64, ok bool) {
	if len(transactions) == 0 {
		return 0, 0, false
	}
	min = transactions[0].Amount()
	max = min
	for _, tx := range transactions[1:] {
		amount := tx.Amount()
		if amount < min {
			min = amount
		}
		if amount > max {
			max = amount
		}
	}
	return min, max, true
}
