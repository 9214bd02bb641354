package enrichment

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"salescli/pkg/contracts/domain"
)

// Summary reports enrichment coverage for a run.
type Summary struct {
	Matched      int      `json:"matched"`
	Unmatched    int      `json:"unmatched"`
	SuccessRate  float64  `json:"success_rate"`
	UnmatchedIDs []string `json:"unmatched_product_ids"`
}

// ExtractProductNumber strips a leading 'P' or 'p' from a product id and
// parses the remaining numeric suffix. ok is false when the suffix is
// absent, non-numeric, or not positive.
func ExtractProductNumber(productID string) (int, bool) {
	s := strings.TrimSpace(productID)
	if len(s) > 0 && (s[0] == 'P' || s[0] == 'p') {
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Enrich maps one transaction against the catalog. On a miss the metadata
// fields stay zero and Matched is false; stale or partial data is never
// carried over.
func Enrich(tx domain.Transaction, catalog domain.ProductCatalog) domain.EnrichedTransaction {
	enriched := domain.EnrichedTransaction{Transaction: tx}

	id, ok := ExtractProductNumber(tx.ProductID)
	if !ok {
		return enriched
	}
	meta, ok := catalog[id]
	if !ok {
		return enriched
	}

	enriched.Category = meta.Category
	enriched.Brand = meta.Brand
	enriched.Rating = meta.Rating
	enriched.Matched = true
	return enriched
}

// EnrichAll maps every transaction against the catalog and reports coverage.
// A nil catalog (provider failure) yields all transactions unmatched.
func EnrichAll(transactions []domain.Transaction, catalog domain.ProductCatalog) ([]domain.EnrichedTransaction, Summary) {
	enriched := make([]domain.EnrichedTransaction, 0, len(transactions))
	missed := make(map[string]struct{})

	var summary Summary
	for _, tx := range transactions {
		e := Enrich(tx, catalog)
		enriched = append(enriched, e)
		if e.Matched {
			summary.Matched++
		} else {
			summary.Unmatched++
			missed[tx.ProductID] = struct{}{}
		}
	}

	summary.UnmatchedIDs = make([]string, 0, len(missed))
	for id := range missed {
		summary.UnmatchedIDs = append(summary.UnmatchedIDs, id)
	}
	sort.Strings(summary.UnmatchedIDs)

	if total := summary.Matched + summary.Unmatched; total > 0 {
		summary.SuccessRate = math.Round(float64(summary.Matched)/float64(total)*10000) / 100
	}
	return enriched, summary
}

// UniqueProductNumbers extracts the distinct numeric product ids from the
// transaction set, ascending. Ids without a numeric suffix are skipped.
func UniqueProductNumbers(transactions []domain.Transaction) []int {
	seen := make(map[int]struct{})
	var ids []int
	for _, tx := range transactions {
		if id, ok := ExtractProductNumber(tx.ProductID); ok {
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	sort.Ints(ids)
	return ids
}
