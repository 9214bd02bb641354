package exporter

import (
	"fmt"
	"strconv"
)

// formatPrice formats a unit price without losing precision, so the
// enriched file round-trips to the same transaction values.
func formatPrice(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatRating formats a catalog rating with two decimal places, empty when
// the record is unmatched.
func formatRating(rating float64, matched bool) string {
	if !matched {
		return ""
	}
	return fmt.Sprintf("%.2f", rating)
}

// formatMatch renders the match flag as the literal True/False used in the
// enriched data file.
func formatMatch(matched bool) string {
	if matched {
		return "True"
	}
	return "False"
}
