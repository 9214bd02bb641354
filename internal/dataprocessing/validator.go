package dataprocessing

import (
	"fmt"
	"strconv"
	"strings"

	"salescli/pkg/contracts/domain"
)

// ValidationResult splits parsed records into valid transactions and
// invalid records. len(Valid) + len(Invalid) == TotalParsed always holds.
type ValidationResult struct {
	Valid        []domain.Transaction
	Invalid      []domain.InvalidRecord
	TotalParsed  int
	InvalidCount int
}

// StripThousandsSeparator removes locale-style thousands separators from a
// numeric string ("45,000" -> "45000").
func StripThousandsSeparator(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

// ParseNumber converts a numeric string to a float after stripping
// thousands separators.
func ParseNumber(s string) (float64, error) {
	return strconv.ParseFloat(StripThousandsSeparator(strings.TrimSpace(s)), 64)
}

// Validate applies the business rules to each record, in order, reporting
// the first failing rule as the record's error. Rule order: TransactionID
// prefix, CustomerID presence and prefix, ProductID prefix, Region
// presence, Quantity positivity, UnitPrice positivity. Records passing the
// rules but failing the final integer conversion of Quantity are routed to
// invalid with a format-specific reason.
func Validate(records []domain.FieldRecord) ValidationResult {
	result := ValidationResult{TotalParsed: len(records)}

	for _, rec := range records {
		if reason := checkRules(rec); reason != "" {
			result.Invalid = append(result.Invalid, domain.InvalidRecord{FieldRecord: rec, Error: reason})
			continue
		}

		quantity, err := strconv.Atoi(StripThousandsSeparator(rec.Quantity))
		if err != nil {
			result.Invalid = append(result.Invalid, domain.InvalidRecord{
				FieldRecord: rec,
				Error:       "Invalid Quantity format",
			})
			continue
		}

		unitPrice, err := ParseNumber(rec.UnitPrice)
		if err != nil {
			result.Invalid = append(result.Invalid, domain.InvalidRecord{
				FieldRecord: rec,
				Error:       "Invalid UnitPrice format",
			})
			continue
		}

		result.Valid = append(result.Valid, domain.Transaction{
			TransactionID: rec.TransactionID,
			Date:          rec.Date,
			ProductID:     rec.ProductID,
			ProductName:   rec.ProductName,
			Quantity:      quantity,
			UnitPrice:     unitPrice,
			CustomerID:    rec.CustomerID,
			Region:        rec.Region,
		})
	}

	result.InvalidCount = len(result.Invalid)
	return result
}

// checkRules evaluates the business rules in their fixed order and returns
// the first failure, or "" when the record passes. Prefix checks are ASCII
// and case-sensitive.
func checkRules(rec domain.FieldRecord) string {
	if !strings.HasPrefix(rec.TransactionID, "T") {
		return fmt.Sprintf("TransactionID '%s' does not start with 'T'", rec.TransactionID)
	}

	if rec.CustomerID == "" {
		return "Missing CustomerID"
	}
	if !strings.HasPrefix(rec.CustomerID, "C") {
		return fmt.Sprintf("CustomerID '%s' does not start with 'C'", rec.CustomerID)
	}

	if !strings.HasPrefix(rec.ProductID, "P") {
		return fmt.Sprintf("ProductID '%s' does not start with 'P'", rec.ProductID)
	}

	if rec.Region == "" {
		return "Missing Region"
	}

	quantity, err := ParseNumber(rec.Quantity)
	if err != nil {
		return fmt.Sprintf("Invalid Quantity: %s", rec.Quantity)
	}
	if quantity <= 0 {
		return fmt.Sprintf("Quantity (%g) is less than or equal to 0", quantity)
	}

	unitPrice, err := ParseNumber(rec.UnitPrice)
	if err != nil {
		return fmt.Sprintf("Invalid UnitPrice: %s", rec.UnitPrice)
	}
	if unitPrice <= 0 {
		return fmt.Sprintf("UnitPrice (%g) is less than or equal to 0", unitPrice)
	}

	return ""
}
