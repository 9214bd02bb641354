package domain

// ProductMeta is the externally sourced metadata for one catalog product,
// keyed by the numeric product id.
type ProductMeta struct {
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Rating   float64 `json:"rating"`
}

// ProductCatalog maps a positive numeric product id to its metadata. This is
// the only contract between the enrichment adapter and whatever fetched the
// data; a missing id is a normal miss, not an error.
type ProductCatalog map[int]ProductMeta

// EnrichedTransaction is a Transaction augmented with catalog metadata.
// When Matched is false the three metadata fields are zero and must be
// rendered as absent, never as stale values.
type EnrichedTransaction struct {
	Transaction
	Category string  `json:"api_category,omitempty"`
	Brand    string  `json:"api_brand,omitempty"`
	Rating   float64 `json:"api_rating,omitempty"`
	Matched  bool    `json:"api_match"`
}

// EnrichedFieldNames is the column order for the enriched data file: the
// input columns plus the four API columns.
var EnrichedFieldNames = append(append([]string{}, FieldNames...),
	"API_Category", "API_Brand", "API_Rating", "API_Match")
