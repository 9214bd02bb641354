package domain

// FieldNames is the canonical column order for the pipe-delimited sales file.
var FieldNames = []string{
	"TransactionID", "Date", "ProductID", "ProductName",
	"Quantity", "UnitPrice", "CustomerID", "Region",
}

// FieldCount is the required number of columns in a sales data line.
const FieldCount = 8

// FieldRecord holds the raw string fields of a single parsed line, before
// validation and numeric conversion. Trailing whitespace has already been
// trimmed from every field.
type FieldRecord struct {
	TransactionID string `json:"transaction_id"`
	Date          string `json:"date"`
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	Quantity      string `json:"quantity"`
	UnitPrice     string `json:"unit_price"`
	CustomerID    string `json:"customer_id"`
	Region        string `json:"region"`
}

// Fields returns the record values in canonical column order.
func (r FieldRecord) Fields() []string {
	return []string{
		r.TransactionID, r.Date, r.ProductID, r.ProductName,
		r.Quantity, r.UnitPrice, r.CustomerID, r.Region,
	}
}

// Transaction is a validated sales record. Quantity and UnitPrice are
// strictly positive and all identifier fields carry their required prefixes.
// Transactions are immutable once validated; analytics only read them.
type Transaction struct {
	TransactionID string  `json:"transaction_id"`
	Date          string  `json:"date"`
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	CustomerID    string  `json:"customer_id"`
	Region        string  `json:"region"`
}

// Amount returns the transaction value (Quantity x UnitPrice).
func (t Transaction) Amount() float64 {
	return float64(t.Quantity) * t.UnitPrice
}

// InvalidRecord is a rejected record together with the first validation
// failure that caused the rejection. Invalid records never re-enter the
// pipeline.
type InvalidRecord struct {
	FieldRecord
	Error string `json:"error"`
}
