package model

import "github.com/shopspring/decimal"

// Prices leave the service as JSON numbers, not quoted strings.
func init() { decimal.MarshalJSONWithoutQuotes = true }

// Product represents a catalog entry.  Products are loaded once at
// startup and never change for the lifetime of the process.
//
// Fields:
//
//	ID          – unique positive identifier.
//	Name        – display name.
//	Description – free-text description.
//	Price       – non-negative unit price, encoded as a JSON number.
//	Stock       – units available.
//	Category    – free-text label, matched case-insensitively.
type Product struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Stock       uint32          `json:"stock"`
	Category    string          `json:"category"`
}
