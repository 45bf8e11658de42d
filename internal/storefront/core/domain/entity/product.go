package entity

import "github.com/shopspring/decimal"

// Product is a catalog entry as returned by the catalog service.
// Immutable once fetched; the listing is replaced wholesale on re-fetch.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    string
}
