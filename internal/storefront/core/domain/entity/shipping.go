package entity

import "github.com/shopspring/decimal"

// ShippingOption is one priced delivery method returned for a postal-code
// query. Method doubles as the identifier within a quote set.
type ShippingOption struct {
	Method       string
	DeliveryDays int
	Price        decimal.Decimal
}
