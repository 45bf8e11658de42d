package entity

import "github.com/shopspring/decimal"

// CartItem is a line in a user's cart. Name, Price and ImageURL are
// denormalized snapshots taken at add-time, not live catalog values.
type CartItem struct {
	ID        int64
	UserID    string
	ProductID int64
	Name      string
	Price     decimal.Decimal
	Quantity  int
	ImageURL  string
}

// Cart mirrors the server-authoritative cart for one user. Total is the
// value last reported by the cart service; the client never recomputes it.
type Cart struct {
	UserID string
	Items  []CartItem
	Total  decimal.Decimal
}

// EmptyCart is the synthetic cart substituted when the service reports no
// cart for the user, or after a local post-checkout clear.
func EmptyCart(userID string) *Cart {
	return &Cart{UserID: userID, Items: nil, Total: decimal.Zero}
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// Find returns the item for the given product ID, or nil.
func (c *Cart) Find(productID int64) *CartItem {
	if c == nil {
		return nil
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}
