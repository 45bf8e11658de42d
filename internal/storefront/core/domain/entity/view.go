package entity

// View is the logical screen currently active. Exactly one at a time;
// not persisted anywhere.
type View string

const (
	ViewLogin           View = "login"
	ViewStore           View = "store"
	ViewRecommendations View = "recommendations"
	ViewOrders          View = "orders"
	ViewCheckout        View = "checkout"
)
