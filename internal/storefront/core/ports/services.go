// Package ports defines the collaborator contracts the orchestration core
// consumes. The core depends on these abstractions, not on HTTP directly,
// so adapters can be swapped for stubs in tests.
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
)

// CatalogService is the read-only product listing collaborator.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
}

// UpsertItem is the payload for adding or updating one cart line. Quantity
// is the desired absolute quantity, not a delta.
type UpsertItem struct {
	ProductID int64
	Name      string
	Price     decimal.Decimal
	Quantity  int
	ImageURL  string
}

// CartService mutates the server-authoritative cart. Every mutation returns
// the full updated cart; the caller replaces its local snapshot with it.
type CartService interface {
	Get(ctx context.Context, userID string) (*entity.Cart, error)
	UpsertItem(ctx context.Context, userID string, item UpsertItem) (*entity.Cart, error)
	RemoveItem(ctx context.Context, userID string, productID int64) (*entity.Cart, error)
	Clear(ctx context.Context, userID string) error
}

// ShippingService quotes delivery options for a normalized postal code.
// Returns ErrNotFound when no options exist for the location.
type ShippingService interface {
	Calculate(ctx context.Context, postalCode string) ([]entity.ShippingOption, error)
}

// OrderSubmission is the payload for the payment/order service.
type OrderSubmission struct {
	UserID        string
	PaymentMethod string
	Items         []entity.OrderItem
	Shipping      entity.ShippingOption
	Total         decimal.Decimal
	Status        entity.OrderStatus
}

// CheckoutService submits orders for payment and lists past orders.
type CheckoutService interface {
	SubmitOrder(ctx context.Context, sub OrderSubmission) (*entity.Order, error)
	ListOrders(ctx context.Context, userID string) ([]entity.Order, error)
}

// RecommendationService suggests products for a user. Failures are treated
// as soft by the core: an empty list is always an acceptable substitute.
type RecommendationService interface {
	ListForUser(ctx context.Context, userID string) ([]entity.Product, error)
}
