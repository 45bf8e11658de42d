package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
	"github.com/jcmexdev/storefront-client/internal/storefront/core/ports"
)

// AddItem upserts one more unit of the product into the server cart and
// replaces the local snapshot with the service's response. The service is
// the single source of truth for totals and item identifiers; on failure
// the local snapshot stays untouched.
func (a *App) AddItem(ctx context.Context, p entity.Product) error {
	a.mu.RLock()
	userID := a.userID
	quantity := 1
	if item := a.cart.Find(p.ID); item != nil {
		quantity = item.Quantity + 1
	}
	a.mu.RUnlock()

	if userID == "" {
		return ErrNotAuthenticated
	}

	// The desired quantity was computed against the latest completed
	// snapshot. Two overlapping AddItem calls can both read the same base
	// quantity; the upsert contract gives no way to express a delta.
	updated, err := a.svcs.Cart.UpsertItem(ctx, userID, ports.UpsertItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  quantity,
		ImageURL:  p.ImageURL,
	})
	if err != nil {
		a.setError("could not update the cart, please try again")
		return fmt.Errorf("add item: %w", err)
	}

	a.mu.Lock()
	a.setCartLocked(updated)
	a.mu.Unlock()
	return nil
}

// RemoveItem asks the service to drop the product and replaces the local
// snapshot with the response. Removing an absent product is not an error
// locally: the service simply returns the (possibly unchanged) cart.
func (a *App) RemoveItem(ctx context.Context, productID int64) error {
	a.mu.RLock()
	userID := a.userID
	a.mu.RUnlock()

	if userID == "" {
		return ErrNotAuthenticated
	}

	updated, err := a.svcs.Cart.RemoveItem(ctx, userID, productID)
	if err != nil {
		a.setError("could not update the cart, please try again")
		return fmt.Errorf("remove item: %w", err)
	}

	a.mu.Lock()
	a.setCartLocked(updated)
	a.mu.Unlock()
	return nil
}

// ClearCart empties the cart after a completed purchase. The remote call is
// best-effort: whatever its outcome, the local snapshot is forced to a
// synthetic empty cart so the clear appears to have happened. A remote
// failure is only logged, never surfaced; the error return exists for the
// checkout cleanup audit trail.
func (a *App) ClearCart(ctx context.Context) error {
	a.mu.RLock()
	userID := a.userID
	a.mu.RUnlock()

	if userID == "" {
		return ErrNotAuthenticated
	}

	err := a.svcs.Cart.Clear(ctx, userID)
	if err != nil {
		slog.WarnContext(ctx, "remote cart clear failed, forcing local empty cart",
			"user_id", userID, "error", err)
	}

	a.mu.Lock()
	a.setCartLocked(entity.EmptyCart(userID))
	a.mu.Unlock()
	return err
}
