package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
)

// bootstrap issues the four session fetches concurrently and waits for all
// of them to settle. Each resource has its own loading flag and its own
// resolution policy; the failure of one never cancels or rolls back the
// others, and completion order does not affect the final state.
//
// Policy per resource:
//   - catalog: hard failure, surfaces a user-visible error
//   - cart: absent or failed substitutes a synthetic empty cart
//   - recommendations, orders: soft failure, substitutes an empty list
func (a *App) bootstrap(ctx context.Context, userID string) {
	ctx, span := tracer.Start(ctx, "bootstrap")
	defer span.End()

	a.mu.Lock()
	a.loading.Catalog = true
	a.loading.Cart = true
	a.loading.Recommendations = true
	a.loading.Orders = true
	a.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		products, err := a.svcs.Catalog.ListProducts(ctx)

		a.mu.Lock()
		defer a.mu.Unlock()
		a.loading.Catalog = false
		if err != nil {
			slog.ErrorContext(ctx, "catalog fetch failed", "error", err)
			a.errMsg = "could not load the catalog, please try again"
			a.products = nil
			return
		}
		a.products = products
	}()

	go func() {
		defer wg.Done()
		cart, err := a.svcs.Cart.Get(ctx, userID)

		a.mu.Lock()
		defer a.mu.Unlock()
		a.loading.Cart = false
		if err != nil {
			// An absent cart is a valid state for a new user, so this is
			// never surfaced as a hard error.
			slog.WarnContext(ctx, "cart fetch failed, starting empty", "user_id", userID, "error", err)
			a.setCartLocked(entity.EmptyCart(userID))
			return
		}
		a.setCartLocked(cart)
	}()

	go func() {
		defer wg.Done()
		recs, err := a.svcs.Recommendations.ListForUser(ctx, userID)

		a.mu.Lock()
		defer a.mu.Unlock()
		a.loading.Recommendations = false
		if err != nil {
			slog.WarnContext(ctx, "recommendations fetch failed", "user_id", userID, "error", err)
			a.recs = nil
			return
		}
		a.recs = recs
	}()

	go func() {
		defer wg.Done()
		orders, err := a.svcs.Checkout.ListOrders(ctx, userID)

		a.mu.Lock()
		defer a.mu.Unlock()
		a.loading.Orders = false
		if err != nil {
			slog.WarnContext(ctx, "order history fetch failed", "user_id", userID, "error", err)
			a.orders = nil
			return
		}
		a.orders = orders
	}()

	wg.Wait()
}
