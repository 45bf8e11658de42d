package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jcmexdev/storefront-client/internal/coordinator"
	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
	"github.com/jcmexdev/storefront-client/internal/storefront/core/ports"
)

// Checkout submits the purchase. Preconditions (authenticated user,
// non-empty cart, selected shipping) are re-verified here even though the
// view router gated entry; if any is missing nothing is submitted.
//
// Order submission is the commit point: its failure leaves cart, shipping
// selection and view untouched so the user can retry. Once it succeeds the
// purchase is final — the cart clear runs as best-effort cleanup, the new
// order is prepended to local history, transient state resets and the view
// moves to orders.
func (a *App) Checkout(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "checkout")
	defer span.End()

	a.mu.RLock()
	userID := a.userID
	cart := a.cart
	selected := a.selected
	paymentMethod := a.paymentMethod
	a.mu.RUnlock()

	if userID == "" || cart.IsEmpty() || selected == nil {
		return ErrCheckoutNotReady
	}

	items := make([]entity.OrderItem, len(cart.Items))
	for i, it := range cart.Items {
		items[i] = entity.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}

	sub := ports.OrderSubmission{
		UserID:        userID,
		PaymentMethod: paymentMethod,
		Items:         items,
		Shipping:      *selected,
		Total:         cart.Total.Add(selected.Price),
		Status:        entity.OrderStatusPending,
	}

	payload, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("checkout: encode submission: %w", err)
	}

	submit := coordinator.NewSubmitOrderStep(a.svcs.Checkout, sub)
	run := coordinator.NewOrchestrator(
		uuid.NewString(),
		string(payload),
		[]coordinator.Step{submit},
		[]coordinator.CleanupStep{coordinator.NewClearCartStep(a)},
		a.logRepo,
	)

	if err := run.Start(ctx); err != nil {
		a.setError("payment failed, please try again")
		return fmt.Errorf("checkout: %w", err)
	}

	order := submit.Order()

	a.mu.Lock()
	if order != nil {
		// Most-recent-first; history entries are never edited or removed.
		a.orders = append([]entity.Order{*order}, a.orders...)
	}
	a.selected = nil
	a.options = nil
	a.postalCode = ""
	a.paymentMethod = ""
	a.errMsg = ""
	a.view = entity.ViewOrders
	a.mu.Unlock()

	if order != nil {
		slog.InfoContext(ctx, "purchase completed",
			"user_id", userID, "order_id", order.ID, "total", sub.Total)
	}
	return nil
}
