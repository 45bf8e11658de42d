package coordinator

import (
	"context"
	"fmt"

	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
	"github.com/jcmexdev/storefront-client/internal/storefront/core/ports"
)

// --- SubmitOrderStep ---

// SubmitOrderStep sends the order submission to the payment/order service.
// This is the commit point of the checkout: once it succeeds the purchase
// is final.
type SubmitOrderStep struct {
	svc   ports.CheckoutService
	sub   ports.OrderSubmission
	order *entity.Order
}

func NewSubmitOrderStep(svc ports.CheckoutService, sub ports.OrderSubmission) *SubmitOrderStep {
	return &SubmitOrderStep{svc: svc, sub: sub}
}

func (s *SubmitOrderStep) Name() string { return "submit_order" }

func (s *SubmitOrderStep) Execute(ctx context.Context) error {
	order, err := s.svc.SubmitOrder(ctx, s.sub)
	if err != nil {
		return fmt.Errorf("submit order: %w", err)
	}
	s.order = order
	return nil
}

// Compensate is empty: nothing was committed before this step, and the
// service assigns no resources on failure.
func (s *SubmitOrderStep) Compensate(ctx context.Context) error {
	return nil
}

// Order returns the order created by Execute, or nil before success.
func (s *SubmitOrderStep) Order() *entity.Order {
	return s.order
}

// --- ClearCartStep ---

// CartClearer is the slice of the cart store the cleanup step needs.
type CartClearer interface {
	ClearCart(ctx context.Context) error
}

// ClearCartStep empties the user's cart after a committed purchase.
// It runs as a cleanup step: its failure never revokes the order.
type ClearCartStep struct {
	carts CartClearer
}

func NewClearCartStep(carts CartClearer) *ClearCartStep {
	return &ClearCartStep{carts: carts}
}

func (s *ClearCartStep) Name() string { return "clear_cart" }

func (s *ClearCartStep) Execute(ctx context.Context) error {
	return s.carts.ClearCart(ctx)
}
