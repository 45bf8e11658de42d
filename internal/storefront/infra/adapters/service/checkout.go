package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
	"github.com/jcmexdev/storefront-client/internal/storefront/core/ports"
)

// CheckoutHTTP implements ports.CheckoutService against the payment/order
// service.
type CheckoutHTTP struct {
	c *Client
}

func NewCheckoutHTTP(c *Client) *CheckoutHTTP {
	return &CheckoutHTTP{c: c}
}

func (a *CheckoutHTTP) SubmitOrder(ctx context.Context, sub ports.OrderSubmission) (*entity.Order, error) {
	var dto orderDTO
	if err := a.c.doJSON(ctx, http.MethodPost, "/pedido/checkout/", toSubmissionDTO(sub), &dto); err != nil {
		return nil, fmt.Errorf("submit order: %w", err)
	}
	return toOrder(dto), nil
}

func (a *CheckoutHTTP) ListOrders(ctx context.Context, userID string) ([]entity.Order, error) {
	var dtos []orderDTO
	if err := a.c.doJSON(ctx, http.MethodGet, "/pedido/historico/"+userID, nil, &dtos); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	orders := make([]entity.Order, len(dtos))
	for i, d := range dtos {
		orders[i] = *toOrder(d)
	}
	return orders, nil
}
