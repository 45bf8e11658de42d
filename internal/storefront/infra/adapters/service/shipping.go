package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
)

// ShippingHTTP implements ports.ShippingService. A 404 from the service
// means no delivery options exist for the location and surfaces as
// ports.ErrNotFound via the base client's status classification.
type ShippingHTTP struct {
	c *Client
}

func NewShippingHTTP(c *Client) *ShippingHTTP {
	return &ShippingHTTP{c: c}
}

func (a *ShippingHTTP) Calculate(ctx context.Context, postalCode string) ([]entity.ShippingOption, error) {
	body := quoteRequestDTO{PostalCode: postalCode}
	var dto quoteResponseDTO
	if err := a.c.doJSON(ctx, http.MethodPost, "/frete/calcular", body, &dto); err != nil {
		return nil, fmt.Errorf("calculate shipping: %w", err)
	}
	return toShippingOptions(dto.Options), nil
}
