package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
	"github.com/jcmexdev/storefront-client/internal/storefront/core/ports"
)

// CartHTTP implements ports.CartService. Every mutation returns the full
// updated cart as reported by the service.
type CartHTTP struct {
	c *Client
}

func NewCartHTTP(c *Client) *CartHTTP {
	return &CartHTTP{c: c}
}

func (a *CartHTTP) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	var dto cartDTO
	if err := a.c.doJSON(ctx, http.MethodGet, "/carrinho/"+userID, nil, &dto); err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return toCart(dto), nil
}

func (a *CartHTTP) UpsertItem(ctx context.Context, userID string, item ports.UpsertItem) (*entity.Cart, error) {
	body := upsertItemDTO{
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price,
		Quantity:  item.Quantity,
		ImageURL:  item.ImageURL,
	}
	var dto cartDTO
	if err := a.c.doJSON(ctx, http.MethodPost, "/carrinho/"+userID, body, &dto); err != nil {
		return nil, fmt.Errorf("upsert cart item: %w", err)
	}
	return toCart(dto), nil
}

func (a *CartHTTP) RemoveItem(ctx context.Context, userID string, productID int64) (*entity.Cart, error) {
	path := "/carrinho/" + userID + "/" + strconv.FormatInt(productID, 10)
	var dto cartDTO
	if err := a.c.doJSON(ctx, http.MethodDelete, path, nil, &dto); err != nil {
		return nil, fmt.Errorf("remove cart item: %w", err)
	}
	return toCart(dto), nil
}

func (a *CartHTTP) Clear(ctx context.Context, userID string) error {
	if err := a.c.doJSON(ctx, http.MethodDelete, "/carrinho/"+userID+"/limpar", nil, nil); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
