package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jcmexdev/storefront-client/internal/pkg/cache"
	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
)

// CatalogHTTP implements ports.CatalogService. The listing changes rarely,
// so responses go through a cache-aside layer when a cache is configured.
type CatalogHTTP struct {
	c     *Client
	cache cache.Cache // nil disables caching
	ttl   time.Duration
}

func NewCatalogHTTP(c *Client, cch cache.Cache, ttl time.Duration) *CatalogHTTP {
	return &CatalogHTTP{c: c, cache: cch, ttl: ttl}
}

func (a *CatalogHTTP) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var key string
	if a.cache != nil {
		key = a.cache.GenerateKey("catalog", "list")
		if data, err := a.cache.Get(ctx, key); err == nil {
			var dtos []productDTO
			if err := json.Unmarshal(data, &dtos); err == nil {
				return toProducts(dtos), nil
			}
			slog.WarnContext(ctx, "discarding corrupt catalog cache entry", "key", key, "error", err)
		} else if !errors.Is(err, cache.ErrMiss) {
			// Cache trouble is a soft failure; fall through to the service.
			slog.WarnContext(ctx, "catalog cache read failed", "error", err)
		}
	}

	var dtos []productDTO
	if err := a.c.doJSON(ctx, http.MethodGet, "/catalogo/produtos/", nil, &dtos); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if a.cache != nil {
		if data, err := json.Marshal(dtos); err == nil {
			if err := a.cache.Set(ctx, key, data, a.ttl); err != nil {
				slog.WarnContext(ctx, "catalog cache write failed", "error", err)
			}
		}
	}

	return toProducts(dtos), nil
}
