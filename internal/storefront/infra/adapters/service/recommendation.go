package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
)

// RecommendationHTTP implements ports.RecommendationService.
type RecommendationHTTP struct {
	c *Client
}

func NewRecommendationHTTP(c *Client) *RecommendationHTTP {
	return &RecommendationHTTP{c: c}
}

func (a *RecommendationHTTP) ListForUser(ctx context.Context, userID string) ([]entity.Product, error) {
	var dto recommendationsResponseDTO
	if err := a.c.doJSON(ctx, http.MethodGet, "/recomendacao/"+userID, nil, &dto); err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	out := make([]entity.Product, len(dto.Recommendations))
	for i, d := range dto.Recommendations {
		out[i] = entity.Product{
			ID:       d.ProductID,
			Name:     d.Name,
			Price:    d.Price,
			ImageURL: d.ImageURL,
		}
	}
	return out, nil
}
