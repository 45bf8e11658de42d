package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/storefront-client/internal/storefront/core/domain/entity"
	"github.com/jcmexdev/storefront-client/internal/storefront/core/ports"
)

// Wire DTOs follow the gateway's contract, which keeps the original
// Portuguese field names of the backend services.

type productDTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	ImageURL    string          `json:"imagem_url"`
}

type cartItemDTO struct {
	ID        int64           `json:"id"`
	UserID    string          `json:"user_id"`
	ProductID int64           `json:"produto_id"`
	Name      string          `json:"nome_produto"`
	Price     decimal.Decimal `json:"preco_produto"`
	Quantity  int             `json:"quantidade"`
	ImageURL  string          `json:"imagem_url,omitempty"`
}

type cartDTO struct {
	UserID string          `json:"user_id"`
	Items  []cartItemDTO   `json:"items"`
	Total  decimal.Decimal `json:"valor_total"`
}

type upsertItemDTO struct {
	ProductID int64           `json:"produto_id"`
	Name      string          `json:"nome_produto"`
	Price     decimal.Decimal `json:"preco_produto"`
	Quantity  int             `json:"quantidade"`
	ImageURL  string          `json:"imagem_url,omitempty"`
}

type quoteRequestDTO struct {
	PostalCode string `json:"cep"`
}

type shippingOptionDTO struct {
	Method       string          `json:"metodo"`
	DeliveryDays int             `json:"prazo_dias"`
	Price        decimal.Decimal `json:"valor"`
}

type quoteResponseDTO struct {
	Options []shippingOptionDTO `json:"opcoes"`
}

type orderItemDTO struct {
	ProductID int64           `json:"produto_id"`
	Name      string          `json:"nome"`
	Price     decimal.Decimal `json:"preco"`
	Quantity  int             `json:"quantidade"`
}

type orderSubmissionDTO struct {
	UserID        string            `json:"user_id"`
	PaymentMethod string            `json:"metodo_pagamento"`
	Items         []orderItemDTO    `json:"itens"`
	Shipping      shippingOptionDTO `json:"frete"`
	Total         decimal.Decimal   `json:"valor_total"`
	Status        string            `json:"status"`
}

type orderDTO struct {
	ID        string            `json:"id_pedido"`
	UserID    string            `json:"user_id"`
	Items     []orderItemDTO    `json:"itens"`
	Shipping  shippingOptionDTO `json:"frete"`
	Total     decimal.Decimal   `json:"valor_total"`
	Status    string            `json:"status"`
	Message   string            `json:"mensagem"`
	CreatedAt time.Time         `json:"criado_em"`
}

type recommendationDTO struct {
	ProductID int64           `json:"produto_id"`
	Name      string          `json:"nome"`
	Price     decimal.Decimal `json:"preco"`
	ImageURL  string          `json:"imagem_url,omitempty"`
	Reason    string          `json:"motivo,omitempty"`
}

type recommendationsResponseDTO struct {
	UserID          string              `json:"user_id"`
	Recommendations []recommendationDTO `json:"recomendacoes"`
}

// --- mappers ---

func toProduct(d productDTO) entity.Product {
	return entity.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		ImageURL:    d.ImageURL,
	}
}

func toProducts(dtos []productDTO) []entity.Product {
	out := make([]entity.Product, len(dtos))
	for i, d := range dtos {
		out[i] = toProduct(d)
	}
	return out
}

func toCart(d cartDTO) *entity.Cart {
	items := make([]entity.CartItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = entity.CartItem{
			ID:        it.ID,
			UserID:    it.UserID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			ImageURL:  it.ImageURL,
		}
	}
	return &entity.Cart{UserID: d.UserID, Items: items, Total: d.Total}
}

func toShippingOptions(dtos []shippingOptionDTO) []entity.ShippingOption {
	out := make([]entity.ShippingOption, len(dtos))
	for i, d := range dtos {
		out[i] = entity.ShippingOption{
			Method:       d.Method,
			DeliveryDays: d.DeliveryDays,
			Price:        d.Price,
		}
	}
	return out
}

func toShippingOptionDTO(o entity.ShippingOption) shippingOptionDTO {
	return shippingOptionDTO{
		Method:       o.Method,
		DeliveryDays: o.DeliveryDays,
		Price:        o.Price,
	}
}

func toOrderItemDTOs(items []entity.OrderItem) []orderItemDTO {
	out := make([]orderItemDTO, len(items))
	for i, it := range items {
		out[i] = orderItemDTO{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}
	return out
}

func toOrder(d orderDTO) *entity.Order {
	items := make([]entity.OrderItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = entity.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}
	return &entity.Order{
		ID:     d.ID,
		UserID: d.UserID,
		Items:  items,
		Shipping: entity.ShippingOption{
			Method:       d.Shipping.Method,
			DeliveryDays: d.Shipping.DeliveryDays,
			Price:        d.Shipping.Price,
		},
		Total:     d.Total,
		Status:    entity.OrderStatus(d.Status),
		Message:   d.Message,
		CreatedAt: d.CreatedAt,
	}
}

func toSubmissionDTO(sub ports.OrderSubmission) orderSubmissionDTO {
	return orderSubmissionDTO{
		UserID:        sub.UserID,
		PaymentMethod: sub.PaymentMethod,
		Items:         toOrderItemDTOs(sub.Items),
		Shipping:      toShippingOptionDTO(sub.Shipping),
		Total:         sub.Total,
		Status:        string(sub.Status),
	}
}
