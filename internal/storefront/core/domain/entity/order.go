package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is a frozen copy of a cart line at submission time.
type OrderItem struct {
	ProductID int64
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

// Order is a completed purchase as returned by the order service.
// Immutable once created; the client only appends orders to its local
// history, never edits them.
type Order struct {
	ID        string
	UserID    string
	Items     []OrderItem
	Shipping  ShippingOption
	Total     decimal.Decimal
	Status    OrderStatus
	Message   string
	CreatedAt time.Time
}

type OrderStatus string

// Status values assigned by the order service.
const (
	OrderStatusPending    OrderStatus = "Pendente"
	OrderStatusProcessing OrderStatus = "Processando"
	OrderStatusApproved   OrderStatus = "Aprovado"
	OrderStatusRejected   OrderStatus = "Rejeitado"
	OrderStatusShipped    OrderStatus = "Enviado"
)
