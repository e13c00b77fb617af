package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

// CreateOrderItemInput carries the data needed to create an order item.
// OrderID and ProductID must each reference an existing row.
type CreateOrderItemInput struct {
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// UpdateOrderItemInput applies a partial update: only non-nil fields change.
// Non-nil OrderID/ProductID are re-checked against their tables.
type UpdateOrderItemInput struct {
	ID        int64
	OrderID   *int64
	ProductID *int64
	Quantity  *int
	UnitPrice *decimal.Decimal
	Subtotal  *decimal.Decimal
}

// OrderItemService defines use-case operations for order items.
type OrderItemService interface {
	Create(ctx context.Context, input CreateOrderItemInput) (*domain.OrderItem, error)
	GetAll(ctx context.Context) ([]domain.OrderItem, error)
	GetByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	GetByID(ctx context.Context, id int64) (*domain.OrderItem, error)
	Update(ctx context.Context, input UpdateOrderItemInput) (*domain.OrderItem, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
