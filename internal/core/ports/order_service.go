package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

// CreateOrderInput carries the data needed to create an order. UserID must
// reference an existing user. Status defaults to "pending" when nil.
type CreateOrderInput struct {
	UserID      int64
	Status      *domain.OrderStatus
	TotalAmount decimal.Decimal
	Notes       *string
}

// UpdateOrderInput applies a partial update: only non-nil fields change.
// A non-nil UserID is re-checked against the users table before the write.
type UpdateOrderInput struct {
	ID          int64
	UserID      *int64
	Status      *domain.OrderStatus
	TotalAmount *decimal.Decimal
	Notes       *string
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	GetAll(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Update(ctx context.Context, input UpdateOrderInput) (*domain.Order, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
