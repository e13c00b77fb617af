package ports

import (
	"context"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

// OrderItemRepository defines persistence operations for order items.
type OrderItemRepository interface {
	Create(ctx context.Context, it *domain.OrderItem) error
	FindAll(ctx context.Context) ([]domain.OrderItem, error)
	// FindByOrderID returns the items of one order, in insertion order.
	FindByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	// FindByID returns domain.ErrOrderItemNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.OrderItem, error)
	Update(ctx context.Context, it *domain.OrderItem) error
	Delete(ctx context.Context, id int64) (bool, error)
}
