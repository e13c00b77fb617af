package ports

import (
	"context"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindAll(ctx context.Context) ([]domain.Order, error)
	// FindByID returns domain.ErrOrderNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	Delete(ctx context.Context, id int64) (bool, error)
}
