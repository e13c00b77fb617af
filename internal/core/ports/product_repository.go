package ports

import (
	"context"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindAll(ctx context.Context) ([]domain.Product, error)
	// FindByID returns domain.ErrProductNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id int64) (bool, error)
}
