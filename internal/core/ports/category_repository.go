package ports

import (
	"context"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	FindAll(ctx context.Context) ([]domain.Category, error)
	// FindByID returns domain.ErrCategoryNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id int64) (bool, error)
}
