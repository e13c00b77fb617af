package ports

import (
	"context"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

// CreateCategoryInput carries the data needed to create a category.
// IsActive defaults to true when nil.
type CreateCategoryInput struct {
	Name        string
	Description *string
	IsActive    *bool
}

// UpdateCategoryInput applies a partial update: only non-nil fields change.
type UpdateCategoryInput struct {
	ID          int64
	Name        *string
	Description *string
	IsActive    *bool
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Update(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
