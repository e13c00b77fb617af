package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

// CreateProductInput carries the data needed to create a product.
// StockQuantity defaults to 0 and IsActive to true when nil. CategoryID, when
// set, must reference an existing category.
type CreateProductInput struct {
	Name          string
	Description   *string
	Price         decimal.Decimal
	StockQuantity *int
	CategoryID    *int64
	IsActive      *bool
}

// UpdateProductInput applies a partial update: only non-nil fields change.
type UpdateProductInput struct {
	ID            int64
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	StockQuantity *int
	CategoryID    *int64
	IsActive      *bool
}

// ProductService defines use-case operations for products.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
