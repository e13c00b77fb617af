package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

type createProductRequest struct {
	Name          string   `json:"name"           validate:"required"`
	Description   *string  `json:"description"`
	Price         float64  `json:"price"          validate:"required,gt=0"`
	StockQuantity *int     `json:"stock_quantity" validate:"omitempty,gte=0"`
	CategoryID    *int64   `json:"category_id"    validate:"omitempty,gt=0"`
	IsActive      *bool    `json:"is_active"`
}

type updateProductRequest struct {
	ID            int64    `json:"id"             validate:"required,gt=0"`
	Name          *string  `json:"name"           validate:"omitempty,min=1"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"          validate:"omitempty,gt=0"`
	StockQuantity *int     `json:"stock_quantity" validate:"omitempty,gte=0"`
	CategoryID    *int64   `json:"category_id"    validate:"omitempty,gt=0"`
	IsActive      *bool    `json:"is_active"`
}

// productResponse exposes price as a plain JSON number; the textual storage
// form never crosses the API boundary.
type productResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	CategoryID    *int64    `json:"category_id"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price.InexactFloat64(),
		StockQuantity: p.StockQuantity,
		CategoryID:    p.CategoryID,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func newProductListResponse(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for i := range products {
		out = append(out, newProductResponse(&products[i]))
	}
	return out
}

// amount converts a JSON number into a decimal, and nil into nil.
func amount(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
