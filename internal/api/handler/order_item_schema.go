package handler

import (
	"time"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

type createOrderItemRequest struct {
	OrderID   int64    `json:"order_id"   validate:"required,gt=0"`
	ProductID int64    `json:"product_id" validate:"required,gt=0"`
	Quantity  int      `json:"quantity"   validate:"required,gt=0"`
	UnitPrice float64  `json:"unit_price" validate:"required,gt=0"`
	Subtotal  *float64 `json:"subtotal"   validate:"required,gte=0"`
}

type updateOrderItemRequest struct {
	ID        int64    `json:"id"         validate:"required,gt=0"`
	OrderID   *int64   `json:"order_id"   validate:"omitempty,gt=0"`
	ProductID *int64   `json:"product_id" validate:"omitempty,gt=0"`
	Quantity  *int     `json:"quantity"   validate:"omitempty,gt=0"`
	UnitPrice *float64 `json:"unit_price" validate:"omitempty,gt=0"`
	Subtotal  *float64 `json:"subtotal"   validate:"omitempty,gte=0"`
}

type orderItemResponse struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Subtotal  float64   `json:"subtotal"`
	CreatedAt time.Time `json:"created_at"`
}

func newOrderItemResponse(it *domain.OrderItem) orderItemResponse {
	return orderItemResponse{
		ID:        it.ID,
		OrderID:   it.OrderID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice.InexactFloat64(),
		Subtotal:  it.Subtotal.InexactFloat64(),
		CreatedAt: it.CreatedAt,
	}
}

func newOrderItemListResponse(items []domain.OrderItem) []orderItemResponse {
	out := make([]orderItemResponse, 0, len(items))
	for i := range items {
		out = append(out, newOrderItemResponse(&items[i]))
	}
	return out
}
