package handler

import (
	"time"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

type createOrderRequest struct {
	UserID      int64    `json:"user_id"      validate:"required,gt=0"`
	Status      *string  `json:"status"       validate:"omitempty,oneof=pending processing shipped delivered cancelled"`
	TotalAmount *float64 `json:"total_amount" validate:"required,gte=0"`
	Notes       *string  `json:"notes"`
}

type updateOrderRequest struct {
	ID          int64    `json:"id"           validate:"required,gt=0"`
	UserID      *int64   `json:"user_id"      validate:"omitempty,gt=0"`
	Status      *string  `json:"status"       validate:"omitempty,oneof=pending processing shipped delivered cancelled"`
	TotalAmount *float64 `json:"total_amount" validate:"omitempty,gte=0"`
	Notes       *string  `json:"notes"`
}

type orderResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount.InexactFloat64(),
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func newOrderListResponse(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, newOrderResponse(&orders[i]))
	}
	return out
}

func orderStatus(s *string) *domain.OrderStatus {
	if s == nil {
		return nil
	}
	st := domain.OrderStatus(*s)
	return &st
}
