package handler

import (
	"time"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

type createCategoryRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type updateCategoryRequest struct {
	ID          int64   `json:"id"          validate:"required,gt=0"`
	Name        *string `json:"name"        validate:"omitempty,min=1"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type categoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func newCategoryListResponse(categories []domain.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, newCategoryResponse(&categories[i]))
	}
	return out
}
