package handler

import (
	"time"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

type createUserRequest struct {
	Name     string  `json:"name"      validate:"required"`
	Email    string  `json:"email"     validate:"required,email"`
	Role     *string `json:"role"      validate:"omitempty,oneof=admin user guest"`
	IsActive *bool   `json:"is_active"`
}

// updateUserRequest uses pointer fields: presence, not falsiness, decides
// which fields change.
type updateUserRequest struct {
	ID       int64   `json:"id"        validate:"required,gt=0"`
	Name     *string `json:"name"      validate:"omitempty,min=1"`
	Email    *string `json:"email"     validate:"omitempty,email"`
	Role     *string `json:"role"      validate:"omitempty,oneof=admin user guest"`
	IsActive *bool   `json:"is_active"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func newUserListResponse(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, newUserResponse(&users[i]))
	}
	return out
}

func userRole(s *string) *domain.UserRole {
	if s == nil {
		return nil
	}
	r := domain.UserRole(*s)
	return &r
}
