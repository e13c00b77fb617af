package ports

import (
	"context"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

// CreateUserInput carries the data needed to create a user. Role and
// IsActive are optional and default to "user" / true when nil.
type CreateUserInput struct {
	Name     string
	Email    string
	Role     *domain.UserRole
	IsActive *bool
}

// UpdateUserInput applies a partial update: only non-nil fields change.
type UpdateUserInput struct {
	ID       int64
	Name     *string
	Email    *string
	Role     *domain.UserRole
	IsActive *bool
}

// UserService defines use-case operations for users.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	// GetByID returns (nil, nil) when the user does not exist; absence on a
	// read path is not an error.
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	// Delete reports whether a row was removed; a missing target is a
	// success=false outcome, not an error.
	Delete(ctx context.Context, id int64) (bool, error)
}
