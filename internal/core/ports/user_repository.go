package ports

import (
	"context"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a new row and assigns the generated identity key.
	Create(ctx context.Context, u *domain.User) error
	// FindAll returns every user in insertion order.
	FindAll(ctx context.Context) ([]domain.User, error)
	// FindByID returns domain.ErrUserNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
