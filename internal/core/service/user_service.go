package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
	"github.com/appdotbuilder/commerce-admin/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create inserts a new user with defaults applied: role "user", active.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	now := time.Now().UTC()
	u := &domain.User{
		Name:      input.Name,
		Email:     input.Email,
		Role:      domain.RoleUser,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Role != nil {
		u.Role = *input.Role
	}
	if input.IsActive != nil {
		u.IsActive = *input.IsActive
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Int64("user_id", u.ID).Str("email", u.Email).Msg("user created")
	return u, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// GetByID returns (nil, nil) when no user matches; absence is not an error
// on a read path.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// Update applies only the fields present in input and refreshes updated_at.
// A missing target fails with domain.ErrUserNotFound.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	u, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		u.Name = *input.Name
	}
	if input.Email != nil {
		u.Email = *input.Email
	}
	if input.Role != nil {
		u.Role = *input.Role
	}
	if input.IsActive != nil {
		u.IsActive = *input.IsActive
	}
	u.UpdatedAt = nextUpdateTime(u.UpdatedAt)

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error().Err(err).Int64("user_id", u.ID).Msg("failed to update user")
		return nil, err
	}
	return u, nil
}

// Delete removes the user if present and reports whether a row was removed.
// A missing target is a success=false outcome, never an error.
func (s *UserService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to delete user")
		return false, err
	}
	if deleted {
		s.logger.Info().Int64("user_id", id).Msg("user deleted")
	}
	return deleted, nil
}
