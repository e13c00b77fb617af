package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
	"github.com/appdotbuilder/commerce-admin/internal/core/ports"
)

type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

// Create inserts a new category, active by default.
func (s *CategoryService) Create(ctx context.Context, input ports.CreateCategoryInput) (*domain.Category, error) {
	now := time.Now().UTC()
	c := &domain.Category{
		Name:        input.Name,
		Description: input.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error().Err(err).Msg("failed to create category")
		return nil, err
	}

	s.logger.Info().Int64("category_id", c.ID).Str("name", c.Name).Msg("category created")
	return c, nil
}

func (s *CategoryService) GetAll(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, input ports.UpdateCategoryInput) (*domain.Category, error) {
	c, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Description != nil {
		c.Description = input.Description
	}
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
	}
	c.UpdatedAt = nextUpdateTime(c.UpdatedAt)

	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error().Err(err).Int64("category_id", c.ID).Msg("failed to update category")
		return nil, err
	}
	return c, nil
}

// Delete removes the category if present. Products referencing it are left
// untouched; there is no cascading delete.
func (s *CategoryService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to delete category")
		return false, err
	}
	if deleted {
		s.logger.Info().Int64("category_id", id).Msg("category deleted")
	}
	return deleted, nil
}
