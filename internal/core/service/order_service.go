package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/appdotbuilder/commerce-admin/internal/core/domain"
	"github.com/appdotbuilder/commerce-admin/internal/core/ports"
)

type OrderService struct {
	repo   ports.OrderRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, users ports.UserRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, users: users, logger: logger}
}

func (s *OrderService) checkUser(ctx context.Context, id int64) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("%w: user %d", domain.ErrInvalidReference, id)
		}
		return err
	}
	return nil
}

// Create inserts a new order, status "pending" by default. The referenced
// user must exist; the check runs before the insert.
func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	if err := s.checkUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := &domain.Order{
		UserID:      input.UserID,
		Status:      domain.StatusPending,
		TotalAmount: input.TotalAmount,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Status != nil {
		o.Status = *input.Status
	}

	if err := s.repo.Create(ctx, o); err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().Int64("order_id", o.ID).Int64("user_id", o.UserID).Str("total_amount", o.TotalAmount.String()).Msg("order created")
	return o, nil
}

func (s *OrderService) GetAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx)
}

func (s *OrderService) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) Update(ctx context.Context, input ports.UpdateOrderInput) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.UserID != nil {
		if err := s.checkUser(ctx, *input.UserID); err != nil {
			return nil, err
		}
		o.UserID = *input.UserID
	}
	if input.Status != nil {
		o.Status = *input.Status
	}
	if input.TotalAmount != nil {
		o.TotalAmount = *input.TotalAmount
	}
	if input.Notes != nil {
		o.Notes = input.Notes
	}
	o.UpdatedAt = nextUpdateTime(o.UpdatedAt)

	if err := s.repo.Update(ctx, o); err != nil {
		s.logger.Error().Err(err).Int64("order_id", o.ID).Msg("failed to update order")
		return nil, err
	}
	return o, nil
}

// Delete removes the order if present. Its items are left in place; there is
// no cascading delete.
func (s *OrderService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to delete order")
		return false, err
	}
	if deleted {
		s.logger.Info().Int64("order_id", id).Msg("order deleted")
	}
	return deleted, nil
}
