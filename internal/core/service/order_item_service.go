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

type OrderItemService struct {
	repo     ports.OrderItemRepository
	orders   ports.OrderRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewOrderItemService(repo ports.OrderItemRepository, orders ports.OrderRepository, products ports.ProductRepository, logger zerolog.Logger) *OrderItemService {
	return &OrderItemService{repo: repo, orders: orders, products: products, logger: logger}
}

func (s *OrderItemService) checkOrder(ctx context.Context, id int64) error {
	if _, err := s.orders.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return fmt.Errorf("%w: order %d", domain.ErrInvalidReference, id)
		}
		return err
	}
	return nil
}

func (s *OrderItemService) checkProduct(ctx context.Context, id int64) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return fmt.Errorf("%w: product %d", domain.ErrInvalidReference, id)
		}
		return err
	}
	return nil
}

// Create inserts a new order item. Both the order and the product must
// exist; the checks run before the insert so a dangling line never exists.
func (s *OrderItemService) Create(ctx context.Context, input ports.CreateOrderItemInput) (*domain.OrderItem, error) {
	if err := s.checkOrder(ctx, input.OrderID); err != nil {
		return nil, err
	}
	if err := s.checkProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	it := &domain.OrderItem{
		OrderID:   input.OrderID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		UnitPrice: input.UnitPrice,
		Subtotal:  input.Subtotal,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, it); err != nil {
		s.logger.Error().Err(err).Msg("failed to create order item")
		return nil, err
	}

	s.logger.Info().Int64("order_item_id", it.ID).Int64("order_id", it.OrderID).Msg("order item created")
	return it, nil
}

func (s *OrderItemService) GetAll(ctx context.Context) ([]domain.OrderItem, error) {
	return s.repo.FindAll(ctx)
}

// GetByOrderID lists the items of one order. An unknown order id simply
// yields an empty list.
func (s *OrderItemService) GetByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	return s.repo.FindByOrderID(ctx, orderID)
}

func (s *OrderItemService) GetByID(ctx context.Context, id int64) (*domain.OrderItem, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderItemNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return it, nil
}

func (s *OrderItemService) Update(ctx context.Context, input ports.UpdateOrderItemInput) (*domain.OrderItem, error) {
	it, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.OrderID != nil {
		if err := s.checkOrder(ctx, *input.OrderID); err != nil {
			return nil, err
		}
		it.OrderID = *input.OrderID
	}
	if input.ProductID != nil {
		if err := s.checkProduct(ctx, *input.ProductID); err != nil {
			return nil, err
		}
		it.ProductID = *input.ProductID
	}
	if input.Quantity != nil {
		it.Quantity = *input.Quantity
	}
	if input.UnitPrice != nil {
		it.UnitPrice = *input.UnitPrice
	}
	if input.Subtotal != nil {
		it.Subtotal = *input.Subtotal
	}

	if err := s.repo.Update(ctx, it); err != nil {
		s.logger.Error().Err(err).Int64("order_item_id", it.ID).Msg("failed to update order item")
		return nil, err
	}
	return it, nil
}

func (s *OrderItemService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_item_id", id).Msg("failed to delete order item")
		return false, err
	}
	if deleted {
		s.logger.Info().Int64("order_item_id", id).Msg("order item deleted")
	}
	return deleted, nil
}
