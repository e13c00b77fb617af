package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/commerce-admin/internal/api/metrics"
	"github.com/appdotbuilder/commerce-admin/internal/core/ports"
)

// OrderItemHandler exposes the orderItems.* procedures.
type OrderItemHandler struct {
	service ports.OrderItemService
}

func NewOrderItemHandler(service ports.OrderItemService) *OrderItemHandler {
	return &OrderItemHandler{service: service}
}

func (h *OrderItemHandler) Create(c echo.Context) error {
	var req createOrderItemRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	it, err := h.service.Create(c.Request().Context(), ports.CreateOrderItemInput{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: decimal.NewFromFloat(req.UnitPrice),
		Subtotal:  decimal.NewFromFloat(*req.Subtotal),
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("order_item", "create").Inc()
	return c.JSON(http.StatusOK, newOrderItemResponse(it))
}

func (h *OrderItemHandler) GetAll(c echo.Context) error {
	items, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newOrderItemListResponse(items))
}

// GetByOrderID handles orderItems.getByOrderId. An unknown order id yields
// an empty list, not an error.
func (h *OrderItemHandler) GetByOrderID(c echo.Context) error {
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	items, err := h.service.GetByOrderID(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newOrderItemListResponse(items))
}

func (h *OrderItemHandler) GetByID(c echo.Context) error {
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	it, err := h.service.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	if it == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, newOrderItemResponse(it))
}

func (h *OrderItemHandler) Update(c echo.Context) error {
	var req updateOrderItemRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	it, err := h.service.Update(c.Request().Context(), ports.UpdateOrderItemInput{
		ID:        req.ID,
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: amount(req.UnitPrice),
		Subtotal:  amount(req.Subtotal),
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("order_item", "update").Inc()
	return c.JSON(http.StatusOK, newOrderItemResponse(it))
}

func (h *OrderItemHandler) Delete(c echo.Context) error {
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	deleted, err := h.service.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	if deleted {
		metrics.EntityWritesTotal.WithLabelValues("order_item", "delete").Inc()
	}
	return c.JSON(http.StatusOK, deleteResponse{Success: deleted})
}
