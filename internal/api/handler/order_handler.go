package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/commerce-admin/internal/api/metrics"
	"github.com/appdotbuilder/commerce-admin/internal/core/ports"
)

// OrderHandler exposes the orders.* procedures.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	o, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		UserID:      req.UserID,
		Status:      orderStatus(req.Status),
		TotalAmount: decimal.NewFromFloat(*req.TotalAmount),
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("order", "create").Inc()
	return c.JSON(http.StatusOK, newOrderResponse(o))
}

func (h *OrderHandler) GetAll(c echo.Context) error {
	orders, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newOrderListResponse(orders))
}

func (h *OrderHandler) GetByID(c echo.Context) error {
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	o, err := h.service.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	if o == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, newOrderResponse(o))
}

func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	o, err := h.service.Update(c.Request().Context(), ports.UpdateOrderInput{
		ID:          req.ID,
		UserID:      req.UserID,
		Status:      orderStatus(req.Status),
		TotalAmount: amount(req.TotalAmount),
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("order", "update").Inc()
	return c.JSON(http.StatusOK, newOrderResponse(o))
}

func (h *OrderHandler) Delete(c echo.Context) error {
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	deleted, err := h.service.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	if deleted {
		metrics.EntityWritesTotal.WithLabelValues("order", "delete").Inc()
	}
	return c.JSON(http.StatusOK, deleteResponse{Success: deleted})
}
