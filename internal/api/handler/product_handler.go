package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/commerce-admin/internal/api/metrics"
	"github.com/appdotbuilder/commerce-admin/internal/core/ports"
)

// ProductHandler exposes the products.* procedures.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	p, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         decimal.NewFromFloat(req.Price),
		StockQuantity: req.StockQuantity,
		CategoryID:    req.CategoryID,
		IsActive:      req.IsActive,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("product", "create").Inc()
	return c.JSON(http.StatusOK, newProductResponse(p))
}

func (h *ProductHandler) GetAll(c echo.Context) error {
	products, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newProductListResponse(products))
}

func (h *ProductHandler) GetByID(c echo.Context) error {
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	p, err := h.service.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	if p == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, newProductResponse(p))
}

func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	p, err := h.service.Update(c.Request().Context(), ports.UpdateProductInput{
		ID:            req.ID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         amount(req.Price),
		StockQuantity: req.StockQuantity,
		CategoryID:    req.CategoryID,
		IsActive:      req.IsActive,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("product", "update").Inc()
	return c.JSON(http.StatusOK, newProductResponse(p))
}

func (h *ProductHandler) Delete(c echo.Context) error {
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	deleted, err := h.service.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	if deleted {
		metrics.EntityWritesTotal.WithLabelValues("product", "delete").Inc()
	}
	return c.JSON(http.StatusOK, deleteResponse{Success: deleted})
}
