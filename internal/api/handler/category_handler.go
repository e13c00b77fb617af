package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/appdotbuilder/commerce-admin/internal/api/metrics"
	"github.com/appdotbuilder/commerce-admin/internal/core/ports"
)

// CategoryHandler exposes the categories.* procedures.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	cat, err := h.service.Create(c.Request().Context(), ports.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("category", "create").Inc()
	return c.JSON(http.StatusOK, newCategoryResponse(cat))
}

func (h *CategoryHandler) GetAll(c echo.Context) error {
	categories, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCategoryListResponse(categories))
}

func (h *CategoryHandler) GetByID(c echo.Context) error {
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	cat, err := h.service.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	if cat == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, newCategoryResponse(cat))
}

func (h *CategoryHandler) Update(c echo.Context) error {
	var req updateCategoryRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	cat, err := h.service.Update(c.Request().Context(), ports.UpdateCategoryInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("category", "update").Inc()
	return c.JSON(http.StatusOK, newCategoryResponse(cat))
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	deleted, err := h.service.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	if deleted {
		metrics.EntityWritesTotal.WithLabelValues("category", "delete").Inc()
	}
	return c.JSON(http.StatusOK, deleteResponse{Success: deleted})
}
