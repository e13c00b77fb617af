package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/appdotbuilder/commerce-admin/internal/api/metrics"
	"github.com/appdotbuilder/commerce-admin/internal/core/ports"
)

// UserHandler exposes the users.* procedures.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles users.create.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	u, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     userRole(req.Role),
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "create").Inc()
	return c.JSON(http.StatusOK, newUserResponse(u))
}

// GetAll handles users.getAll.
func (h *UserHandler) GetAll(c echo.Context) error {
	users, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newUserListResponse(users))
}

// GetByID handles users.getById. An unknown id yields a JSON null body.
func (h *UserHandler) GetByID(c echo.Context) error {
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	u, err := h.service.GetByID(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	if u == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, newUserResponse(u))
}

// Update handles users.update.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	u, err := h.service.Update(c.Request().Context(), ports.UpdateUserInput{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		Role:     userRole(req.Role),
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "update").Inc()
	return c.JSON(http.StatusOK, newUserResponse(u))
}

// Delete handles users.delete.
func (h *UserHandler) Delete(c echo.Context) error {
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	deleted, err := h.service.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	if deleted {
		metrics.EntityWritesTotal.WithLabelValues("user", "delete").Inc()
	}
	return c.JSON(http.StatusOK, deleteResponse{Success: deleted})
}
