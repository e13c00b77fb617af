package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/appdotbuilder/commerce-admin/internal/api/metrics"
)

// idRequest is the input for getById and delete procedures.
type idRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

// deleteResponse reports whether a row was actually removed. A missing target
// is absorbed into success=false, never an error.
type deleteResponse struct {
	Success bool `json:"success"`
}

// bindInput binds and validates a procedure's input. Validation failures are
// rejected with 400 before any persistence access and counted per procedure.
func bindInput(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues(procedureName(c)).Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// procedureName extracts "users.create" from the route path "/rpc/users.create".
func procedureName(c echo.Context) string {
	return strings.TrimPrefix(c.Path(), "/rpc/")
}
