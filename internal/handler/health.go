package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports whether the service and its store are reachable
type HealthHandler struct {
	ping func(ctx context.Context) error
}

// NewHealthHandler creates a health handler. ping may be nil when the
// store has nothing to check.
func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Check handles GET /health
func (h *HealthHandler) Check(c echo.Context) error {
	if h.ping != nil {
		if err := h.ping(c.Request().Context()); err != nil {
			return httpError(http.StatusInternalServerError, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
