package handlers

import (
	"net/http"

	"bankist/internal/dto"
	"bankist/internal/errors"
	"bankist/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	directory services.DirectoryServiceInterface
	storage   string
}

// NewHealthCheckHandler creates a new health check handler for the given storage driver
func NewHealthCheckHandler(directory services.DirectoryServiceInterface, storage string) *HealthCheckHandler {
	return &HealthCheckHandler{
		directory: directory,
		storage:   storage,
	}
}

// HealthCheck reports whether the account directory is reachable
//
// Method: GET /health
//
// Error Responses:
//   - 503: SYSTEM_003 storage unreachable or directory not loaded
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.directory.HealthCheck(c.Request().Context()); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Account directory unavailable"))
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "healthy",
		Storage:  h.storage,
		Database: "reachable",
	})
}
