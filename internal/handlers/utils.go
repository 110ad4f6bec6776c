package handlers

import (
	"context"

	"bankist/internal/services"

	"github.com/labstack/echo/v4"
)

// requestContext carries the trace ID into the session so audit lines can be correlated with the response
func requestContext(c echo.Context) context.Context {
	return services.WithCorrelationID(c.Request().Context(), getTraceID(c))
}
