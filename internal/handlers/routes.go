package handlers

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the health check and the /api/v1 routes.
// apiMiddleware only wraps the /api/v1 group.
func RegisterRoutes(
	e *echo.Echo,
	session *SessionHandler,
	accounts *AccountHandler,
	health *HealthCheckHandler,
	apiMiddleware ...echo.MiddlewareFunc,
) {
	e.GET("/health", health.HealthCheck)

	api := e.Group("/api/v1", apiMiddleware...)

	api.GET("/accounts", accounts.ListAccounts)

	s := api.Group("/session")
	s.GET("", session.GetScreen)
	s.POST("/login", session.Login)
	s.POST("/transfers", session.Transfer)
	s.POST("/loans", session.RequestLoan)
	s.POST("/close", session.CloseAccount)
	s.POST("/sort", session.ToggleSort)
}
