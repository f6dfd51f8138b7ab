package handlers

import "github.com/labstack/echo/v4"

// Register wires every route the service exposes. Echo answers 405 for
// other methods on these paths and 404 everywhere else.
func Register(e *echo.Echo, h *Handler) {
	e.GET("/health", h.GetHealth)

	api := e.Group("/api")
	api.GET("/dashboard", h.GetDashboard)
}
