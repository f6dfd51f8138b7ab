package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"chainpulse/models"
	"chainpulse/utils"
)

// GetHealth godoc
// @Summary Health check
// @Description Returns service liveness, request time and running version
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *Handler) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Version:   utils.ServiceVersion,
	})
}
