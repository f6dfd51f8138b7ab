package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetDashboard godoc
// @Summary Get the network dashboard
// @Description Returns the synthesized view of the supply-chain network
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardResponse
// @Router /api/dashboard [get]
func (h *Handler) GetDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Snapshot.BuildDashboard())
}
