package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskmanager/task-api/internal/core/ports"
)

// StatsHandler serves the admin statistics snapshot.
type StatsHandler struct {
	statsService ports.StatsService
}

func NewStatsHandler(statsService ports.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Get handles GET /stats (admin only).
//
// @Summary      Server-wide statistics
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statusEnvelope
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /stats [get]
func (h *StatsHandler) Get(c echo.Context) error {
	stats, err := h.statsService.Snapshot(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusEnvelope{Status: "success", Data: stats})
}
