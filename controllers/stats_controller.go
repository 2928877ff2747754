package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/services"
)

// StatsController handles HTTP requests for the admin dashboard.
type StatsController struct {
	statsService services.StatsService
}

// NewStatsController creates a new StatsController.
func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// GetStats handles GET /admin/stats.
func (sc *StatsController) GetStats(ctx *gin.Context) {
	stats := sc.statsService.GetStats(ctx.Request.Context())
	ctx.JSON(http.StatusOK, stats)
}
