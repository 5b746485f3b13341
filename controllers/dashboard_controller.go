package controllers

import (
	"log"
	"net/http"

	"hotel-fos-backend/services"
	"hotel-fos-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: svc}
}

// GET /api/dashboard
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	stats, err := c.Dashboard.Snapshot()
	if err != nil {
		log.Printf("failed to build dashboard snapshot: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Error fetching dashboard data")
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
