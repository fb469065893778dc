package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/goldsouq/debt_collection_app/internal/core/ports/services"
	"github.com/goldsouq/debt_collection_app/internal/dto"
)

// ReportingHandler serves the dashboard aggregates.
type ReportingHandler struct {
	reportingService portssvc.ReportingService
	userService      portssvc.UserService
}

// NewReportingHandler creates a new ReportingHandler.
func NewReportingHandler(rs portssvc.ReportingService, us portssvc.UserService) *ReportingHandler {
	return &ReportingHandler{reportingService: rs, userService: us}
}

// registerReportingRoutes sets up the dashboard routes.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingService, us portssvc.UserService) {
	h := NewReportingHandler(rs, us)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.DashboardStats)
	}
}

// DashboardStats godoc
// @Summary Dashboard aggregates
// @Description Returns the caller's customer counts, outstanding debt totals and collection figures. Admins see the whole book, salespeople just their own.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 401 {object} ErrorResponse
// @Router /dashboard/stats [get]
func (h *ReportingHandler) DashboardStats(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	stats, err := h.reportingService.DashboardStats(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}
