package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/goldsouq/debt_collection_app/internal/core/ports/services"
	"github.com/goldsouq/debt_collection_app/internal/dto"
)

// OverdueHandler handles aging-bucket snapshot requests.
type OverdueHandler struct {
	overdueService portssvc.OverdueService
	userService    portssvc.UserService
}

// NewOverdueHandler creates a new OverdueHandler.
func NewOverdueHandler(os portssvc.OverdueService, us portssvc.UserService) *OverdueHandler {
	return &OverdueHandler{overdueService: os, userService: us}
}

// registerOverdueRoutes sets up the overdue status routes.
func registerOverdueRoutes(rg *gin.RouterGroup, os portssvc.OverdueService, us portssvc.UserService) {
	h := NewOverdueHandler(os, us)

	overdue := rg.Group("/overdue")
	{
		overdue.PUT("", h.UpsertStatus)
		overdue.GET("", h.ListStatuses)
		overdue.POST("/import", h.ImportStatuses)
		overdue.POST("/normalize", h.NormalizeLegacy)
		overdue.GET("/customer/:id", h.GetStatusByCustomer)
	}
}

// UpsertStatus godoc
// @Summary Replace a customer's overdue snapshot
// @Description Overwrites the aging buckets for one customer. Admin only.
// @Tags overdue
// @Accept json
// @Produce json
// @Param status body dto.UpsertOverdueRequest true "Bucket counts and amounts"
// @Success 200 {object} dto.OverdueStatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /overdue [put]
func (h *OverdueHandler) UpsertStatus(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	var req dto.UpsertOverdueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	status, err := h.overdueService.UpsertStatus(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOverdueStatusResponse(*status))
}

// ImportStatuses godoc
// @Summary Bulk-import overdue snapshots
// @Description Upserts snapshots row by row; failed rows are reported, not fatal. Admin only.
// @Tags overdue
// @Accept json
// @Produce json
// @Param body body dto.ImportOverdueRequest true "Snapshot rows"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /overdue/import [post]
func (h *OverdueHandler) ImportStatuses(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	var req dto.ImportOverdueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.overdueService.ImportStatuses(c.Request.Context(), caller, req.Statuses)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetStatusByCustomer godoc
// @Summary Get a customer's overdue snapshot
// @Description Returns the customer's aging buckets, or 404 when none has been imported.
// @Tags overdue
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.OverdueStatusResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /overdue/customer/{id} [get]
func (h *OverdueHandler) GetStatusByCustomer(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	status, err := h.overdueService.GetStatusByCustomer(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if status == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no overdue status for customer"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOverdueStatusResponse(*status))
}

// ListStatuses godoc
// @Summary List overdue snapshots
// @Description Returns imported snapshots with customer details. Salespeople only see their own customers' snapshots.
// @Tags overdue
// @Produce json
// @Success 200 {array} dto.OverdueStatusResponse
// @Failure 403 {object} ErrorResponse
// @Router /overdue [get]
func (h *OverdueHandler) ListStatuses(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	statuses, err := h.overdueService.ListStatuses(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOverdueStatusResponses(statuses))
}

// NormalizeLegacy godoc
// @Summary Normalize legacy snapshots
// @Description Backfills zero amounts on rows imported before amounts were tracked. Admin only.
// @Tags overdue
// @Produce json
// @Success 200 {object} dto.NormalizeResult
// @Failure 403 {object} ErrorResponse
// @Router /overdue/normalize [post]
func (h *OverdueHandler) NormalizeLegacy(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	result, err := h.overdueService.NormalizeLegacy(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
