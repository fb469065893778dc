package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goldsouq/debt_collection_app/internal/adapters/spreadsheet"
	portssvc "github.com/goldsouq/debt_collection_app/internal/core/ports/services"
	"github.com/goldsouq/debt_collection_app/internal/dto"
)

// SaleHandler handles daily sales record requests.
type SaleHandler struct {
	saleService portssvc.SaleService
	userService portssvc.UserService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(ss portssvc.SaleService, us portssvc.UserService) *SaleHandler {
	return &SaleHandler{saleService: ss, userService: us}
}

// registerSaleRoutes sets up the sales routes.
func registerSaleRoutes(rg *gin.RouterGroup, ss portssvc.SaleService, us portssvc.UserService) {
	h := NewSaleHandler(ss, us)

	sales := rg.Group("/sales")
	{
		sales.GET("", h.ListSales)
		sales.DELETE("", h.ClearSales)
		sales.POST("/import", h.ImportSales)
		sales.POST("/import-file", h.ImportSalesFile)
		sales.GET("/rollup/branch", h.RollupByBranch)
		sales.GET("/rollup/salesperson", h.RollupBySalesperson)
	}
}

// ImportSales godoc
// @Summary Import sales records
// @Description Stores a batch of daily sales rows. Admin only.
// @Tags sales
// @Accept json
// @Produce json
// @Param body body dto.ImportSalesRequest true "Sales rows"
// @Success 200 {object} dto.ImportSalesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /sales/import [post]
func (h *SaleHandler) ImportSales(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	var req dto.ImportSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	count, err := h.saleService.ImportSales(c.Request.Context(), caller, req.Sales)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ImportSalesResponse{Count: count})
}

// ImportSalesFile godoc
// @Summary Import sales records from a spreadsheet
// @Description Parses an uploaded xlsx workbook and stores its rows. Admin only.
// @Tags sales
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx workbook"
// @Success 200 {object} dto.ImportSalesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /sales/import-file [post]
func (h *SaleHandler) ImportSalesFile(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to open uploaded file"})
		return
	}
	defer file.Close()

	rows, parseErrors, err := spreadsheet.ReadSales(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if len(rows) == 0 && len(parseErrors) > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no valid rows in workbook"})
		return
	}

	count, err := h.saleService.ImportSales(c.Request.Context(), caller, rows)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ImportSalesResponse{Count: count})
}

// ListSales godoc
// @Summary List sales records
// @Description Returns every stored sales record, newest first.
// @Tags sales
// @Produce json
// @Success 200 {array} dto.SaleResponse
// @Failure 401 {object} ErrorResponse
// @Router /sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	sales, err := h.saleService.ListSales(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponses(sales))
}

// RollupByBranch godoc
// @Summary Sales totals per branch
// @Tags sales
// @Produce json
// @Success 200 {array} dto.SalesRollupResponse
// @Failure 401 {object} ErrorResponse
// @Router /sales/rollup/branch [get]
func (h *SaleHandler) RollupByBranch(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	rollups, err := h.saleService.RollupByBranch(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesRollupResponses(rollups))
}

// RollupBySalesperson godoc
// @Summary Sales totals per salesperson
// @Tags sales
// @Produce json
// @Success 200 {array} dto.SalesRollupResponse
// @Failure 401 {object} ErrorResponse
// @Router /sales/rollup/salesperson [get]
func (h *SaleHandler) RollupBySalesperson(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	rollups, err := h.saleService.RollupBySalesperson(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesRollupResponses(rollups))
}

// ClearSales godoc
// @Summary Clear sales records
// @Description Deletes every stored sales record. Admin only.
// @Tags sales
// @Produce json
// @Success 200 {object} dto.ClearSalesResponse
// @Failure 403 {object} ErrorResponse
// @Router /sales [delete]
func (h *SaleHandler) ClearSales(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	deleted, err := h.saleService.ClearSales(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClearSalesResponse{Deleted: deleted})
}
