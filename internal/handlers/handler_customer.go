package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goldsouq/debt_collection_app/internal/adapters/spreadsheet"
	portssvc "github.com/goldsouq/debt_collection_app/internal/core/ports/services"
	"github.com/goldsouq/debt_collection_app/internal/dto"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CustomerHandler handles customer book requests.
type CustomerHandler struct {
	customerService portssvc.CustomerService
	userService     portssvc.UserService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(cs portssvc.CustomerService, us portssvc.UserService) *CustomerHandler {
	return &CustomerHandler{customerService: cs, userService: us}
}

// registerCustomerRoutes sets up the customer routes.
func registerCustomerRoutes(rg *gin.RouterGroup, cs portssvc.CustomerService, us portssvc.UserService) {
	h := NewCustomerHandler(cs, us)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.DELETE("", h.DeleteAllCustomers)
		customers.GET("/regions", h.ListRegions)
		customers.GET("/export", h.ExportCustomers)
		customers.POST("/import", h.ImportCustomers)
		customers.POST("/import-file", h.ImportCustomersFile)
		customers.POST("/upsert", h.UpsertCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}
}

// CreateCustomer godoc
// @Summary Register a customer
// @Description Creates a customer with its opening debt balances. Phone numbers are unique.
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(*customer))
}

// ListCustomers godoc
// @Summary List customers
// @Description Lists the caller's visible customers with optional region, owner and search filters.
// @Tags customers
// @Produce json
// @Param region query string false "Region filter ('all' for no filter)"
// @Param salesPersonId query string false "Owner filter (admin only)"
// @Param search query string false "Name or phone substring"
// @Success 200 {array} dto.CustomerResponse
// @Failure 403 {object} ErrorResponse
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	var params dto.ListCustomersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), caller, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponses(customers))
}

// ListRegions godoc
// @Summary List regions
// @Description Lists the distinct regions of the caller's visible customers.
// @Tags customers
// @Produce json
// @Success 200 {array} string
// @Failure 403 {object} ErrorResponse
// @Router /customers/regions [get]
func (h *CustomerHandler) ListRegions(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	regions, err := h.customerService.ListRegions(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, regions)
}

// GetCustomer godoc
// @Summary Get a customer
// @Description Fetches one customer. Salespeople can only read their own customers.
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(*customer))
}

// UpdateCustomer godoc
// @Summary Update a customer
// @Description Applies a partial update to a customer record. Admin only.
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param customer body dto.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(*customer))
}

// DeleteCustomer godoc
// @Summary Delete a customer
// @Description Deletes a customer along with its collections and overdue snapshot. Admin only.
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAllCustomers godoc
// @Summary Purge the customer book
// @Description Deletes every customer and collection. Admin only.
// @Tags customers
// @Produce json
// @Success 200 {object} dto.PurgeResult
// @Failure 403 {object} ErrorResponse
// @Router /customers [delete]
func (h *CustomerHandler) DeleteAllCustomers(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	result, err := h.customerService.DeleteAllCustomers(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ImportCustomers godoc
// @Summary Bulk-insert customers
// @Description Inserts customers row by row; failed rows are reported, not fatal.
// @Tags customers
// @Accept json
// @Produce json
// @Param body body dto.ImportCustomersRequest true "Customer rows"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /customers/import [post]
func (h *CustomerHandler) ImportCustomers(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	var req dto.ImportCustomersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.customerService.ImportCustomers(c.Request.Context(), caller, req.Customers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpsertCustomers godoc
// @Summary Bulk-upsert customers
// @Description Creates or updates customers keyed by phone number; failed rows are reported, not fatal.
// @Tags customers
// @Accept json
// @Produce json
// @Param body body dto.ImportCustomersRequest true "Customer rows"
// @Success 200 {object} dto.UpsertResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /customers/upsert [post]
func (h *CustomerHandler) UpsertCustomers(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	var req dto.ImportCustomersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.customerService.UpsertCustomers(c.Request.Context(), caller, req.Customers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ImportCustomersFile godoc
// @Summary Bulk-upsert customers from a spreadsheet
// @Description Parses an uploaded xlsx workbook and upserts its rows keyed by phone number.
// @Tags customers
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx workbook"
// @Success 200 {object} dto.UpsertResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /customers/import-file [post]
func (h *CustomerHandler) ImportCustomersFile(c *gin.Context) {
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

	rows, parseErrors, err := spreadsheet.ReadCustomers(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.customerService.UpsertCustomers(c.Request.Context(), caller, rows)
	if err != nil {
		respondError(c, err)
		return
	}

	// Rows that never parsed count as failures alongside service-level ones.
	result.Failed += len(parseErrors)
	result.Errors = append(parseErrors, result.Errors...)

	c.JSON(http.StatusOK, result)
}

// ExportCustomers godoc
// @Summary Export the customer book
// @Description Streams the caller's visible customers as an xlsx workbook.
// @Tags customers
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse
// @Router /customers/export [get]
func (h *CustomerHandler) ExportCustomers(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), caller, dto.ListCustomersParams{})
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("customers-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", xlsxContentType)
	if err := spreadsheet.WriteCustomers(c.Writer, customers); err != nil {
		respondError(c, err)
	}
}
