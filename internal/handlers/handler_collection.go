package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/goldsouq/debt_collection_app/internal/core/ports/services"
	"github.com/goldsouq/debt_collection_app/internal/dto"
)

// CollectionHandler handles settlement requests.
type CollectionHandler struct {
	collectionService portssvc.CollectionService
	userService       portssvc.UserService
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(cs portssvc.CollectionService, us portssvc.UserService) *CollectionHandler {
	return &CollectionHandler{collectionService: cs, userService: us}
}

// registerCollectionRoutes sets up the collection routes.
func registerCollectionRoutes(rg *gin.RouterGroup, cs portssvc.CollectionService, us portssvc.UserService) {
	h := NewCollectionHandler(cs, us)

	collections := rg.Group("/collections")
	{
		collections.POST("", h.AddCollection)
		collections.GET("", h.ListAll)
		collections.GET("/mine", h.ListMine)
		collections.GET("/customer/:id", h.ListByCustomer)
		collections.GET("/stats/mine", h.MyStats)
		collections.GET("/stats/all", h.AllStats)
		collections.DELETE("/:id", h.DeleteCollection)
	}
}

// AddCollection godoc
// @Summary Record a settlement
// @Description Settles part of a customer's debt. Amounts may not exceed the outstanding balances.
// @Tags collections
// @Accept json
// @Produce json
// @Param collection body dto.AddCollectionRequest true "Settlement amounts"
// @Success 201 {object} dto.CollectionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /collections [post]
func (h *CollectionHandler) AddCollection(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	var req dto.AddCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	collection, err := h.collectionService.AddCollection(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCollectionResponse(*collection))
}

// DeleteCollection godoc
// @Summary Reverse a settlement
// @Description Deletes a settlement and restores its amounts onto the customer's balances. Admin only.
// @Tags collections
// @Produce json
// @Param id path string true "Collection ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /collections/{id} [delete]
func (h *CollectionHandler) DeleteCollection(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	if err := h.collectionService.DeleteCollection(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListByCustomer godoc
// @Summary List a customer's settlements
// @Description Returns a customer's settlement history, newest first.
// @Tags collections
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {array} dto.CollectionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /collections/customer/{id} [get]
func (h *CollectionHandler) ListByCustomer(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	collections, err := h.collectionService.ListByCustomer(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCollectionResponses(collections))
}

// ListMine godoc
// @Summary List own settlements
// @Description Returns the caller's recorded settlements, newest first.
// @Tags collections
// @Produce json
// @Success 200 {array} dto.CollectionResponse
// @Failure 401 {object} ErrorResponse
// @Router /collections/mine [get]
func (h *CollectionHandler) ListMine(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	collections, err := h.collectionService.ListMine(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCollectionResponses(collections))
}

// ListAll godoc
// @Summary List all settlements
// @Description Returns every recorded settlement. Admin only.
// @Tags collections
// @Produce json
// @Success 200 {array} dto.CollectionResponse
// @Failure 403 {object} ErrorResponse
// @Router /collections [get]
func (h *CollectionHandler) ListAll(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	collections, err := h.collectionService.ListAll(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCollectionResponses(collections))
}

// MyStats godoc
// @Summary Own settlement totals
// @Description Aggregates the caller's settlements over all time, today and the current week.
// @Tags collections
// @Produce json
// @Success 200 {object} dto.CollectionStatsResponse
// @Failure 401 {object} ErrorResponse
// @Router /collections/stats/mine [get]
func (h *CollectionHandler) MyStats(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	stats, err := h.collectionService.MyStats(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCollectionStatsResponse(stats))
}

// AllStats godoc
// @Summary Per-salesperson settlement totals
// @Description Aggregates settlements per salesperson. Admin only.
// @Tags collections
// @Produce json
// @Success 200 {array} dto.SalespersonStatsResponse
// @Failure 403 {object} ErrorResponse
// @Router /collections/stats/all [get]
func (h *CollectionHandler) AllStats(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	stats, err := h.collectionService.AllStats(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSalespersonStatsResponses(stats))
}
