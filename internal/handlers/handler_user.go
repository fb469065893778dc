package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
	portssvc "github.com/goldsouq/debt_collection_app/internal/core/ports/services"
	"github.com/goldsouq/debt_collection_app/internal/dto"
)

// UserHandler handles account management requests.
type UserHandler struct {
	userService portssvc.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us portssvc.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// registerUserRoutes sets up the user management routes.
func registerUserRoutes(rg *gin.RouterGroup, us portssvc.UserService) {
	h := NewUserHandler(us)

	users := rg.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/me", h.Me)
		users.GET("/salespeople", h.ListSalespeople)
		users.POST("/bootstrap-admin", h.BootstrapAdmin)
		users.PUT("/:id/role", h.AssignRole)
		users.DELETE("/:id", h.DeleteUser)
	}
}

// Me godoc
// @Summary Current account
// @Description Returns the authenticated account.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), caller.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

// ListUsers godoc
// @Summary List accounts
// @Description Lists all accounts. Admin only.
// @Tags users
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, err := h.userService.ListUsers(c.Request.Context(), caller, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// ListSalespeople godoc
// @Summary List salespeople
// @Description Lists every account with the salesperson role. Admin only.
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} ErrorResponse
// @Router /users/salespeople [get]
func (h *UserHandler) ListSalespeople(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	users, err := h.userService.ListSalespeople(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// BootstrapAdmin godoc
// @Summary Bootstrap the first admin
// @Description Promotes the caller to admin. Rejected once the caller has any role.
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.BootstrapAdminRequest true "Admin display name"
// @Success 200 {object} dto.UserResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/bootstrap-admin [post]
func (h *UserHandler) BootstrapAdmin(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	var req dto.BootstrapAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.BootstrapFirstAdmin(c.Request.Context(), caller.UserID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

// AssignRole godoc
// @Summary Assign a role
// @Description Sets a user's role and display name. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body dto.AssignRoleRequest true "Role assignment"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id}/role [put]
func (h *UserHandler) AssignRole(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.AssignRole(c.Request.Context(), caller, c.Param("id"), domain.UserRole(req.Role), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

// DeleteUser godoc
// @Summary Delete an account
// @Description Soft-deletes an account. Admins cannot delete themselves.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	caller, ok := resolveCaller(c, h.userService)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
