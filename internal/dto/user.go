package dto

import (
	"time"

	"github.com/goldsouq/debt_collection_app/internal/core/domain"
)

// UserResponse is the outward representation of a user account.
type UserResponse struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain user to its response form.
func ToUserResponse(u domain.User) UserResponse {
	resp := UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
	if u.Role != nil {
		resp.Role = string(*u.Role)
	}
	return resp
}

// ToUserResponses converts a slice of domain users.
func ToUserResponses(users []domain.User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, ToUserResponse(u))
	}
	return resp
}

// AssignRoleRequest sets or changes a user's role and display name.
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin salesperson"`
	Name string `json:"name" binding:"required"`
}

// BootstrapAdminRequest promotes the caller to admin when no admin exists yet.
type BootstrapAdminRequest struct {
	Name string `json:"name" binding:"required"`
}
