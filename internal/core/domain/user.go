package domain

import "time"

// UserRole defines the application-wide role of a user.
type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleSalesperson UserRole = "salesperson"
)

// User represents a principal of the application. Role is nil until an admin
// assigns one (or the user bootstraps themselves as the first admin).
type User struct {
	UserID       string    `json:"userID"` // Primary Key (UUID)
	Username     string    `json:"username"`
	Name         string    `json:"name"` // Full display name
	PasswordHash string    `json:"-"`
	Role         *UserRole `json:"role,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete

	// Refresh token state, hashed at rest.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// HasRole reports whether the user has been assigned the given role.
func (u *User) HasRole(role UserRole) bool {
	return u.Role != nil && *u.Role == role
}

// IsAdmin reports whether the user is an administrator.
func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// AuthContext carries the resolved caller identity and role into every service
// call. It is built once per request from the authenticated principal and
// passed explicitly; services never consult ambient state for authorization.
type AuthContext struct {
	UserID string
	Role   UserRole // empty string when the user has no role yet
}

// IsAdmin reports whether the calling principal is an administrator.
func (a AuthContext) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// IsSalesperson reports whether the calling principal is a salesperson.
func (a AuthContext) IsSalesperson() bool {
	return a.Role == RoleSalesperson
}
