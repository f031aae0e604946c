// Package models holds the client-side domain types of the storefront.
package models

import "strings"

// Roles assigned by the backend.
const (
	RoleCustomer   = "customer"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// UserProfile is the authenticated user's profile as held by the client.
type UserProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
}

// FullName returns the user's display name.
func (u UserProfile) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsAdmin reports whether the user has any administrative role.
func (u UserProfile) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// IsSuperAdmin reports whether the user is a superadmin.
func (u UserProfile) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}
