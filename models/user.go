package models

import "time"

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleClient  UserRole = "client"
	RoleOwner   UserRole = "owner"
	RoleLivreur UserRole = "livreur"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        *string   `json:"phone"`
	Role         UserRole  `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleClient, RoleOwner, RoleLivreur:
		return true
	}
	return false
}
