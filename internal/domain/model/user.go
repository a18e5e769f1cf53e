package model

import "time"

// UserRole determines which order operations and queries a user may perform.
// Role is fixed at registration time.
type UserRole string

const (
	RoleClient   UserRole = "Client"
	RoleOwner    UserRole = "Owner"
	RoleDelivery UserRole = "Delivery"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleClient, RoleOwner, RoleDelivery:
		return true
	}
	return false
}

// User represents a registered account: a customer, a restaurant owner or a driver.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}
