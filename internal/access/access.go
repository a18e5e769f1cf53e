// Package access holds the order visibility guard and the role permission
// table for status transitions.
package access

import "github.com/mberkut/dishpatch/internal/domain/model"

// statusPermissions maps each role to the target statuses it may set.
// Clients are read-only so they have no entry. Only the target status is
// constrained, not the source status the order currently has.
var statusPermissions = map[model.UserRole]map[model.OrderStatus]bool{
	model.RoleOwner: {
		model.OrderStatusCooking: true,
		model.OrderStatusCooked:  true,
	},
	model.RoleDelivery: {
		model.OrderStatusPickedUp:  true,
		model.OrderStatusDelivered: true,
	},
}

// CanSetStatus reports whether the role may move an order to the target status.
func CanSetStatus(role model.UserRole, target model.OrderStatus) bool {
	return statusPermissions[role][target]
}

// CanSee reports whether the user may view the order: clients see their own
// orders, drivers the orders they deliver, owners the orders of their
// restaurants. A missing relation (no driver yet, restaurant not loaded or
// deleted) simply yields false.
func CanSee(user model.User, order *model.Order) bool {
	switch user.Role {
	case model.RoleClient:
		return order.CustomerID != nil && *order.CustomerID == user.ID
	case model.RoleDelivery:
		return order.DriverID != nil && *order.DriverID == user.ID
	case model.RoleOwner:
		return order.Restaurant != nil && order.Restaurant.OwnerID == user.ID
	}
	return false
}
