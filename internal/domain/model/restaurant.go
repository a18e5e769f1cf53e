package model

import "time"

// Restaurant is owned by a single Owner-role user and holds a menu of dishes.
type Restaurant struct {
	ID            int64
	OwnerID       int64
	Name          string
	Address       string
	IsPromoted    bool
	PromotedUntil *time.Time
	CreatedAt     time.Time
}
