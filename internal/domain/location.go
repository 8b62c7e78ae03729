package domain

import "time"

// Location represents a rental pickup/return point
type Location struct {
	ID           string // slug, e.g. "rio-centro-rj"
	Name         string
	Address      string
	City         string
	State        string
	Active       bool
	DisplayOrder int

	CreatedAt time.Time
	UpdatedAt time.Time
}
