package domain

import "time"

// Vehicle represents a catalog entry. Read-only from the storefront's
// perspective; managed through the admin area.
type Vehicle struct {
	ID           string // slug, e.g. "onix-turbo-at"
	Name         string
	Category     string
	Transmission string
	PricePerDay  float64
	Features     []string
	Images       []string
	Seats        int
	Fuel         string
	Active       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
