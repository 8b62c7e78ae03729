package admin_locations

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// LocationRequest HTTP request model for create/update
type LocationRequest struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Active       bool   `json:"active"`
	DisplayOrder int    `json:"displayOrder"`
}

// LocationResponse HTTP response model including admin-only fields
type LocationResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Active       bool   `json:"active"`
	DisplayOrder int    `json:"displayOrder"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// ListResponse HTTP response model for the full list
type ListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// ToDomain converts the request to a domain location
func (r *LocationRequest) ToDomain() *domain.Location {
	return &domain.Location{
		ID:           r.ID,
		Name:         r.Name,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		Active:       r.Active,
		DisplayOrder: r.DisplayOrder,
	}
}

// FromDomain converts a domain location to the HTTP model
func FromDomain(loc *domain.Location) LocationResponse {
	return LocationResponse{
		ID:           loc.ID,
		Name:         loc.Name,
		Address:      loc.Address,
		City:         loc.City,
		State:        loc.State,
		Active:       loc.Active,
		DisplayOrder: loc.DisplayOrder,
		CreatedAt:    loc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    loc.UpdatedAt.Format(time.RFC3339),
	}
}
