package admin_vehicles

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// VehicleRequest HTTP request model for create/update
type VehicleRequest struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Transmission string   `json:"transmission"`
	PricePerDay  float64  `json:"pricePerDay"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
	Seats        int      `json:"seats"`
	Fuel         string   `json:"fuel"`
	Active       bool     `json:"active"`
}

// VehicleResponse HTTP response model including admin-only fields
type VehicleResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Transmission string   `json:"transmission"`
	PricePerDay  float64  `json:"pricePerDay"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
	Seats        int      `json:"seats"`
	Fuel         string   `json:"fuel"`
	Active       bool     `json:"active"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// ListResponse HTTP response model for the full catalog
type ListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

// ToDomain converts the request to a domain vehicle
func (r *VehicleRequest) ToDomain() *domain.Vehicle {
	return &domain.Vehicle{
		ID:           r.ID,
		Name:         r.Name,
		Category:     r.Category,
		Transmission: r.Transmission,
		PricePerDay:  r.PricePerDay,
		Features:     r.Features,
		Images:       r.Images,
		Seats:        r.Seats,
		Fuel:         r.Fuel,
		Active:       r.Active,
	}
}

// FromDomain converts a domain vehicle to the HTTP model
func FromDomain(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.ID,
		Name:         v.Name,
		Category:     v.Category,
		Transmission: v.Transmission,
		PricePerDay:  v.PricePerDay,
		Features:     v.Features,
		Images:       v.Images,
		Seats:        v.Seats,
		Fuel:         v.Fuel,
		Active:       v.Active,
		CreatedAt:    v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    v.UpdatedAt.Format(time.RFC3339),
	}
}
