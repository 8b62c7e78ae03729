package get_vehicles

import "github.com/m04kA/SMC-RentalService/internal/domain"

// VehicleResponse HTTP response model for one catalog entry
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
}

// ListResponse HTTP response model for the catalog
type ListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

// FromDomain converts one domain vehicle to the HTTP model
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
	}
}

// FromDomainList converts domain vehicles to the HTTP response
func FromDomainList(vehicles []*domain.Vehicle) ListResponse {
	out := ListResponse{Vehicles: make([]VehicleResponse, 0, len(vehicles))}
	for _, v := range vehicles {
		out.Vehicles = append(out.Vehicles, FromDomain(v))
	}
	return out
}
