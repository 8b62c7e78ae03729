package get_locations

import "github.com/m04kA/SMC-RentalService/internal/domain"

// LocationResponse HTTP response model for one location
type LocationResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// ListResponse HTTP response model for the location list
type ListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// FromDomain converts domain locations to the HTTP response
func FromDomain(locs []*domain.Location) ListResponse {
	out := ListResponse{Locations: make([]LocationResponse, 0, len(locs))}
	for _, loc := range locs {
		out.Locations = append(out.Locations, LocationResponse{
			ID:      loc.ID,
			Name:    loc.Name,
			Address: loc.Address,
			City:    loc.City,
			State:   loc.State,
		})
	}
	return out
}
