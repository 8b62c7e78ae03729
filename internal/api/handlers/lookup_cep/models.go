package lookup_cep

import (
	"github.com/m04kA/SMC-RentalService/internal/integrations/viacep"
	"github.com/m04kA/SMC-RentalService/pkg/brdoc"
)

// AddressResponse HTTP response model for a postal lookup
type AddressResponse struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// FromAddress converts the integration model to the HTTP response
func FromAddress(cep string, addr *viacep.Address) AddressResponse {
	return AddressResponse{
		CEP:          brdoc.FormatCEP(cep),
		Street:       addr.Street,
		Neighborhood: addr.Neighborhood,
		City:         addr.City,
		State:        addr.State,
	}
}
