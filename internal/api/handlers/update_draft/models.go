package update_draft

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/brdoc"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

// UpdateDraftRequest mirrors the draft shape; every field is optional and
// absent fields leave the stored value untouched.
type UpdateDraftRequest struct {
	VehicleID        *string `json:"vehicleId,omitempty"`
	PickupLocationID *string `json:"pickupLocationId,omitempty"`
	ReturnLocationID *string `json:"returnLocationId,omitempty"`
	PickupDate       *string `json:"pickupDate,omitempty"`
	ReturnDate       *string `json:"returnDate,omitempty"`
	PickupTime       *string `json:"pickupTime,omitempty"`
	ReturnTime       *string `json:"returnTime,omitempty"`

	Name      *string `json:"name,omitempty"`
	CPF       *string `json:"cpf,omitempty"`
	CNH       *string `json:"cnh,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`

	CEP          *string `json:"cep,omitempty"`
	Street       *string `json:"street,omitempty"`
	Number       *string `json:"number,omitempty"`
	Complement   *string `json:"complement,omitempty"`
	Neighborhood *string `json:"neighborhood,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
}

// ToPatch converts the request to a domain draft patch. Document fields are
// reformatted as the user types: the stored draft always carries the
// display form.
func (r *UpdateDraftRequest) ToPatch() *domain.ReservationDraft {
	patch := &domain.ReservationDraft{
		VehicleID:        r.VehicleID,
		PickupLocationID: r.PickupLocationID,
		ReturnLocationID: r.ReturnLocationID,
		PickupDate:       r.PickupDate,
		ReturnDate:       r.ReturnDate,
		PickupTime:       r.PickupTime,
		ReturnTime:       r.ReturnTime,
		Name:             r.Name,
		Email:            r.Email,
		BirthDate:        r.BirthDate,
		Street:           r.Street,
		Number:           r.Number,
		Complement:       r.Complement,
		Neighborhood:     r.Neighborhood,
		City:             r.City,
		State:            r.State,
	}

	if r.CPF != nil {
		patch.CPF = ptr.Ptr(brdoc.FormatCPF(*r.CPF))
	}
	if r.CNH != nil {
		patch.CNH = ptr.Ptr(brdoc.FormatCNH(*r.CNH))
	}
	if r.Phone != nil {
		patch.Phone = ptr.Ptr(brdoc.FormatPhone(*r.Phone))
	}
	if r.CEP != nil {
		patch.CEP = ptr.Ptr(brdoc.FormatCEP(*r.CEP))
	}

	return patch
}
