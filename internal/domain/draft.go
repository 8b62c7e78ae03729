package domain

import "time"

// ReservationDraft accumulates the reservation form state across the
// storefront steps. Every field is optional: the draft itself never rejects
// partial states, required-field checks happen only at submission.
type ReservationDraft struct {
	VehicleID        *string `json:"vehicleId,omitempty"`
	PickupLocationID *string `json:"pickupLocationId,omitempty"`
	ReturnLocationID *string `json:"returnLocationId,omitempty"`
	PickupDate       *string `json:"pickupDate,omitempty"` // "2006-01-02"
	ReturnDate       *string `json:"returnDate,omitempty"`
	PickupTime       *string `json:"pickupTime,omitempty"` // "15:04"
	ReturnTime       *string `json:"returnTime,omitempty"`

	// Personal data
	Name      *string `json:"name,omitempty"`
	CPF       *string `json:"cpf,omitempty"`
	CNH       *string `json:"cnh,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`

	// Address data
	CEP          *string `json:"cep,omitempty"`
	Street       *string `json:"street,omitempty"`
	Number       *string `json:"number,omitempty"`
	Complement   *string `json:"complement,omitempty"`
	Neighborhood *string `json:"neighborhood,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// IsEmpty reports whether no field has been filled yet
func (d *ReservationDraft) IsEmpty() bool {
	return d.VehicleID == nil &&
		d.PickupLocationID == nil &&
		d.ReturnLocationID == nil &&
		d.PickupDate == nil &&
		d.ReturnDate == nil &&
		d.PickupTime == nil &&
		d.ReturnTime == nil &&
		d.Name == nil &&
		d.CPF == nil &&
		d.CNH == nil &&
		d.Phone == nil &&
		d.Email == nil &&
		d.BirthDate == nil &&
		d.CEP == nil &&
		d.Street == nil &&
		d.Number == nil &&
		d.Complement == nil &&
		d.Neighborhood == nil &&
		d.City == nil &&
		d.State == nil
}

// Merge applies every non-nil field of patch onto the draft. Fields absent
// from the patch keep their current value; the draft is never reset by a
// partial update.
func (d *ReservationDraft) Merge(patch *ReservationDraft) {
	if patch.VehicleID != nil {
		d.VehicleID = patch.VehicleID
	}
	if patch.PickupLocationID != nil {
		d.PickupLocationID = patch.PickupLocationID
	}
	if patch.ReturnLocationID != nil {
		d.ReturnLocationID = patch.ReturnLocationID
	}
	if patch.PickupDate != nil {
		d.PickupDate = patch.PickupDate
	}
	if patch.ReturnDate != nil {
		d.ReturnDate = patch.ReturnDate
	}
	if patch.PickupTime != nil {
		d.PickupTime = patch.PickupTime
	}
	if patch.ReturnTime != nil {
		d.ReturnTime = patch.ReturnTime
	}
	if patch.Name != nil {
		d.Name = patch.Name
	}
	if patch.CPF != nil {
		d.CPF = patch.CPF
	}
	if patch.CNH != nil {
		d.CNH = patch.CNH
	}
	if patch.Phone != nil {
		d.Phone = patch.Phone
	}
	if patch.Email != nil {
		d.Email = patch.Email
	}
	if patch.BirthDate != nil {
		d.BirthDate = patch.BirthDate
	}
	if patch.CEP != nil {
		d.CEP = patch.CEP
	}
	if patch.Street != nil {
		d.Street = patch.Street
	}
	if patch.Number != nil {
		d.Number = patch.Number
	}
	if patch.Complement != nil {
		d.Complement = patch.Complement
	}
	if patch.Neighborhood != nil {
		d.Neighborhood = patch.Neighborhood
	}
	if patch.City != nil {
		d.City = patch.City
	}
	if patch.State != nil {
		d.State = patch.State
	}
}
