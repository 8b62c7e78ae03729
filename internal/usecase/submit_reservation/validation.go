package submit_reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	customersRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/customers"
	"github.com/m04kA/SMC-RentalService/pkg/brdoc"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// validateDraft checks the fields the hand-off message cannot do without.
// The draft accepts any partial state up to this point; submission is where
// required-field checks happen.
func validateDraft(d *domain.ReservationDraft) error {
	if d.VehicleID == nil || *d.VehicleID == "" {
		return fmt.Errorf("%w: vehicleId", ErrMissingFields)
	}
	if d.PickupDate == nil || *d.PickupDate == "" {
		return fmt.Errorf("%w: pickupDate", ErrMissingFields)
	}
	if d.ReturnDate == nil || *d.ReturnDate == "" {
		return fmt.Errorf("%w: returnDate", ErrMissingFields)
	}
	if d.Name == nil || *d.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingFields)
	}
	if d.Phone == nil || brdoc.Digits(*d.Phone) == "" {
		return fmt.Errorf("%w: phone", ErrMissingFields)
	}
	return nil
}

// draftToRecords maps the draft onto the customer and rental rows the
// persistence phase writes. Parsing failures here fail only the persistence
// phase, never the hand-off.
func draftToRecords(d *domain.ReservationDraft) (*domain.Rental, *domain.Customer, error) {
	pickupDate, err := time.Parse(domain.DateFormat, deref(d.PickupDate))
	if err != nil {
		return nil, nil, fmt.Errorf("parse pickup date: %v", err)
	}
	returnDate, err := time.Parse(domain.DateFormat, deref(d.ReturnDate))
	if err != nil {
		return nil, nil, fmt.Errorf("parse return date: %v", err)
	}

	pickupTime, err := parseOptionalTime(d.PickupTime)
	if err != nil {
		return nil, nil, fmt.Errorf("parse pickup time: %v", err)
	}
	returnTime, err := parseOptionalTime(d.ReturnTime)
	if err != nil {
		return nil, nil, fmt.Errorf("parse return time: %v", err)
	}

	cpf := brdoc.Digits(deref(d.CPF))
	if !brdoc.IsValidCPF(cpf) {
		return nil, nil, fmt.Errorf("invalid CPF in draft")
	}

	customer := &domain.Customer{
		Name:         deref(d.Name),
		CPF:          cpf,
		CNH:          brdoc.Digits(deref(d.CNH)),
		Phone:        brdoc.Digits(deref(d.Phone)),
		Email:        deref(d.Email),
		CEP:          brdoc.Digits(deref(d.CEP)),
		Street:       deref(d.Street),
		Number:       deref(d.Number),
		Complement:   d.Complement,
		Neighborhood: deref(d.Neighborhood),
		City:         deref(d.City),
		State:        deref(d.State),
	}

	if d.BirthDate != nil && *d.BirthDate != "" {
		birth, err := time.Parse(domain.DateFormat, *d.BirthDate)
		if err != nil {
			return nil, nil, fmt.Errorf("parse birth date: %v", err)
		}
		customer.BirthDate = &birth
	}

	rental := &domain.Rental{
		VehicleID:        deref(d.VehicleID),
		PickupLocationID: deref(d.PickupLocationID),
		ReturnLocationID: deref(d.ReturnLocationID),
		PickupDate:       pickupDate,
		ReturnDate:       returnDate,
		PickupTime:       pickupTime,
		ReturnTime:       returnTime,
		Status:           domain.StatusPending,
	}

	return rental, customer, nil
}

func parseOptionalTime(s *string) (types.TimeString, error) {
	if s == nil || *s == "" {
		return "", nil
	}
	return types.NewTimeStringFromString(*s)
}

func isNotFound(err error) bool {
	return errors.Is(err, customersRepo.ErrCustomerNotFound)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
