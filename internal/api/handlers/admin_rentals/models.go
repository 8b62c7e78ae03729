package admin_rentals

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	createRental "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// CreateRentalRequest HTTP request model
type CreateRentalRequest struct {
	CustomerID       int64   `json:"customerId"`
	VehicleID        string  `json:"vehicleId"`
	PickupLocationID string  `json:"pickupLocationId"`
	ReturnLocationID string  `json:"returnLocationId"`
	PickupDate       string  `json:"pickupDate"` // "2026-09-15"
	ReturnDate       string  `json:"returnDate"`
	PickupTime       string  `json:"pickupTime,omitempty"` // "10:00"
	ReturnTime       string  `json:"returnTime,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

// UpdateStatusRequest HTTP request model for a status change
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CancelRequest HTTP request model for a cancellation
type CancelRequest struct {
	Reason string `json:"reason"`
}

// RentalResponse HTTP response model
type RentalResponse struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"customerId"`
	VehicleID  string `json:"vehicleId"`

	VehicleName string  `json:"vehicleName"`
	PricePerDay float64 `json:"pricePerDay"`

	PickupLocationID string `json:"pickupLocationId"`
	ReturnLocationID string `json:"returnLocationId"`
	PickupDate       string `json:"pickupDate"`
	ReturnDate       string `json:"returnDate"`
	PickupTime       string `json:"pickupTime,omitempty"`
	ReturnTime       string `json:"returnTime,omitempty"`

	Status     string  `json:"status"`
	TotalPrice float64 `json:"totalPrice"`
	Notes      *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ListResponse HTTP response model for the rental list
type ListResponse struct {
	Rentals []RentalResponse `json:"rentals"`
}

// ToUseCaseRequest converts the HTTP request to the use case model
func (r *CreateRentalRequest) ToUseCaseRequest() (*createRental.Request, error) {
	pickupDate, err := time.Parse(domain.DateFormat, r.PickupDate)
	if err != nil {
		return nil, err
	}
	returnDate, err := time.Parse(domain.DateFormat, r.ReturnDate)
	if err != nil {
		return nil, err
	}

	var pickupTime, returnTime types.TimeString
	if r.PickupTime != "" {
		if pickupTime, err = types.NewTimeStringFromString(r.PickupTime); err != nil {
			return nil, err
		}
	}
	if r.ReturnTime != "" {
		if returnTime, err = types.NewTimeStringFromString(r.ReturnTime); err != nil {
			return nil, err
		}
	}

	return &createRental.Request{
		CustomerID:       r.CustomerID,
		VehicleID:        r.VehicleID,
		PickupLocationID: r.PickupLocationID,
		ReturnLocationID: r.ReturnLocationID,
		PickupDate:       pickupDate,
		ReturnDate:       returnDate,
		PickupTime:       pickupTime,
		ReturnTime:       returnTime,
		Notes:            r.Notes,
	}, nil
}

// FromDomain converts a domain rental to the HTTP model
func FromDomain(r *domain.Rental) RentalResponse {
	out := RentalResponse{
		ID:                 r.ID,
		CustomerID:         r.CustomerID,
		VehicleID:          r.VehicleID,
		VehicleName:        r.VehicleName,
		PricePerDay:        r.PricePerDay,
		PickupLocationID:   r.PickupLocationID,
		ReturnLocationID:   r.ReturnLocationID,
		PickupDate:         r.PickupDate.Format(domain.DateFormat),
		ReturnDate:         r.ReturnDate.Format(domain.DateFormat),
		PickupTime:         r.PickupTime.String(),
		ReturnTime:         r.ReturnTime.String(),
		Status:             string(r.Status),
		TotalPrice:         r.TotalPrice,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          r.UpdatedAt.Format(time.RFC3339),
	}

	if r.CancelledAt != nil {
		cancelled := r.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &cancelled
	}

	return out
}

// FromUseCaseResponse converts the create use case result to the HTTP model
func FromUseCaseResponse(res *createRental.Response) RentalResponse {
	return RentalResponse{
		ID:               res.ID,
		CustomerID:       res.CustomerID,
		VehicleID:        res.VehicleID,
		VehicleName:      res.VehicleName,
		PricePerDay:      res.PricePerDay,
		PickupLocationID: res.PickupLocationID,
		ReturnLocationID: res.ReturnLocationID,
		PickupDate:       res.PickupDate.Format(domain.DateFormat),
		ReturnDate:       res.ReturnDate.Format(domain.DateFormat),
		PickupTime:       res.PickupTime.String(),
		ReturnTime:       res.ReturnTime.String(),
		Status:           res.Status,
		TotalPrice:       res.TotalPrice,
		Notes:            res.Notes,
		CreatedAt:        res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        res.UpdatedAt.Format(time.RFC3339),
	}
}
