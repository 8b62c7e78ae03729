package submit_reservation

import "errors"

var (
	// ErrEmptyDraft is returned when the session has no draft data to submit
	ErrEmptyDraft = errors.New("submit_reservation: draft is empty")

	// ErrMissingFields is returned when required draft fields are absent
	ErrMissingFields = errors.New("submit_reservation: required fields are missing")

	// ErrVehicleNotFound is returned when the drafted vehicle is gone from the
	// catalog; message generation cannot proceed without it
	ErrVehicleNotFound = errors.New("submit_reservation: vehicle not found")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("submit_reservation: internal error")
)
