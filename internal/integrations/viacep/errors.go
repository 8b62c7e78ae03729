package viacep

import "errors"

var (
	// ErrCEPNotFound is returned when the service does not know the CEP
	ErrCEPNotFound = errors.New("viacep client: cep not found")

	// ErrInvalidCEP is returned when the input is not 8 digits
	ErrInvalidCEP = errors.New("viacep client: invalid cep")

	// ErrInternal is returned on transport or encoding failures
	ErrInternal = errors.New("viacep client: internal error")

	// ErrInvalidResponse is returned on an unexpected service response
	ErrInvalidResponse = errors.New("viacep client: invalid response")
)
