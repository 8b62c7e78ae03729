package domain

import "time"

// Customer represents a registered customer with personal and address data
type Customer struct {
	ID        int64
	Name      string
	CPF       string // digits only
	CNH       string // digits only
	Phone     string // digits only
	Email     string
	BirthDate *time.Time

	// Address
	CEP          string // digits only
	Street       string
	Number       string
	Complement   *string
	Neighborhood string
	City         string
	State        string

	CreatedAt time.Time
	UpdatedAt time.Time
}
