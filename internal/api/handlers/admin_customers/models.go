package admin_customers

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/brdoc"
)

// CustomerRequest HTTP request model for create/update. Document fields
// accept any formatting; the service normalizes them to digits.
type CustomerRequest struct {
	Name      string  `json:"name"`
	CPF       string  `json:"cpf"`
	CNH       string  `json:"cnh"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	BirthDate *string `json:"birthDate,omitempty"` // "2006-01-02"

	CEP          string  `json:"cep"`
	Street       string  `json:"street"`
	Number       string  `json:"number"`
	Complement   *string `json:"complement,omitempty"`
	Neighborhood string  `json:"neighborhood"`
	City         string  `json:"city"`
	State        string  `json:"state"`
}

// CustomerResponse HTTP response model. Documents go out in display form.
type CustomerResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	CPF       string  `json:"cpf"`
	CNH       string  `json:"cnh"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	BirthDate *string `json:"birthDate,omitempty"`

	CEP          string  `json:"cep"`
	Street       string  `json:"street"`
	Number       string  `json:"number"`
	Complement   *string `json:"complement,omitempty"`
	Neighborhood string  `json:"neighborhood"`
	City         string  `json:"city"`
	State        string  `json:"state"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ListResponse HTTP response model for the customer list
type ListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// ToDomain converts the request to a domain customer
func (r *CustomerRequest) ToDomain() (*domain.Customer, error) {
	c := &domain.Customer{
		Name:         r.Name,
		CPF:          r.CPF,
		CNH:          r.CNH,
		Phone:        r.Phone,
		Email:        r.Email,
		CEP:          r.CEP,
		Street:       r.Street,
		Number:       r.Number,
		Complement:   r.Complement,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		State:        r.State,
	}

	if r.BirthDate != nil && *r.BirthDate != "" {
		birth, err := time.Parse(domain.DateFormat, *r.BirthDate)
		if err != nil {
			return nil, err
		}
		c.BirthDate = &birth
	}

	return c, nil
}

// FromDomain converts a domain customer to the HTTP model
func FromDomain(c *domain.Customer) CustomerResponse {
	out := CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		CPF:          brdoc.FormatCPF(c.CPF),
		CNH:          brdoc.FormatCNH(c.CNH),
		Phone:        brdoc.FormatPhone(c.Phone),
		Email:        c.Email,
		CEP:          brdoc.FormatCEP(c.CEP),
		Street:       c.Street,
		Number:       c.Number,
		Complement:   c.Complement,
		Neighborhood: c.Neighborhood,
		City:         c.City,
		State:        c.State,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt.Format(time.RFC3339),
	}

	if c.BirthDate != nil {
		birth := c.BirthDate.Format(domain.DateFormat)
		out.BirthDate = &birth
	}

	return out
}
