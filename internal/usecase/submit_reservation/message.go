package submit_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/brdoc"
)

// buildMessage renders the reservation summary the customer sends over the
// chat. Location ids are resolved to display names via the cached list; an
// id the cache no longer knows is printed as-is rather than dropped.
func buildMessage(d *domain.ReservationDraft, vehicle *domain.Vehicle, locations []*domain.Location) string {
	names := make(map[string]string, len(locations))
	for _, loc := range locations {
		names[loc.ID] = loc.Name
	}

	var b strings.Builder
	b.WriteString("Olá! Gostaria de reservar um veículo.\n\n")

	b.WriteString(fmt.Sprintf("*Veículo:* %s\n", vehicle.Name))
	if d.PickupLocationID != nil {
		b.WriteString(fmt.Sprintf("*Retirada:* %s\n", resolveName(names, *d.PickupLocationID)))
	}
	if d.ReturnLocationID != nil {
		b.WriteString(fmt.Sprintf("*Devolução:* %s\n", resolveName(names, *d.ReturnLocationID)))
	}
	b.WriteString(fmt.Sprintf("*Data de retirada:* %s%s\n", deref(d.PickupDate), atTime(d.PickupTime)))
	b.WriteString(fmt.Sprintf("*Data de devolução:* %s%s\n", deref(d.ReturnDate), atTime(d.ReturnTime)))

	b.WriteString("\n*Dados pessoais:*\n")
	b.WriteString(fmt.Sprintf("Nome: %s\n", deref(d.Name)))
	if d.CPF != nil {
		b.WriteString(fmt.Sprintf("CPF: %s\n", brdoc.FormatCPF(*d.CPF)))
	}
	if d.CNH != nil && *d.CNH != "" {
		b.WriteString(fmt.Sprintf("CNH: %s\n", brdoc.FormatCNH(*d.CNH)))
	}
	b.WriteString(fmt.Sprintf("Telefone: %s\n", brdoc.FormatPhone(deref(d.Phone))))
	if d.Email != nil && *d.Email != "" {
		b.WriteString(fmt.Sprintf("E-mail: %s\n", *d.Email))
	}

	if hasAddress(d) {
		b.WriteString("\n*Endereço:*\n")
		if d.CEP != nil && *d.CEP != "" {
			b.WriteString(fmt.Sprintf("CEP: %s\n", brdoc.FormatCEP(*d.CEP)))
		}
		line := strings.TrimSpace(fmt.Sprintf("%s, %s", deref(d.Street), deref(d.Number)))
		line = strings.Trim(line, ", ")
		if line != "" {
			b.WriteString(line)
			if d.Complement != nil && *d.Complement != "" {
				b.WriteString(" - " + *d.Complement)
			}
			b.WriteString("\n")
		}
		cityLine := strings.Trim(fmt.Sprintf("%s, %s - %s", deref(d.Neighborhood), deref(d.City), deref(d.State)), " ,-")
		if cityLine != "" {
			b.WriteString(cityLine + "\n")
		}
	}

	return b.String()
}

func resolveName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}

func atTime(t *string) string {
	if t == nil || *t == "" {
		return ""
	}
	return " às " + *t
}

func hasAddress(d *domain.ReservationDraft) bool {
	return (d.CEP != nil && *d.CEP != "") ||
		(d.Street != nil && *d.Street != "") ||
		(d.City != nil && *d.City != "")
}
