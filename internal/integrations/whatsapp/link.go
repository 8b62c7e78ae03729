// Package whatsapp builds the deep link that hands the reservation summary
// over to the messaging app. Nothing is sent from the server: the client
// navigates to the link and the conversation continues there.
package whatsapp

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/m04kA/SMC-RentalService/pkg/brdoc"
)

// ErrInvalidNumber is returned when the destination number has no digits.
var ErrInvalidNumber = errors.New("whatsapp: invalid destination number")

// LinkBuilder produces whatsapp:// deep links for a fixed destination number.
type LinkBuilder struct {
	number string // digits with country code, e.g. "5521999990000"
}

// NewLinkBuilder validates the destination number once at wiring time.
func NewLinkBuilder(number string) (*LinkBuilder, error) {
	digits := brdoc.Digits(number)
	if digits == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, number)
	}
	return &LinkBuilder{number: digits}, nil
}

// Build returns the deep link carrying the url-encoded message text.
func (b *LinkBuilder) Build(text string) string {
	return fmt.Sprintf("whatsapp://%s?text=%s", b.number, url.QueryEscape(text))
}
