package whatsapp_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/integrations/whatsapp"
)

func TestNewLinkBuilder(t *testing.T) {
	b, err := whatsapp.NewLinkBuilder("+55 (21) 99999-0000")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(b.Build("oi"), "whatsapp://5521999990000?text="))

	_, err = whatsapp.NewLinkBuilder("not a number")
	assert.ErrorIs(t, err, whatsapp.ErrInvalidNumber)

	_, err = whatsapp.NewLinkBuilder("")
	assert.ErrorIs(t, err, whatsapp.ErrInvalidNumber)
}

func TestBuild_EncodesMessage(t *testing.T) {
	b, err := whatsapp.NewLinkBuilder("5521999990000")
	require.NoError(t, err)

	message := "Olá! Gostaria de reservar um veículo.\n\n*Veículo:* Chevrolet Onix"
	link := b.Build(message)

	encoded := strings.TrimPrefix(link, "whatsapp://5521999990000?text=")
	assert.NotContains(t, encoded, " ", "spaces must be escaped")
	assert.NotContains(t, encoded, "\n")

	decoded, err := url.QueryUnescape(encoded)
	require.NoError(t, err)
	assert.Equal(t, message, decoded, "round-trips through url encoding")
}
