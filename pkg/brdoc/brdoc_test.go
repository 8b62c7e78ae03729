package brdoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RentalService/pkg/brdoc"
)

func TestFormatCPF(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"partial three digits", "123", "123"},
		{"partial five digits", "12345", "123.45"},
		{"partial eight digits", "12345678", "123.456.78"},
		{"full", "12345678901", "123.456.789-01"},
		{"already masked is a no-op", "123.456.789-01", "123.456.789-01"},
		{"letters stripped", "123abc456", "123.456"},
		{"excess digits dropped", "123456789012345", "123.456.789-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, brdoc.FormatCPF(tt.input))
		})
	}
}

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid bare", "52998224725", true},
		{"valid masked", "529.982.247-25", true},
		{"wrong check digit", "52998224726", false},
		{"repeated digits", "11111111111", false},
		{"all zeros", "00000000000", false},
		{"too short", "5299822472", false},
		{"too long", "529982247251", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, brdoc.IsValidCPF(tt.input))
		})
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"area code only", "21", "(21"},
		{"partial", "21999", "(21) 999"},
		{"landline", "2134567890", "(21) 3456-7890"},
		{"mobile", "21999998888", "(21) 99999-8888"},
		{"already masked is a no-op", "(21) 99999-8888", "(21) 99999-8888"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, brdoc.FormatPhone(tt.input))
		})
	}
}

func TestFormatCEP(t *testing.T) {
	assert.Equal(t, "20040-020", brdoc.FormatCEP("20040020"))
	assert.Equal(t, "20040", brdoc.FormatCEP("20040"))
	assert.Equal(t, "20040-020", brdoc.FormatCEP("20040-020"))
	assert.Equal(t, "", brdoc.FormatCEP(""))
}

func TestIsValidCEP(t *testing.T) {
	assert.True(t, brdoc.IsValidCEP("20040020"))
	assert.True(t, brdoc.IsValidCEP("20040-020"))
	assert.False(t, brdoc.IsValidCEP("2004002"))
	assert.False(t, brdoc.IsValidCEP("200400201"))
	assert.False(t, brdoc.IsValidCEP(""))
}

func TestFormatCNH(t *testing.T) {
	assert.Equal(t, "12345678901", brdoc.FormatCNH("123.456.789-01"))
	assert.Equal(t, "12345678901", brdoc.FormatCNH("123456789012345"))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "52998224725", brdoc.Digits("529.982.247-25"))
	assert.Equal(t, "", brdoc.Digits("abc"))
}
