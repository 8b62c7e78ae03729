// Package brdoc provides formatting and validation helpers for Brazilian
// document and contact fields: CPF, CNH, CEP and phone numbers.
//
// All formatting functions are total: they accept arbitrary input, keep only
// digits and apply the mask progressively, so partially typed values produce
// partially applied masks. Feeding an already masked value back in is a no-op.
package brdoc

import "strings"

const (
	cpfLength    = 11
	cnhLength    = 11
	cepLength    = 8
	phoneMax     = 11
	mobileDigits = 11
)

// digitsOnly strips every non-digit rune and caps the result at max digits.
// max <= 0 means unlimited.
func digitsOnly(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if max > 0 && b.Len() == max {
			break
		}
	}
	return b.String()
}

// FormatCPF applies the CPF mask (000.000.000-00) progressively.
func FormatCPF(s string) string {
	d := digitsOnly(s, cpfLength)
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "." + d[3:]
	case len(d) <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

// IsValidCPF validates the two modulo-11 check digits of a CPF.
// Strings that do not contain exactly 11 digits are rejected, as are the
// known-invalid fully repeated sequences (000..., 111..., etc.), which would
// otherwise pass the checksum.
func IsValidCPF(s string) bool {
	d := digitsOnly(s, 0)
	if len(d) != cpfLength {
		return false
	}

	repeated := true
	for i := 1; i < cpfLength; i++ {
		if d[i] != d[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return false
	}

	if cpfCheckDigit(d, 9) != int(d[9]-'0') {
		return false
	}
	return cpfCheckDigit(d, 10) == int(d[10]-'0')
}

// cpfCheckDigit computes the check digit over the first n digits of d,
// with weights n+1 down to 2.
func cpfCheckDigit(d string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(d[i]-'0') * (n + 1 - i)
	}
	digit := sum * 10 % 11
	if digit == 10 {
		digit = 0
	}
	return digit
}

// FormatPhone applies the Brazilian phone mask progressively:
// "(DD", "(DD) DDDD", "(DD) DDDD-DDDD" for 10 digits and
// "(DD) DDDDD-DDDD" for 11-digit mobile numbers.
func FormatPhone(s string) string {
	d := digitsOnly(s, phoneMax)
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 2:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case len(d) < mobileDigits:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// FormatCNH keeps only the digits of a CNH number.
func FormatCNH(s string) string {
	return digitsOnly(s, cnhLength)
}

// FormatCEP applies the CEP mask (00000-000) progressively.
func FormatCEP(s string) string {
	d := digitsOnly(s, cepLength)
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// IsValidCEP reports whether the input contains exactly 8 digits.
func IsValidCEP(s string) bool {
	return len(digitsOnly(s, 0)) == cepLength
}

// Digits exposes the bare digit string of any masked value.
func Digits(s string) string {
	return digitsOnly(s, 0)
}
