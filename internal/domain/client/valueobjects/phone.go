package valueobjects

import (
	"fmt"
	"strings"
	"unicode"
)

// localDigits is the required length of the national significant number.
const localDigits = 10

// Phone is a normalized E.164 phone number with a country code prefix.
type Phone struct {
	value string
}

// NewPhone validates a local phone number and normalizes it with the given
// country code (e.g. "+91"). The local part must be exactly ten digits;
// spaces and dashes are stripped before validation.
func NewPhone(local, countryCode string) (Phone, error) {
	if countryCode == "" || countryCode[0] != '+' {
		return Phone{}, fmt.Errorf("invalid country code: %q", countryCode)
	}

	var b strings.Builder
	for _, r := range local {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-':
			// separators are tolerated
		default:
			return Phone{}, fmt.Errorf("phone number contains invalid character %q", r)
		}
	}
	digits := b.String()

	// Accept an already-prefixed number as long as the local part checks out.
	if cc := strings.TrimPrefix(countryCode, "+"); strings.HasPrefix(digits, cc) && len(digits) == len(cc)+localDigits {
		digits = digits[len(cc):]
	}

	if len(digits) != localDigits {
		return Phone{}, fmt.Errorf("phone number must be exactly %d digits, got %d", localDigits, len(digits))
	}

	return Phone{value: countryCode + digits}, nil
}

// ReconstructPhone wraps an already-normalized stored value.
func ReconstructPhone(value string) Phone {
	return Phone{value: value}
}

func (p Phone) String() string {
	return p.value
}

// LocalNumber returns the national significant number without the country code.
func (p Phone) LocalNumber() string {
	if len(p.value) > localDigits {
		return p.value[len(p.value)-localDigits:]
	}
	return p.value
}

func (p Phone) IsZero() bool {
	return p.value == ""
}
