package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	p, err := NewPhone("9876543210", "+91")
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", p.String())
	assert.Equal(t, "9876543210", p.LocalNumber())
	assert.False(t, p.IsZero())
}

func TestNewPhone_StripsSeparators(t *testing.T) {
	p, err := NewPhone("98765 432-10", "+91")
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", p.String())
}

func TestNewPhone_AcceptsPrefixedNumber(t *testing.T) {
	p, err := NewPhone("919876543210", "+91")
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", p.String())
}

func TestNewPhone_Invalid(t *testing.T) {
	cases := []struct {
		name        string
		local       string
		countryCode string
	}{
		{"too short", "12345", "+91"},
		{"too long", "98765432101", "+91"},
		{"letters", "98765abcde", "+91"},
		{"missing plus", "9876543210", "91"},
		{"empty country code", "9876543210", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPhone(tc.local, tc.countryCode)
			assert.Error(t, err)
		})
	}
}

func TestReconstructPhone(t *testing.T) {
	p := ReconstructPhone("+919876543210")
	assert.Equal(t, "+919876543210", p.String())
	assert.Equal(t, "9876543210", p.LocalNumber())

	assert.True(t, ReconstructPhone("").IsZero())
}
