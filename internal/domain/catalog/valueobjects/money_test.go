package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMoney(t *testing.T) {
	m := NewMoney(150000, "INR")
	assert.Equal(t, int64(150000), m.AmountInPaise())
	assert.Equal(t, 1500.0, m.AmountInRupees())
	assert.Equal(t, "INR", m.Currency())
	assert.True(t, m.IsPositive())
}

func TestNewMoney_DefaultCurrency(t *testing.T) {
	m := NewMoney(100, "")
	assert.Equal(t, "INR", m.Currency())
}

func TestNewMoneyFromRupees(t *testing.T) {
	m := NewMoneyFromRupees(499, "INR")
	assert.Equal(t, int64(49900), m.AmountInPaise())
	assert.Equal(t, 499.0, m.AmountInRupees())
}

func TestMoney_Equals(t *testing.T) {
	a := NewMoney(500, "INR")
	b := NewMoneyFromRupees(5, "INR")
	c := NewMoney(500, "USD")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestMoney_IsPositive(t *testing.T) {
	assert.False(t, NewMoney(0, "INR").IsPositive())
	assert.False(t, NewMoney(-100, "INR").IsPositive())
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "1500.50 INR", NewMoney(150050, "INR").String())
}
