package valueobjects

import "fmt"

// Money is an amount in the smallest currency unit (paise for INR).
type Money struct {
	amountInPaise int64
	currency      string
}

func NewMoney(amountInPaise int64, currency string) Money {
	if currency == "" {
		currency = "INR"
	}
	return Money{
		amountInPaise: amountInPaise,
		currency:      currency,
	}
}

// NewMoneyFromRupees converts a whole-rupee amount to Money.
func NewMoneyFromRupees(rupees int64, currency string) Money {
	return NewMoney(rupees*100, currency)
}

func (m Money) AmountInPaise() int64 {
	return m.amountInPaise
}

func (m Money) AmountInRupees() float64 {
	return float64(m.amountInPaise) / 100.0
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) Equals(other Money) bool {
	return m.amountInPaise == other.amountInPaise && m.currency == other.currency
}

func (m Money) IsPositive() bool {
	return m.amountInPaise > 0
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.AmountInRupees(), m.currency)
}
