package valueobjects

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusVerified PaymentStatus = "verified"
	PaymentStatusFailed   PaymentStatus = "failed"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusVerified, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) IsVerified() bool {
	return s == PaymentStatusVerified
}

func (s PaymentStatus) IsFinal() bool {
	return s == PaymentStatusVerified || s == PaymentStatusFailed
}

func (s PaymentStatus) String() string {
	return string(s)
}
