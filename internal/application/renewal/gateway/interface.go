// Package gateway defines the payment gateway port used by the renewal
// use cases.
package gateway

import "context"

// Order is the gateway-side order created ahead of a hosted checkout.
// Amount is in the smallest currency unit (paise for INR).
type Order struct {
	ID       string
	Amount   int64
	Currency string
}

// PaymentGateway abstracts the upstream payment provider.
type PaymentGateway interface {
	// CreateOrder registers an order with the gateway and returns its ID.
	CreateOrder(ctx context.Context, amount int64, currency string) (*Order, error)

	// VerifySignature checks the settlement signature the checkout handed
	// back to the browser. It must use a constant-time comparison.
	VerifySignature(orderID, paymentID, signature string) error
}
