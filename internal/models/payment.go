// Package models holds the small shared types that cross package
// boundaries.
package models

import "fmt"

// PaymentDetails is the descriptor every payment method shares: an
// identifier, the amount being settled, and its currency.
type PaymentDetails struct {
	PaymentID string  `json:"payment_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// Valid reports whether the payment amount is positive.
func (p PaymentDetails) Valid() bool {
	return p.Amount > 0
}

func (p PaymentDetails) String() string {
	return fmt.Sprintf("Payment ID: %s, Amount: %.2f %s", p.PaymentID, p.Amount, p.Currency)
}
