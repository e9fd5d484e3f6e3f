// Package cash implements the cash tender for a purchase: an amount
// due, the amount handed over, and the change owed back.
package cash

import (
	"sync"

	"github.com/google/uuid"
)

// Payment records one cash tender. The amount received always covers
// the amount due; a tender that falls short is rejected up front.
type Payment struct {
	mu sync.Mutex

	receiptNumber  string
	amountDue      float64
	amountReceived float64
}

// Receipt is the displayable record of a cash payment.
type Receipt struct {
	ReceiptNumber  string  `json:"receipt_number"`
	AmountDue      float64 `json:"amount_due"`
	AmountReceived float64 `json:"amount_received"`
	Change         float64 `json:"change"`
	Exact          bool    `json:"exact"`
}

// NewPayment creates a cash payment. An empty receipt number gets a
// generated one.
func NewPayment(receiptNumber string, due, received float64) (*Payment, error) {
	if due <= 0 {
		return nil, ErrInvalidAmount
	}
	if received < due {
		return nil, ErrInsufficientCash
	}
	if receiptNumber == "" {
		receiptNumber = uuid.NewString()
	}
	return &Payment{
		receiptNumber:  receiptNumber,
		amountDue:      due,
		amountReceived: received,
	}, nil
}

// SetReceived replaces the tendered amount, e.g. when the customer
// hands over different bills. The new amount must still cover the due.
func (p *Payment) SetReceived(amount float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if amount < p.amountDue {
		return ErrInsufficientCash
	}
	p.amountReceived = amount
	return nil
}

// Change returns the amount owed back to the customer.
func (p *Payment) Change() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.amountReceived - p.amountDue
}

// Exact reports whether the tender matched the due amount exactly.
func (p *Payment) Exact() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.amountReceived == p.amountDue
}

// ReceiptNumber returns the payment's receipt number.
func (p *Payment) ReceiptNumber() string {
	return p.receiptNumber
}

// Receipt returns the displayable record of the payment.
func (p *Payment) Receipt() Receipt {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Receipt{
		ReceiptNumber:  p.receiptNumber,
		AmountDue:      p.amountDue,
		AmountReceived: p.amountReceived,
		Change:         p.amountReceived - p.amountDue,
		Exact:          p.amountReceived == p.amountDue,
	}
}
