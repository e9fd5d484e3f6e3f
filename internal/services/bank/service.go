// Package bank implements the bank-backed payment source: a single
// cash balance tied to a named account at a bank.
package bank

import (
	"sync"

	"github.com/google/uuid"

	"kaha/internal/models"
)

// Config identifies the account. The opening balance is always zero;
// funds arrive through Deposit. PaymentID is generated when empty.
type Config struct {
	BankName      string
	AccountName   string
	AccountNumber string
	Currency      string
	PaymentID     string
	Amount        float64
}

// Details is the displayable account record.
type Details struct {
	BankName      string                `json:"bank_name"`
	AccountName   string                `json:"account_name"`
	AccountNumber string                `json:"account_number"`
	Currency      string                `json:"currency"`
	Balance       float64               `json:"balance"`
	Payment       models.PaymentDetails `json:"payment"`
}

// Account is a flat single-balance ledger. The balance never goes
// negative; a withdrawal or payment that would overdraw it fails and
// leaves the balance untouched.
type Account struct {
	mu sync.Mutex

	bankName      string
	accountName   string
	accountNumber string
	currency      string
	payment       models.PaymentDetails
	balance       float64
}

// NewAccount creates an empty account.
func NewAccount(cfg Config) *Account {
	if cfg.Currency == "" {
		cfg.Currency = "PHP"
	}
	if cfg.PaymentID == "" {
		cfg.PaymentID = uuid.NewString()
	}
	return &Account{
		bankName:      cfg.BankName,
		accountName:   cfg.AccountName,
		accountNumber: cfg.AccountNumber,
		currency:      cfg.Currency,
		payment: models.PaymentDetails{
			PaymentID: cfg.PaymentID,
			Amount:    cfg.Amount,
			Currency:  cfg.Currency,
		},
	}
}

// Deposit adds amount to the balance and returns the new balance.
func (a *Account) Deposit(amount float64) (float64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	a.balance += amount
	return a.balance, nil
}

// Withdraw removes amount from the balance and returns the new balance.
func (a *Account) Withdraw(amount float64) (float64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if amount > a.balance {
		return 0, ErrInsufficientBalance
	}
	a.balance -= amount
	return a.balance, nil
}

// ProcessPayment settles a purchase total from the balance and returns
// the new balance.
func (a *Account) ProcessPayment(due float64) (float64, error) {
	return a.Withdraw(due)
}

// Balance returns the current balance.
func (a *Account) Balance() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Details returns the displayable account record.
func (a *Account) Details() Details {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Details{
		BankName:      a.bankName,
		AccountName:   a.accountName,
		AccountNumber: a.accountNumber,
		Currency:      a.currency,
		Balance:       a.balance,
		Payment:       a.payment,
	}
}

// PaymentDetails returns the pending payment descriptor for display.
func (a *Account) PaymentDetails() models.PaymentDetails {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.payment
}
