// Package ewallet implements the e-wallet payment source: an owner
// name and one spendable balance topped up by cash-ins.
package ewallet

import "sync"

// Wallet is a flat single-balance ledger owned by one person.
type Wallet struct {
	mu      sync.Mutex
	owner   string
	balance float64
}

// NewWallet creates a wallet with the given opening balance. A negative
// opening balance is clamped to zero.
func NewWallet(owner string, opening float64) *Wallet {
	if opening < 0 {
		opening = 0
	}
	return &Wallet{owner: owner, balance: opening}
}

// Owner returns the wallet owner's name.
func (w *Wallet) Owner() string {
	return w.owner
}

// CashIn adds amount to the balance and returns the new balance.
func (w *Wallet) CashIn(amount float64) (float64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	w.balance += amount
	return w.balance, nil
}

// CashOut removes amount from the balance and returns the new balance.
func (w *Wallet) CashOut(amount float64) (float64, error) {
	return w.debit(amount)
}

// Send pays amount out of the wallet and returns the new balance.
func (w *Wallet) Send(amount float64) (float64, error) {
	return w.debit(amount)
}

func (w *Wallet) debit(amount float64) (float64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if amount > w.balance {
		return 0, ErrInsufficientBalance
	}
	w.balance -= amount
	return w.balance, nil
}

// Balance returns the current balance.
func (w *Wallet) Balance() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}
