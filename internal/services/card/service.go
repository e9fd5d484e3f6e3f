package card

import (
	"fmt"
	"sync"
	"time"
)

// Card is a dual-balance payment card. All fields are unexported; the
// only way to observe or change state is through the authenticated
// operations below.
//
// Invariants, held across every operation including failed ones:
//
//	0 <= creditBalance <= creditLimit
//	savingsBalance >= 0
type Card struct {
	mu sync.Mutex

	number   string
	cvv      string
	expiry   string
	password string

	creditLimit    float64
	creditBalance  float64
	savingsBalance float64

	events  []Event
	metrics MetricsCollector
}

// NewCard creates a card with the full credit line available and the
// given opening savings balance. Metrics is optional; nil installs a
// no-op collector.
func NewCard(cfg Config, metrics MetricsCollector) (*Card, error) {
	if cfg.CreditLimit < 0 {
		return nil, fmt.Errorf("credit limit: %w", ErrInvalidAmount)
	}
	if cfg.SavingsBalance < 0 {
		return nil, fmt.Errorf("savings balance: %w", ErrInvalidAmount)
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &Card{
		number:         cfg.Number,
		cvv:            cfg.CVV,
		expiry:         cfg.Expiry,
		password:       cfg.Password,
		creditLimit:    cfg.CreditLimit,
		creditBalance:  cfg.CreditLimit,
		savingsBalance: cfg.SavingsBalance,
		metrics:        metrics,
	}, nil
}

// authenticate compares the supplied password against the stored one.
// Callers must hold c.mu.
func (c *Card) authenticate(password string) error {
	if password != c.password {
		return ErrAuthenticationFailed
	}
	return nil
}

// guard is the shared entry check for mutating operations:
// authentication first, then the positive-amount check. Every mutating
// operation calls it before touching either balance, so a rejected call
// can never leave a partial update behind.
func (c *Card) guard(password string, amount float64) error {
	if err := c.authenticate(password); err != nil {
		return err
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (c *Card) record(typ string, account AccountType, requested, applied float64) {
	c.events = append(c.events, Event{
		Type:      typ,
		Account:   account,
		Requested: requested,
		Applied:   applied,
		At:        time.Now(),
	})
	c.metrics.RecordOperation(typ, applied)
}

func (c *Card) fail(op string, err error) error {
	c.metrics.RecordError(op, err.Error())
	return err
}

// Pay draws amount from the chosen ledger and returns that ledger's
// updated balance.
func (c *Card) Pay(amount float64, account AccountType, password string) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guard(password, amount); err != nil {
		return 0, c.fail("pay", err)
	}

	switch account {
	case AccountCredit:
		if amount > c.creditBalance {
			return 0, c.fail("pay", ErrInsufficientCredit)
		}
		c.creditBalance -= amount
		c.record(EventPaid, account, amount, amount)
		return c.creditBalance, nil
	case AccountSavings:
		if amount > c.savingsBalance {
			return 0, c.fail("pay", ErrInsufficientSavings)
		}
		c.savingsBalance -= amount
		c.record(EventPaid, account, amount, amount)
		return c.savingsBalance, nil
	default:
		return 0, c.fail("pay", ErrInvalidAccountType)
	}
}

// Deposit adds amount to the chosen ledger and returns the amount
// actually applied. Savings deposits have no ceiling. Credit deposits
// are capped at the remaining headroom, so the applied amount may be
// smaller than requested; the cap is a success, not an error.
func (c *Card) Deposit(amount float64, account AccountType, password string) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guard(password, amount); err != nil {
		return 0, c.fail("deposit", err)
	}

	switch account {
	case AccountCredit:
		applied := c.creditLimit - c.creditBalance
		if amount < applied {
			applied = amount
		}
		c.creditBalance += applied
		c.record(EventDeposited, account, amount, applied)
		return applied, nil
	case AccountSavings:
		c.savingsBalance += amount
		c.record(EventDeposited, account, amount, amount)
		return amount, nil
	default:
		return 0, c.fail("deposit", ErrInvalidAccountType)
	}
}

// TransferSavingsToCredit pays down the credit line from savings. The
// requested amount is validated against the savings balance, but only
// min(amount, debt) is moved, where debt is the drawn portion of the
// credit line. With no debt the call succeeds and moves nothing.
// Returns the amount applied and the new available credit.
func (c *Card) TransferSavingsToCredit(amount float64, password string) (applied, creditBalance float64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guard(password, amount); err != nil {
		return 0, 0, c.fail("transfer", err)
	}
	if amount > c.savingsBalance {
		return 0, 0, c.fail("transfer", ErrInsufficientSavings)
	}

	payment := c.creditLimit - c.creditBalance
	if amount < payment {
		payment = amount
	}
	c.savingsBalance -= payment
	c.creditBalance += payment
	c.record(EventTransferred, AccountCredit, amount, payment)
	return payment, c.creditBalance, nil
}

// Balance returns the current value of one ledger.
func (c *Card) Balance(account AccountType, password string) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.authenticate(password); err != nil {
		return 0, c.fail("balance", err)
	}

	switch account {
	case AccountCredit:
		return c.creditBalance, nil
	case AccountSavings:
		return c.savingsBalance, nil
	default:
		return 0, c.fail("balance", ErrInvalidAccountType)
	}
}

// Details returns the displayable card record with the number masked
// to its last four digits.
func (c *Card) Details(password string) (Details, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.authenticate(password); err != nil {
		return Details{}, c.fail("details", err)
	}

	return Details{
		MaskedNumber:    maskNumber(c.number),
		Expiry:          c.expiry,
		CreditLimit:     c.creditLimit,
		AvailableCredit: c.creditBalance,
		SavingsBalance:  c.savingsBalance,
	}, nil
}

// History returns a copy of the audit log of successful mutations.
func (c *Card) History(password string) ([]Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.authenticate(password); err != nil {
		return nil, c.fail("history", err)
	}

	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out, nil
}

func maskNumber(number string) string {
	last := number
	if len(number) > 4 {
		last = number[len(number)-4:]
	}
	return "**** **** **** " + last
}
