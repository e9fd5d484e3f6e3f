package card

import (
	"strings"
	"time"
)

// AccountType selects which of the card's two ledgers an operation targets.
type AccountType string

const (
	AccountCredit  AccountType = "credit"
	AccountSavings AccountType = "savings"
)

// ParseAccountType normalizes raw caller input into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(strings.ToLower(strings.TrimSpace(s))) {
	case AccountCredit:
		return AccountCredit, nil
	case AccountSavings:
		return AccountSavings, nil
	default:
		return "", ErrInvalidAccountType
	}
}

// Config holds the identity and opening state of a card. CreditLimit is
// fixed for the card's lifetime; the credit balance starts equal to it.
type Config struct {
	Number         string
	CVV            string
	Expiry         string
	CreditLimit    float64
	SavingsBalance float64
	Password       string
}

// Details is the displayable card record. The number is masked to its
// last four digits; the CVV and password are never included.
type Details struct {
	MaskedNumber    string  `json:"card_number"`
	Expiry          string  `json:"expiry"`
	CreditLimit     float64 `json:"credit_limit"`
	AvailableCredit float64 `json:"available_credit"`
	SavingsBalance  float64 `json:"savings_balance"`
}

// Event types recorded on successful mutating operations.
const (
	EventPaid        = "paid"
	EventDeposited   = "deposited"
	EventTransferred = "transferred"
)

// Event is an audit record of one successful mutating operation.
// Applied may be smaller than Requested for capped deposits and
// transfers.
type Event struct {
	Type      string      `json:"type"`
	Account   AccountType `json:"account"`
	Requested float64     `json:"requested"`
	Applied   float64     `json:"applied"`
	At        time.Time   `json:"at"`
}
