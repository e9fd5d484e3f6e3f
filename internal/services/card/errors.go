package card

import "errors"

// Card errors. Failed operations leave both balances untouched.
var (
	ErrAuthenticationFailed = errors.New("incorrect password")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrInsufficientCredit   = errors.New("insufficient credit balance")
	ErrInsufficientSavings  = errors.New("insufficient savings balance")
)
