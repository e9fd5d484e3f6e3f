package cash

import "errors"

var (
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
	ErrInsufficientCash = errors.New("amount received does not cover the total")
)
