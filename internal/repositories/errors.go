package repositories

import "errors"

// Lookup errors, one per stored kind. Handlers map these to 404.
var (
	ErrCardNotFound    = errors.New("card not found")
	ErrAccountNotFound = errors.New("bank account not found")
	ErrWalletNotFound  = errors.New("wallet not found")
	ErrPaymentNotFound = errors.New("cash payment not found")
)
