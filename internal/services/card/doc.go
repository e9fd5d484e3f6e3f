/*
Package card implements the dual-balance ATM card: a revolving credit
line and a savings ledger held under a single password gate.

The card keeps two independently constrained balances. The credit
balance is the available (unused) portion of the credit line, so a card
with nothing drawn has creditBalance == creditLimit, and the amount
currently owed is creditLimit - creditBalance. The savings balance is a
plain cash ledger with no ceiling.

Usage:

	c, err := card.NewCard(card.Config{
	    Number:         "5412750123456789",
	    CVV:            "123",
	    Expiry:         "09/27",
	    CreditLimit:    1000,
	    SavingsBalance: 500,
	    Password:       "2468",
	}, nil)

	// Pay for a purchase from either ledger
	remaining, err := c.Pay(250, card.AccountCredit, "2468")

	// Pay down the credit line from savings
	applied, credit, err := c.TransferSavingsToCredit(300, "2468")

Every operation authenticates first and validates the amount second;
a failed call never mutates either balance. Deposits to credit and
transfers from savings are capped (at the credit headroom and the
outstanding debt respectively) and report the amount actually applied,
which may be smaller than requested. A capped apply is a success, not
an error.

Error Handling:

The package returns sentinel errors for each failure mode:
  - ErrAuthenticationFailed: password mismatch
  - ErrInvalidAmount: amount <= 0
  - ErrInvalidAccountType: account is neither credit nor savings
  - ErrInsufficientCredit: pay request exceeds available credit
  - ErrInsufficientSavings: pay or transfer request exceeds savings
*/
package card
