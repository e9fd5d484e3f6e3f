package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"kaha/internal/repositories"
	"kaha/internal/services/bank"
	"kaha/internal/services/card"
	"kaha/internal/services/cash"
	"kaha/internal/services/checkout"
	"kaha/internal/services/ewallet"
	"kaha/internal/utils"
)

// respondError maps domain errors onto HTTP statuses: failed
// authentication is 401, a shortfall on any ledger is 402, unknown ids
// are 404, and everything else the services reject is a 400.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, card.ErrAuthenticationFailed):
		return utils.Unauthorized(c, err.Error())
	case errors.Is(err, card.ErrInsufficientCredit),
		errors.Is(err, card.ErrInsufficientSavings),
		errors.Is(err, bank.ErrInsufficientBalance),
		errors.Is(err, ewallet.ErrInsufficientBalance),
		errors.Is(err, cash.ErrInsufficientCash):
		return utils.PaymentRequired(c, err.Error())
	case errors.Is(err, repositories.ErrCardNotFound),
		errors.Is(err, repositories.ErrAccountNotFound),
		errors.Is(err, repositories.ErrWalletNotFound),
		errors.Is(err, repositories.ErrPaymentNotFound):
		return utils.NotFound(c, err.Error())
	case errors.Is(err, card.ErrInvalidAmount),
		errors.Is(err, card.ErrInvalidAccountType),
		errors.Is(err, bank.ErrInvalidAmount),
		errors.Is(err, ewallet.ErrInvalidAmount),
		errors.Is(err, cash.ErrInvalidAmount),
		errors.Is(err, checkout.ErrUnknownProduct),
		errors.Is(err, checkout.ErrInvalidQuantity):
		return utils.BadRequest(c, err.Error())
	default:
		return utils.InternalError(c, err.Error())
	}
}
