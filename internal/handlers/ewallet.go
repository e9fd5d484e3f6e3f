package handlers

import (
	"github.com/gofiber/fiber/v2"

	"kaha/internal/repositories"
	"kaha/internal/services/ewallet"
	"kaha/internal/utils"
)

// WalletHandler exposes the e-wallet over HTTP.
type WalletHandler struct {
	store *repositories.Store
}

func NewWalletHandler(store *repositories.Store) *WalletHandler {
	return &WalletHandler{store: store}
}

func (h *WalletHandler) CreateWallet(c *fiber.Ctx) error {
	var input struct {
		Owner          string  `json:"owner"`
		OpeningBalance float64 `json:"opening_balance"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	w := ewallet.NewWallet(input.Owner, input.OpeningBalance)
	id := h.store.PutWallet(w)
	return utils.Created(c, fiber.Map{
		"id":      id,
		"owner":   w.Owner(),
		"balance": w.Balance(),
	})
}

func (h *WalletHandler) CashIn(c *fiber.Ctx) error {
	return h.mutate(c, func(w *ewallet.Wallet, amount float64) (float64, error) {
		return w.CashIn(amount)
	})
}

func (h *WalletHandler) CashOut(c *fiber.Ctx) error {
	return h.mutate(c, func(w *ewallet.Wallet, amount float64) (float64, error) {
		return w.CashOut(amount)
	})
}

func (h *WalletHandler) Send(c *fiber.Ctx) error {
	return h.mutate(c, func(w *ewallet.Wallet, amount float64) (float64, error) {
		return w.Send(amount)
	})
}

func (h *WalletHandler) mutate(c *fiber.Ctx, op func(*ewallet.Wallet, float64) (float64, error)) error {
	var input struct {
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	w, err := h.store.GetWallet(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	balance, err := op(w, input.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"balance": balance})
}

func (h *WalletHandler) Balance(c *fiber.Ctx) error {
	w, err := h.store.GetWallet(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{
		"owner":   w.Owner(),
		"balance": w.Balance(),
	})
}
