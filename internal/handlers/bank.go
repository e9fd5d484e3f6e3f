package handlers

import (
	"github.com/gofiber/fiber/v2"

	"kaha/internal/repositories"
	"kaha/internal/services/bank"
	"kaha/internal/utils"
)

// BankHandler exposes the bank-backed account over HTTP.
type BankHandler struct {
	store *repositories.Store
}

func NewBankHandler(store *repositories.Store) *BankHandler {
	return &BankHandler{store: store}
}

func (h *BankHandler) CreateAccount(c *fiber.Ctx) error {
	var input struct {
		BankName      string  `json:"bank_name"`
		AccountName   string  `json:"account_name"`
		AccountNumber string  `json:"account_number"`
		Currency      string  `json:"currency"`
		PaymentID     string  `json:"payment_id"`
		Amount        float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	account := bank.NewAccount(bank.Config{
		BankName:      input.BankName,
		AccountName:   input.AccountName,
		AccountNumber: input.AccountNumber,
		Currency:      input.Currency,
		PaymentID:     input.PaymentID,
		Amount:        input.Amount,
	})
	id := h.store.PutAccount(account)
	return utils.Created(c, fiber.Map{"id": id})
}

func (h *BankHandler) Deposit(c *fiber.Ctx) error {
	return h.mutate(c, func(a *bank.Account, amount float64) (float64, error) {
		return a.Deposit(amount)
	})
}

func (h *BankHandler) Withdraw(c *fiber.Ctx) error {
	return h.mutate(c, func(a *bank.Account, amount float64) (float64, error) {
		return a.Withdraw(amount)
	})
}

func (h *BankHandler) Pay(c *fiber.Ctx) error {
	return h.mutate(c, func(a *bank.Account, amount float64) (float64, error) {
		return a.ProcessPayment(amount)
	})
}

func (h *BankHandler) mutate(c *fiber.Ctx, op func(*bank.Account, float64) (float64, error)) error {
	var input struct {
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	account, err := h.store.GetAccount(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	balance, err := op(account, input.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"balance": balance})
}

func (h *BankHandler) Details(c *fiber.Ctx) error {
	account, err := h.store.GetAccount(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"account": account.Details()})
}
