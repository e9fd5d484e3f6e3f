package handlers

import (
	"github.com/gofiber/fiber/v2"

	"kaha/internal/repositories"
	"kaha/internal/services/card"
	"kaha/internal/utils"
)

// CardHandler exposes the dual-balance card operations over HTTP. The
// card password travels in the request body; the handler forwards it
// untouched and lets the card decide.
type CardHandler struct {
	store *repositories.Store
}

func NewCardHandler(store *repositories.Store) *CardHandler {
	return &CardHandler{store: store}
}

func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	var input struct {
		CardNumber     string  `json:"card_number"`
		CVV            string  `json:"cvv"`
		Expiry         string  `json:"expiry"`
		CreditLimit    float64 `json:"credit_limit"`
		SavingsBalance float64 `json:"savings_balance"`
		Password       string  `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	newCard, err := card.NewCard(card.Config{
		Number:         input.CardNumber,
		CVV:            input.CVV,
		Expiry:         input.Expiry,
		CreditLimit:    input.CreditLimit,
		SavingsBalance: input.SavingsBalance,
		Password:       input.Password,
	}, nil)
	if err != nil {
		return respondError(c, err)
	}

	id := h.store.PutCard(newCard)
	return utils.Created(c, fiber.Map{"id": id})
}

func (h *CardHandler) Pay(c *fiber.Ctx) error {
	var input struct {
		Amount   float64 `json:"amount"`
		Account  string  `json:"account"`
		Password string  `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	cd, err := h.store.GetCard(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	// The raw account string goes straight to the card: authentication
	// must be checked before the account type, so the card does both.
	balance, err := cd.Pay(input.Amount, card.AccountType(input.Account), input.Password)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{
		"account": input.Account,
		"balance": balance,
	})
}

func (h *CardHandler) Deposit(c *fiber.Ctx) error {
	var input struct {
		Amount   float64 `json:"amount"`
		Account  string  `json:"account"`
		Password string  `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	cd, err := h.store.GetCard(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	applied, err := cd.Deposit(input.Amount, card.AccountType(input.Account), input.Password)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{
		"account":   input.Account,
		"requested": input.Amount,
		"applied":   applied,
	})
}

func (h *CardHandler) Transfer(c *fiber.Ctx) error {
	var input struct {
		Amount   float64 `json:"amount"`
		Password string  `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	cd, err := h.store.GetCard(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	applied, creditBalance, err := cd.TransferSavingsToCredit(input.Amount, input.Password)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{
		"requested":      input.Amount,
		"applied":        applied,
		"credit_balance": creditBalance,
	})
}

func (h *CardHandler) Balance(c *fiber.Ctx) error {
	var input struct {
		Account  string `json:"account"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	cd, err := h.store.GetCard(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	balance, err := cd.Balance(card.AccountType(input.Account), input.Password)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{
		"account": input.Account,
		"balance": balance,
	})
}

func (h *CardHandler) Details(c *fiber.Ctx) error {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	cd, err := h.store.GetCard(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	details, err := cd.Details(input.Password)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"card": details})
}

func (h *CardHandler) History(c *fiber.Ctx) error {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	cd, err := h.store.GetCard(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	events, err := cd.History(input.Password)
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"events": events})
}
