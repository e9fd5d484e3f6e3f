package handlers

import (
	"github.com/gofiber/fiber/v2"

	"kaha/internal/repositories"
	"kaha/internal/services/cash"
	"kaha/internal/utils"
)

// CashHandler exposes cash tenders over HTTP.
type CashHandler struct {
	store *repositories.Store
}

func NewCashHandler(store *repositories.Store) *CashHandler {
	return &CashHandler{store: store}
}

func (h *CashHandler) CreatePayment(c *fiber.Ctx) error {
	var input struct {
		ReceiptNumber  string  `json:"receipt_number"`
		AmountDue      float64 `json:"amount_due"`
		AmountReceived float64 `json:"amount_received"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	p, err := cash.NewPayment(input.ReceiptNumber, input.AmountDue, input.AmountReceived)
	if err != nil {
		return respondError(c, err)
	}

	h.store.PutPayment(p)
	return utils.Created(c, fiber.Map{"receipt": p.Receipt()})
}

func (h *CashHandler) UpdateReceived(c *fiber.Ctx) error {
	var input struct {
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	p, err := h.store.GetPayment(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	if err := p.SetReceived(input.Amount); err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"receipt": p.Receipt()})
}

func (h *CashHandler) Receipt(c *fiber.Ctx) error {
	p, err := h.store.GetPayment(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.Success(c, fiber.Map{"receipt": p.Receipt()})
}
