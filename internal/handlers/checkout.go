package handlers

import (
	"github.com/gofiber/fiber/v2"

	"kaha/internal/services/checkout"
	"kaha/internal/utils"
)

// CheckoutHandler exposes the product catalog and order pricing.
type CheckoutHandler struct {
	catalog *checkout.Catalog
}

func NewCheckoutHandler(catalog *checkout.Catalog) *CheckoutHandler {
	return &CheckoutHandler{catalog: catalog}
}

func (h *CheckoutHandler) ListProducts(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{
		"currency": h.catalog.Currency(),
		"products": h.catalog.Products(),
	})
}

func (h *CheckoutHandler) PriceOrder(c *fiber.Ctx) error {
	var input struct {
		Items []struct {
			ProductID int `json:"product_id"`
			Quantity  int `json:"quantity"`
		} `json:"items"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	order := checkout.NewOrder(h.catalog)
	for _, item := range input.Items {
		if err := order.Add(item.ProductID, item.Quantity); err != nil {
			return respondError(c, err)
		}
	}

	return utils.Success(c, fiber.Map{
		"currency": h.catalog.Currency(),
		"lines":    order.Lines(),
		"total":    order.Total(),
	})
}
