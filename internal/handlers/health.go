package handlers

import (
	"github.com/gofiber/fiber/v2"

	"kaha/internal/utils"
)

// Health reports process liveness.
func Health(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{"status": "ok"})
}
