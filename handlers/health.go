package handlers

import "github.com/gofiber/fiber/v2"

// Health reports liveness. It does not touch the data service.
func (h *ApplicationHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"message": "Chapter viewer is healthy",
	})
}
