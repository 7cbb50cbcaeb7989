package handler

import (
	"log"

	"go-catalog-backend/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a taxonomy error onto its HTTP status. Store failures
// are logged with full detail and reported generically.
func respondError(c *fiber.Ctx, err error) error {
	status := apperr.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(status).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
