package handler

import (
	"go-catalog-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	rows, err := h.service.ListInventory()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

func (h *InventoryHandler) CreateInventory(c *fiber.Ctx) error {
	var in service.CreateInventoryInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.service.CreateInventory(&in)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(created)
}
