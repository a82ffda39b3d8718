package roster

import (
	"github.com/gofiber/fiber/v2"
)

type RosterController struct {
	service RosterService
}

func NewRosterController(service RosterService) *RosterController {
	return &RosterController{
		service: service,
	}
}

// Import godoc
func (c *RosterController) Import(ctx *fiber.Ctx) error {
	imported, skipped, err := c.service.Import(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"imported": imported,
		"skipped":  skipped,
	})
}
