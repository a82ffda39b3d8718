package system

import (
	"github.com/gofiber/fiber/v2"
)

type HealthApi struct{}

func NewHealthApi() *HealthApi {
	return &HealthApi{}
}

// HealthCheck godoc
// @Summary      Health check
// @Description  Returns OK when the server is up
// @Tags         system
// @Produce      plain
// @Success      200 {string} string "OK"
// @Router       /health [get]
func (h *HealthApi) healthCheck(c *fiber.Ctx) error {
	return c.SendString("OK")
}

func (h *HealthApi) Setup(app *fiber.App) {
	app.Get("/health", h.healthCheck)
}
