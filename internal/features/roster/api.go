package roster

import (
	common_models "go-portal/internal/common/models"
	"go-portal/internal/config"
	"go-portal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type RosterApi struct {
	controller *RosterController
	config     *config.Config
}

func NewRosterApi(controller *RosterController, config *config.Config) *RosterApi {
	return &RosterApi{
		controller: controller,
		config:     config,
	}
}

func (h *RosterApi) Setup(app *fiber.App) {
	group := app.Group("/api/roster",
		middleware.AuthMiddleware(h.config.SkipAuth),
		middleware.RequireRoles(h.config.SkipAuth, common_models.RoleHOD, common_models.RoleDean))

	group.Post("/import", h.controller.Import)
}
