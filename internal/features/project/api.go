package project

import (
	common_models "go-portal/internal/common/models"
	"go-portal/internal/config"
	"go-portal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ProjectApi struct {
	controller *ProjectController
	config     *config.Config
}

func NewProjectApi(controller *ProjectController, config *config.Config) *ProjectApi {
	return &ProjectApi{
		controller: controller,
		config:     config,
	}
}

func (h *ProjectApi) Setup(app *fiber.App) {
	group := app.Group("/api/projects", middleware.AuthMiddleware(h.config.SkipAuth))

	seniors := middleware.RequireRoles(h.config.SkipAuth, common_models.RoleHOD, common_models.RoleDean)

	group.Get("/", h.controller.List)
	group.Get("/:id", h.controller.Get)
	// Students propose projects too; they start pending
	group.Post("/", h.controller.Create)
	group.Put("/:id/approve", seniors, h.controller.Approve)
	group.Delete("/:id", seniors, h.controller.Delete)
}
