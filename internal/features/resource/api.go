package resource

import (
	common_models "go-portal/internal/common/models"
	"go-portal/internal/config"
	"go-portal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ResourceApi struct {
	controller *ResourceController
	config     *config.Config
}

func NewResourceApi(controller *ResourceController, config *config.Config) *ResourceApi {
	return &ResourceApi{
		controller: controller,
		config:     config,
	}
}

func (h *ResourceApi) Setup(app *fiber.App) {
	group := app.Group("/api/resources", middleware.AuthMiddleware(h.config.SkipAuth))

	privileged := middleware.RequireRoles(h.config.SkipAuth, common_models.PrivilegedRoles...)

	group.Get("/", h.controller.List)
	group.Get("/:id", h.controller.Get)
	group.Post("/", privileged, h.controller.Create)
	group.Delete("/:id", privileged, h.controller.Delete)
}
