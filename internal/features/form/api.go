package form

import (
	common_models "go-portal/internal/common/models"
	"go-portal/internal/config"
	"go-portal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type FormApi struct {
	controller *FormController
	config     *config.Config
}

func NewFormApi(controller *FormController, config *config.Config) *FormApi {
	return &FormApi{
		controller: controller,
		config:     config,
	}
}

func (h *FormApi) Setup(app *fiber.App) {
	group := app.Group("/api/forms", middleware.AuthMiddleware(h.config.SkipAuth))

	privileged := middleware.RequireRoles(h.config.SkipAuth, common_models.PrivilegedRoles...)

	group.Get("/", h.controller.List)
	group.Get("/:id", h.controller.Get)
	group.Post("/", privileged, h.controller.Create)
	group.Delete("/:id", privileged, h.controller.Delete)

	group.Post("/:id/submissions", h.controller.Submit)
	group.Get("/:id/submissions", privileged, h.controller.ListSubmissions)
}
