package event

import (
	common_models "go-portal/internal/common/models"
	"go-portal/internal/config"
	"go-portal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type EventApi struct {
	controller *EventController
	config     *config.Config
}

func NewEventApi(controller *EventController, config *config.Config) *EventApi {
	return &EventApi{
		controller: controller,
		config:     config,
	}
}

func (h *EventApi) Setup(app *fiber.App) {
	group := app.Group("/api/events", middleware.AuthMiddleware(h.config.SkipAuth))

	privileged := middleware.RequireRoles(h.config.SkipAuth, common_models.PrivilegedRoles...)

	group.Get("/", h.controller.List)
	group.Get("/:id", h.controller.Get)
	group.Post("/", privileged, h.controller.Create)
	group.Delete("/:id", privileged, h.controller.Delete)
}
