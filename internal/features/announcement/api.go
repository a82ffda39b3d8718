package announcement

import (
	common_models "go-portal/internal/common/models"
	"go-portal/internal/config"
	"go-portal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AnnouncementApi struct {
	controller *AnnouncementController
	config     *config.Config
}

func NewAnnouncementApi(controller *AnnouncementController, config *config.Config) *AnnouncementApi {
	return &AnnouncementApi{
		controller: controller,
		config:     config,
	}
}

func (h *AnnouncementApi) Setup(app *fiber.App) {
	group := app.Group("/api/announcements", middleware.AuthMiddleware(h.config.SkipAuth))

	privileged := middleware.RequireRoles(h.config.SkipAuth, common_models.PrivilegedRoles...)
	seniors := middleware.RequireRoles(h.config.SkipAuth, common_models.RoleHOD, common_models.RoleDean)

	group.Get("/", h.controller.List)
	group.Get("/:id", h.controller.Get)
	group.Post("/", privileged, h.controller.Create)
	group.Put("/:id", privileged, h.controller.Update)
	group.Put("/:id/approve", seniors, h.controller.Approve)
	group.Delete("/:id", privileged, h.controller.Delete)
}
