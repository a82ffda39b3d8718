package notification

import (
	common_models "go-portal/internal/common/models"
	"go-portal/internal/config"
	"go-portal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type NotificationApi struct {
	controller *NotificationController
	config     *config.Config
}

func NewNotificationApi(controller *NotificationController, config *config.Config) *NotificationApi {
	return &NotificationApi{
		controller: controller,
		config:     config,
	}
}

func (h *NotificationApi) Setup(app *fiber.App) {
	group := app.Group("/api/notifications", middleware.AuthMiddleware(h.config.SkipAuth))

	group.Get("/", h.controller.List)
	group.Get("/unread-count", h.controller.GetUnreadCount)
	group.Post("/",
		middleware.RequireRoles(h.config.SkipAuth, common_models.PrivilegedRoles...),
		h.controller.Create)
	group.Put("/read-all", h.controller.MarkAllAsRead)
	group.Put("/:id/read", h.controller.MarkAsRead)
	group.Delete("/clear-all", h.controller.ClearAll)
	group.Delete("/:id", h.controller.Delete)
}
