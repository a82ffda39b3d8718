package forum

import (
	common_models "go-portal/internal/common/models"
	"go-portal/internal/config"
	"go-portal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ForumApi struct {
	controller *ForumController
	config     *config.Config
}

func NewForumApi(controller *ForumController, config *config.Config) *ForumApi {
	return &ForumApi{
		controller: controller,
		config:     config,
	}
}

func (h *ForumApi) Setup(app *fiber.App) {
	group := app.Group("/api/forum", middleware.AuthMiddleware(h.config.SkipAuth))

	seniors := middleware.RequireRoles(h.config.SkipAuth, common_models.RoleHOD, common_models.RoleDean)

	group.Get("/", h.controller.ListThreads)
	group.Get("/:id", h.controller.GetThread)
	group.Post("/", h.controller.CreateThread)
	group.Post("/:id/replies", h.controller.Reply)
	group.Delete("/:id", seniors, h.controller.DeleteThread)
}
