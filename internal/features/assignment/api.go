package assignment

import (
	common_models "go-portal/internal/common/models"
	"go-portal/internal/config"
	"go-portal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AssignmentApi struct {
	controller *AssignmentController
	config     *config.Config
}

func NewAssignmentApi(controller *AssignmentController, config *config.Config) *AssignmentApi {
	return &AssignmentApi{
		controller: controller,
		config:     config,
	}
}

func (h *AssignmentApi) Setup(app *fiber.App) {
	group := app.Group("/api/assignments", middleware.AuthMiddleware(h.config.SkipAuth))

	privileged := middleware.RequireRoles(h.config.SkipAuth, common_models.PrivilegedRoles...)
	students := middleware.RequireRoles(h.config.SkipAuth, common_models.RoleStudent)

	group.Get("/", h.controller.List)
	group.Get("/submissions/mine", students, h.controller.MySubmissions)
	group.Get("/:id", h.controller.Get)
	group.Post("/", privileged, h.controller.Create)
	group.Delete("/:id", privileged, h.controller.Delete)

	group.Post("/:id/submissions", students, h.controller.Submit)
	group.Get("/:id/submissions", privileged, h.controller.ListSubmissions)
	group.Put("/submissions/:submissionId/grade", privileged, h.controller.Grade)
}
