package user

import (
	common_models "go-portal/internal/common/models"
	"go-portal/internal/config"
	"go-portal/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	controller *UserController
	config     *config.Config
}

func NewUserApi(controller *UserController, config *config.Config) *UserApi {
	return &UserApi{
		controller: controller,
		config:     config,
	}
}

func (h *UserApi) Setup(app *fiber.App) {
	group := app.Group("/api/users", middleware.AuthMiddleware(h.config.SkipAuth))

	group.Get("/me", h.controller.Me)
	group.Get("/",
		middleware.RequireRoles(h.config.SkipAuth, common_models.RoleFaculty, common_models.RoleHOD, common_models.RoleDean),
		h.controller.List)
	group.Get("/:id", h.controller.Get)
}
