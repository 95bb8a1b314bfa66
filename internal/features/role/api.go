package role

import (
	"go-campus/internal/config"
	"go-campus/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type RoleApi struct {
	controller *RoleController
	config     *config.Config
}

func NewRoleApi(controller *RoleController, config *config.Config) *RoleApi {
	return &RoleApi{controller: controller, config: config}
}

// Setup registers all role-related routes
func (h *RoleApi) Setup(app *fiber.App) {
	roles := app.Group("/api/roles", middleware.AuthMiddleware(h.config.SkipAuth))

	roles.Post("/", h.controller.CreateRole)
	roles.Get("/", h.controller.ListRoles)
	roles.Delete("/:id", h.controller.DeleteRole)
}
