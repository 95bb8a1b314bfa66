package call

import (
	"go-campus/internal/config"
	"go-campus/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type CallApi struct {
	controller *CallController
	config     *config.Config
}

func NewCallApi(controller *CallController, config *config.Config) *CallApi {
	return &CallApi{controller: controller, config: config}
}

// Setup registers all call-related routes
func (h *CallApi) Setup(app *fiber.App) {
	calls := app.Group("/api/calls", middleware.AuthMiddleware(h.config.SkipAuth))

	calls.Post("/", h.controller.CreateCall)
	calls.Get("/", h.controller.ListCalls)
	calls.Get("/:id", h.controller.GetCall)
	calls.Put("/:id", h.controller.UpdateCall)
	calls.Delete("/:id", h.controller.DeleteCall)
}
