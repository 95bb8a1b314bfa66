package import_feature

import (
	"go-campus/internal/config"
	"go-campus/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ImportApi struct {
	controller *ImportController
	config     *config.Config
}

func NewImportApi(controller *ImportController, config *config.Config) *ImportApi {
	return &ImportApi{controller: controller, config: config}
}

// Setup registers all import routes
func (h *ImportApi) Setup(app *fiber.App) {
	imports := app.Group("/api/import", middleware.AuthMiddleware(h.config.SkipAuth))

	imports.Post("/users", h.controller.ImportUsers)
	imports.Post("/calls", h.controller.ImportCalls)
	imports.Get("/jobs", h.controller.ListImportJobs)
	imports.Get("/jobs/:id", h.controller.GetImportJob)
}
