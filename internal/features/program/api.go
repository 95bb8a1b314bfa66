package program

import (
	"go-campus/internal/config"
	"go-campus/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ProgramApi struct {
	controller *ProgramController
	config     *config.Config
}

func NewProgramApi(controller *ProgramController, config *config.Config) *ProgramApi {
	return &ProgramApi{controller: controller, config: config}
}

// Setup registers all program-related routes
func (h *ProgramApi) Setup(app *fiber.App) {
	programs := app.Group("/api/programs", middleware.AuthMiddleware(h.config.SkipAuth))

	programs.Post("/", h.controller.CreateProgram)
	programs.Get("/", h.controller.ListPrograms)
	programs.Get("/:id", h.controller.GetProgram)
	programs.Put("/:id", h.controller.UpdateProgram)
	programs.Delete("/:id", h.controller.DeleteProgram)
}
