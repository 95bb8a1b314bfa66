package academicyear

import (
	"go-campus/internal/config"
	"go-campus/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AcademicYearApi struct {
	controller *AcademicYearController
	config     *config.Config
}

func NewAcademicYearApi(controller *AcademicYearController, config *config.Config) *AcademicYearApi {
	return &AcademicYearApi{controller: controller, config: config}
}

// Setup registers all academic-year routes
func (h *AcademicYearApi) Setup(app *fiber.App) {
	years := app.Group("/api/academic-years", middleware.AuthMiddleware(h.config.SkipAuth))

	years.Post("/", h.controller.CreateAcademicYear)
	years.Get("/", h.controller.ListAcademicYears)
	years.Get("/:id", h.controller.GetAcademicYear)
	years.Delete("/:id", h.controller.DeleteAcademicYear)
}
