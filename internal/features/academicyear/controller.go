package academicyear

import (
	"github.com/gofiber/fiber/v2"
)

type AcademicYearController struct {
	YearService AcademicYearService
}

func NewAcademicYearController(yearService AcademicYearService) *AcademicYearController {
	return &AcademicYearController{YearService: yearService}
}

// CreateAcademicYear godoc
// @Summary Create an academic year
// @Tags AcademicYears
// @Router /api/academic-years [post]
func (c *AcademicYearController) CreateAcademicYear(ctx *fiber.Ctx) error {
	var year AcademicYear
	if err := ctx.BodyParser(&year); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.YearService.CreateAcademicYear(ctx.Context(), &year); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(year)
}

// ListAcademicYears godoc
// @Summary List academic years
// @Tags AcademicYears
// @Router /api/academic-years [get]
func (c *AcademicYearController) ListAcademicYears(ctx *fiber.Ctx) error {
	years, err := c.YearService.ListAcademicYears(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(years)
}

// GetAcademicYear godoc
// @Summary Get an academic year by id
// @Tags AcademicYears
// @Router /api/academic-years/{id} [get]
func (c *AcademicYearController) GetAcademicYear(ctx *fiber.Ctx) error {
	year, err := c.YearService.GetAcademicYearByID(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Academic year not found"})
	}
	return ctx.JSON(year)
}

// DeleteAcademicYear godoc
// @Summary Delete an academic year
// @Tags AcademicYears
// @Router /api/academic-years/{id} [delete]
func (c *AcademicYearController) DeleteAcademicYear(ctx *fiber.Ctx) error {
	if err := c.YearService.DeleteAcademicYear(ctx.Context(), ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
