package program

import (
	"github.com/gofiber/fiber/v2"
)

type ProgramController struct {
	ProgramService ProgramService
}

func NewProgramController(programService ProgramService) *ProgramController {
	return &ProgramController{ProgramService: programService}
}

// CreateProgram godoc
// @Summary Create a program
// @Tags Programs
// @Router /api/programs [post]
func (c *ProgramController) CreateProgram(ctx *fiber.Ctx) error {
	var program Program
	if err := ctx.BodyParser(&program); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.ProgramService.CreateProgram(ctx.Context(), &program); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(program)
}

// ListPrograms godoc
// @Summary List programs
// @Tags Programs
// @Router /api/programs [get]
func (c *ProgramController) ListPrograms(ctx *fiber.Ctx) error {
	programs, err := c.ProgramService.ListPrograms(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(programs)
}

// GetProgram godoc
// @Summary Get a program by id
// @Tags Programs
// @Router /api/programs/{id} [get]
func (c *ProgramController) GetProgram(ctx *fiber.Ctx) error {
	program, err := c.ProgramService.GetProgramByID(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Program not found"})
	}
	return ctx.JSON(program)
}

// UpdateProgram godoc
// @Summary Update a program
// @Tags Programs
// @Router /api/programs/{id} [put]
func (c *ProgramController) UpdateProgram(ctx *fiber.Ctx) error {
	var program Program
	if err := ctx.BodyParser(&program); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.ProgramService.UpdateProgram(ctx.Context(), ctx.Params("id"), &program); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(program)
}

// DeleteProgram godoc
// @Summary Delete a program
// @Tags Programs
// @Router /api/programs/{id} [delete]
func (c *ProgramController) DeleteProgram(ctx *fiber.Ctx) error {
	if err := c.ProgramService.DeleteProgram(ctx.Context(), ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
