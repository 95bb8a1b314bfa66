package import_feature

import (
	"go-campus/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportController struct {
	ImportService ImportService
}

func NewImportController(importService ImportService) *ImportController {
	return &ImportController{ImportService: importService}
}

func (c *ImportController) runOptions(ctx *fiber.Ctx) (Options, error) {
	claims, ok := ctx.Locals(utils.UserClaimsKey).(*utils.UserClaims)
	if !ok {
		return Options{}, fiber.ErrUnauthorized
	}
	actorID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return Options{}, fiber.ErrUnauthorized
	}

	return Options{
		DryRun:          ctx.FormValue("dry_run") == "true",
		SendCredentials: ctx.FormValue("send_credentials") == "true",
		ActorID:         actorID,
	}, nil
}

// ImportUsers godoc
// @Summary Bulk-import user accounts from a spreadsheet
// @Tags Import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to import (CSV or Excel)"
// @Param dry_run formData string false "Validate only, persist nothing"
// @Param send_credentials formData string false "Caller intends to mail generated credentials"
// @Success 200 {object} Report
// @Router /api/import/users [post]
func (c *ImportController) ImportUsers(ctx *fiber.Ctx) error {
	opts, err := c.runOptions(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User ID not found"})
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to open file"})
	}
	defer file.Close()

	report, err := c.ImportService.ImportUsers(ctx.Context(), file, fileHeader.Filename, opts)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(report)
}

// ImportCalls godoc
// @Summary Bulk-import calls from a spreadsheet
// @Tags Import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to import (CSV or Excel)"
// @Param dry_run formData string false "Validate only, persist nothing"
// @Success 200 {object} Report
// @Router /api/import/calls [post]
func (c *ImportController) ImportCalls(ctx *fiber.Ctx) error {
	opts, err := c.runOptions(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User ID not found"})
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to open file"})
	}
	defer file.Close()

	report, err := c.ImportService.ImportCalls(ctx.Context(), file, fileHeader.Filename, opts)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(report)
}

// GetImportJob godoc
// @Summary Get one import job
// @Tags Import
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} ImportJob
// @Router /api/import/jobs/{id} [get]
func (c *ImportController) GetImportJob(ctx *fiber.Ctx) error {
	job, err := c.ImportService.GetJob(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job not found"})
	}
	return ctx.JSON(job)
}

// ListImportJobs godoc
// @Summary List the caller's import jobs
// @Tags Import
// @Produce json
// @Success 200 {array} ImportJob
// @Router /api/import/jobs [get]
func (c *ImportController) ListImportJobs(ctx *fiber.Ctx) error {
	claims, ok := ctx.Locals(utils.UserClaimsKey).(*utils.UserClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User ID not found"})
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	jobs, err := c.ImportService.GetUserJobs(ctx.Context(), userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(jobs)
}
