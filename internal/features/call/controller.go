package call

import (
	"go-campus/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CallController struct {
	CallService CallService
}

func NewCallController(callService CallService) *CallController {
	return &CallController{CallService: callService}
}

func actorFromLocals(ctx *fiber.Ctx) (primitive.ObjectID, error) {
	claims, ok := ctx.Locals(utils.UserClaimsKey).(*utils.UserClaims)
	if !ok {
		return primitive.NilObjectID, fiber.ErrUnauthorized
	}
	return primitive.ObjectIDFromHex(claims.UserID)
}

// CreateCall godoc
// @Summary Create a call
// @Tags Calls
// @Router /api/calls [post]
func (c *CallController) CreateCall(ctx *fiber.Ctx) error {
	actorID, err := actorFromLocals(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User ID not found"})
	}

	var call Call
	if err := ctx.BodyParser(&call); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.CallService.CreateCall(ctx.Context(), &call, actorID); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(call)
}

// ListCalls godoc
// @Summary List calls
// @Tags Calls
// @Router /api/calls [get]
func (c *CallController) ListCalls(ctx *fiber.Ctx) error {
	page := int64(ctx.QueryInt("page", 1))
	limit := int64(ctx.QueryInt("limit", 50))

	filter := map[string]interface{}{}
	if status := ctx.Query("status"); status != "" {
		filter["status"] = status
	}

	calls, total, err := c.CallService.ListCalls(ctx.Context(), filter, page, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"calls": calls, "total": total})
}

// GetCall godoc
// @Summary Get a call by id
// @Tags Calls
// @Router /api/calls/{id} [get]
func (c *CallController) GetCall(ctx *fiber.Ctx) error {
	call, err := c.CallService.GetCallByID(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Call not found"})
	}
	return ctx.JSON(call)
}

// UpdateCall godoc
// @Summary Update a call
// @Tags Calls
// @Router /api/calls/{id} [put]
func (c *CallController) UpdateCall(ctx *fiber.Ctx) error {
	actorID, err := actorFromLocals(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User ID not found"})
	}

	var call Call
	if err := ctx.BodyParser(&call); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := c.CallService.UpdateCall(ctx.Context(), ctx.Params("id"), &call, actorID); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(call)
}

// DeleteCall godoc
// @Summary Delete a call
// @Tags Calls
// @Router /api/calls/{id} [delete]
func (c *CallController) DeleteCall(ctx *fiber.Ctx) error {
	if err := c.CallService.DeleteCall(ctx.Context(), ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
