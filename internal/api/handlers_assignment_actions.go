package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/quillandco/studyhub/internal/services"
)

func (handler *Handler) DeleteAssignment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	assignmentID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.flashAndRedirect(c, FlashPayload{Error: "Assignment not found!"}, "/dashboard")
	}

	if err := handler.assignmentService.Delete(user.ID, assignmentID); err != nil {
		return handler.redirectAssignmentAccessError(c, err)
	}

	return handler.flashAndRedirect(c, FlashPayload{Success: "Assignment deleted successfully!"}, "/dashboard")
}

// CompleteAssignment is the one JSON endpoint on the page surface; the
// dashboard toggles completion without a reload.
func (handler *Handler) CompleteAssignment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	assignmentID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "assignment not found")
	}

	if err := handler.assignmentService.Complete(user.ID, assignmentID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotAssignmentOwner):
			return apiError(c, fiber.StatusForbidden, "unauthorized")
		case errors.Is(err, services.ErrAssignmentNotFound):
			return apiError(c, fiber.StatusNotFound, "assignment not found")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update assignment")
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "Assignment marked as completed!"})
}
