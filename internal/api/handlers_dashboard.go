package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quillandco/studyhub/internal/services"
)

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	now := time.Now().In(handler.location)
	assignments, err := handler.assignmentService.List(user.ID, "all", "all", now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load assignments")
	}

	stats := services.BuildAssignmentStats(assignments)
	return handler.render(c, "dashboard", fiber.Map{
		"Title":       "StudyHub | Dashboard",
		"Assignments": assignments,
		"Stats":       stats,
		"Now":         now,
	})
}
