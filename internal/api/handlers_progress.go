package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quillandco/studyhub/internal/services"
)

func (handler *Handler) ShowProgress(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	now := time.Now().In(handler.location)
	assignments, err := handler.assignmentService.List(user.ID, "all", "all", now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load assignments")
	}

	report := services.BuildProgressReport(assignments)

	studyPlans, err := handler.progressService.RecentStudyPlans(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load study plans")
	}

	return handler.render(c, "progress", fiber.Map{
		"Title":       "StudyHub | Progress",
		"Report":      report,
		"Assignments": assignments,
		"StudyPlans":  studyPlans,
	})
}
