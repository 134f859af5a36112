package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowAssignments(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	priorityFilter := normalizeFilter(c.Query("priority"))
	statusFilter := normalizeFilter(c.Query("status"))

	now := time.Now().In(handler.location)
	assignments, err := handler.assignmentService.List(user.ID, priorityFilter, statusFilter, now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load assignments")
	}

	return handler.render(c, "assignments", fiber.Map{
		"Title":          "StudyHub | Assignments",
		"Assignments":    assignments,
		"PriorityFilter": priorityFilter,
		"StatusFilter":   statusFilter,
		"Now":            now,
	})
}

func normalizeFilter(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return "all"
	}
	return value
}
