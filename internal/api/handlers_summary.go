package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quillandco/studyhub/internal/models"
)

func (handler *Handler) ShowSummaryForm(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	now := time.Now().In(handler.location)
	assignments, err := handler.assignmentService.List(user.ID, "all", "all", now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load assignments")
	}

	return handler.render(c, "summary", fiber.Map{
		"Title":       "StudyHub | AI Summary",
		"Assignments": assignments,
	})
}

func (handler *Handler) GenerateSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	form := summaryFormInput{}
	if err := c.BodyParser(&form); err != nil {
		return handler.flashAndRedirect(c, FlashPayload{Error: "Please select an assignment or enter notes!"}, "/summary")
	}

	rawAssignmentID := strings.TrimSpace(form.AssignmentID)
	notes := strings.TrimSpace(form.Notes)
	if rawAssignmentID == "" && notes == "" {
		return handler.flashAndRedirect(c, FlashPayload{Error: "Please select an assignment or enter notes!"}, "/summary")
	}

	var assignment *models.Assignment
	if rawAssignmentID != "" {
		assignmentID, err := strconv.ParseUint(rawAssignmentID, 10, 32)
		if err != nil {
			return handler.flashAndRedirect(c, FlashPayload{Error: "Invalid assignment!"}, "/summary")
		}
		owned, err := handler.assignmentService.Get(user.ID, uint(assignmentID))
		if err != nil {
			return handler.flashAndRedirect(c, FlashPayload{Error: "Invalid assignment!"}, "/summary")
		}
		assignment = &owned
	}

	now := time.Now().In(handler.location)
	summary := handler.studyContent.BuildSummary(assignment, notes, now)

	return handler.render(c, "summary_result", fiber.Map{
		"Title":      "StudyHub | Study Summary",
		"Summary":    summary,
		"Assignment": assignment,
	})
}
