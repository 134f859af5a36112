package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quillandco/studyhub/internal/models"
)

func (handler *Handler) ShowStudyPlanForm(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	now := time.Now().In(handler.location)
	assignments, err := handler.assignmentService.ListPending(user.ID, now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load assignments")
	}

	return handler.render(c, "study_plan", fiber.Map{
		"Title":       "StudyHub | AI Study Plan",
		"Assignments": assignments,
		"Now":         now,
	})
}

func (handler *Handler) GenerateStudyPlan(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	selectedIDs := parseUintValues(formValues(c, "assignment_ids"))
	if len(selectedIDs) == 0 {
		return handler.flashAndRedirect(c, FlashPayload{Error: "Please select at least one assignment!"}, "/study-plan")
	}

	assignments, err := handler.assignmentService.FindOwnedByIDs(user.ID, selectedIDs)
	if err != nil {
		return handler.flashAndRedirect(c, FlashPayload{Error: "Error generating study plan. Please try again."}, "/study-plan")
	}
	if len(assignments) == 0 {
		return handler.flashAndRedirect(c, FlashPayload{Error: "No valid assignments selected!"}, "/study-plan")
	}

	now := time.Now().In(handler.location)
	content := handler.studyContent.BuildStudyPlan(assignments, now)

	sourceIDs := make([]uint, 0, len(assignments))
	for _, assignment := range assignments {
		sourceIDs = append(sourceIDs, assignment.ID)
	}
	plan := models.StudyPlan{
		Content:       content,
		AssignmentIDs: sourceIDs,
		UserID:        user.ID,
		CreatedAt:     now,
	}
	if err := handler.repositories.StudyPlans.Create(&plan); err != nil {
		return handler.flashAndRedirect(c, FlashPayload{Error: "Error generating study plan. Please try again."}, "/study-plan")
	}

	return handler.render(c, "study_plan_result", fiber.Map{
		"Title":       "StudyHub | Your Study Plan",
		"StudyPlan":   content,
		"Assignments": assignments,
		"Now":         now,
	})
}
