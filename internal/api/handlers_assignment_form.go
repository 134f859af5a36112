package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/quillandco/studyhub/internal/models"
	"github.com/quillandco/studyhub/internal/services"
)

func (handler *Handler) ShowAddAssignment(c *fiber.Ctx) error {
	return handler.render(c, "assignment_form", fiber.Map{
		"Title":      "StudyHub | Add Assignment",
		"FormTitle":  "Add Assignment",
		"FormAction": "/assignments/new",
	})
}

func (handler *Handler) AddAssignment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	form := assignmentFormInput{}
	if err := c.BodyParser(&form); err != nil {
		return handler.renderAssignmentFormError(c, form, nil, "Invalid form input!")
	}

	if _, err := handler.assignmentService.Create(user.ID, assignmentInputFromForm(form)); err != nil {
		if services.IsValidationError(err) {
			return handler.renderAssignmentFormError(c, form, nil, err.Error())
		}
		return handler.renderAssignmentFormError(c, form, nil, "Failed to create assignment. Please try again.")
	}

	return handler.flashAndRedirect(c, FlashPayload{Success: "Assignment created successfully!"}, "/dashboard")
}

func (handler *Handler) ShowEditAssignment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	assignmentID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.flashAndRedirect(c, FlashPayload{Error: "Assignment not found!"}, "/dashboard")
	}

	assignment, err := handler.assignmentService.Get(user.ID, assignmentID)
	if err != nil {
		return handler.redirectAssignmentAccessError(c, err)
	}

	return handler.render(c, "assignment_form", fiber.Map{
		"Title":      "StudyHub | Edit Assignment",
		"FormTitle":  "Edit Assignment",
		"FormAction": "/assignments/" + c.Params("id") + "/edit",
		"Assignment": &assignment,
	})
}

func (handler *Handler) EditAssignment(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	assignmentID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.flashAndRedirect(c, FlashPayload{Error: "Assignment not found!"}, "/dashboard")
	}

	existing, err := handler.assignmentService.Get(user.ID, assignmentID)
	if err != nil {
		return handler.redirectAssignmentAccessError(c, err)
	}

	form := assignmentFormInput{}
	if err := c.BodyParser(&form); err != nil {
		return handler.renderAssignmentFormError(c, form, &existing, "Invalid form input!")
	}

	if _, err := handler.assignmentService.Update(user.ID, assignmentID, assignmentInputFromForm(form)); err != nil {
		if services.IsValidationError(err) {
			return handler.renderAssignmentFormError(c, form, &existing, err.Error())
		}
		return handler.redirectAssignmentAccessError(c, err)
	}

	return handler.flashAndRedirect(c, FlashPayload{Success: "Assignment updated successfully!"}, "/dashboard")
}

func (handler *Handler) redirectAssignmentAccessError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrNotAssignmentOwner) {
		return handler.flashAndRedirect(c, FlashPayload{Error: "Unauthorized access!"}, "/dashboard")
	}
	if errors.Is(err, services.ErrAssignmentNotFound) {
		return handler.flashAndRedirect(c, FlashPayload{Error: "Assignment not found!"}, "/dashboard")
	}
	return handler.flashAndRedirect(c, FlashPayload{Error: "Something went wrong. Please try again."}, "/dashboard")
}

func (handler *Handler) renderAssignmentFormError(c *fiber.Ctx, form assignmentFormInput, existing *models.Assignment, message string) error {
	formTitle := "Add Assignment"
	formAction := "/assignments/new"
	if existing != nil {
		formTitle = "Edit Assignment"
		formAction = "/assignments/" + c.Params("id") + "/edit"
	}
	return handler.render(c, "assignment_form", fiber.Map{
		"Title":      "StudyHub | " + formTitle,
		"FormTitle":  formTitle,
		"FormAction": formAction,
		"Assignment": existing,
		"Form":       form,
		"Flash":      FlashPayload{Error: message},
	})
}

func assignmentInputFromForm(form assignmentFormInput) services.AssignmentInput {
	return services.AssignmentInput{
		Title:       form.Title,
		Description: form.Description,
		DueDate:     form.DueDate,
		Priority:    form.Priority,
	}
}
