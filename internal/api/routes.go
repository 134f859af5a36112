package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/", handler.ShowIndex)
	app.Get("/register", handler.ShowRegisterPage)
	app.Post("/register", handler.Register)
	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Post("/logout", handler.AuthRequired, handler.Logout)

	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)

	app.Get("/assignments", handler.AuthRequired, handler.ShowAssignments)
	app.Get("/assignments/new", handler.AuthRequired, handler.ShowAddAssignment)
	app.Post("/assignments/new", handler.AuthRequired, handler.AddAssignment)
	app.Get("/assignments/:id/edit", handler.AuthRequired, handler.ShowEditAssignment)
	app.Post("/assignments/:id/edit", handler.AuthRequired, handler.EditAssignment)
	app.Post("/assignments/:id/delete", handler.AuthRequired, handler.DeleteAssignment)
	app.Post("/assignments/:id/complete", handler.AuthRequired, handler.CompleteAssignment)

	app.Get("/study-plan", handler.AuthRequired, handler.ShowStudyPlanForm)
	app.Post("/study-plan", handler.AuthRequired, handler.GenerateStudyPlan)
	app.Get("/summary", handler.AuthRequired, handler.ShowSummaryForm)
	app.Post("/summary", handler.AuthRequired, handler.GenerateSummary)

	app.Get("/progress", handler.AuthRequired, handler.ShowProgress)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
