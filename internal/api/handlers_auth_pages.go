package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowIndex(c *fiber.Ctx) error {
	if _, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return handler.render(c, "index", fiber.Map{
		"Title": "StudyHub | Your AI Study Assistant",
	})
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if _, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return handler.render(c, "login", fiber.Map{
		"Title": "StudyHub | Login",
		"Next":  sanitizeRedirectPath(c.Query("next"), ""),
	})
}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	if _, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	return handler.render(c, "register", fiber.Map{
		"Title": "StudyHub | Register",
	})
}
