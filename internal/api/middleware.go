package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillandco/studyhub/internal/models"
)

const (
	authCookieName  = "studyhub_auth"
	flashCookieName = "studyhub_flash"
	contextUserKey  = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
