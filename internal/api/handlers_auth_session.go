package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quillandco/studyhub/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return handler.renderRegisterError(c, "All fields are required!")
	}

	username := strings.TrimSpace(credentials.Username)
	email := strings.TrimSpace(credentials.Email)
	password := credentials.Password

	if username == "" || email == "" || password == "" {
		return handler.renderRegisterError(c, "All fields are required!")
	}
	if len(password) < minPasswordLength {
		return handler.renderRegisterError(c, "Password must be at least 6 characters long!")
	}

	usernameTaken, err := handler.authService.UsernameExists(username)
	if err != nil {
		return handler.renderRegisterError(c, "Failed to create account. Please try again.")
	}
	if usernameTaken {
		return handler.renderRegisterError(c, "Username already exists!")
	}

	emailTaken, err := handler.authService.EmailExists(strings.ToLower(email))
	if err != nil {
		return handler.renderRegisterError(c, "Failed to create account. Please try again.")
	}
	if emailTaken {
		return handler.renderRegisterError(c, "Email already registered!")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return handler.renderRegisterError(c, "Failed to create account. Please try again.")
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().In(handler.location),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return handler.renderRegisterError(c, "Username or email already registered!")
	}

	return handler.flashAndRedirect(c, FlashPayload{Success: "Account successfully created! Please login."}, "/login")
}

func (handler *Handler) renderRegisterError(c *fiber.Ctx, message string) error {
	return handler.render(c, "register", fiber.Map{
		"Title": "StudyHub | Register",
		"Flash": FlashPayload{Error: message},
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return handler.renderLoginError(c, "Username and password are required!")
	}

	username := strings.TrimSpace(credentials.Username)
	password := credentials.Password
	if username == "" || password == "" {
		return handler.renderLoginError(c, "Username and password are required!")
	}

	user, err := handler.authService.FindByUsername(username)
	if err != nil {
		return handler.renderLoginError(c, "Invalid username or password!")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return handler.renderLoginError(c, "Invalid username or password!")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return handler.renderLoginError(c, "Failed to create session. Please try again.")
	}

	setFlashCookie(c, FlashPayload{Success: "Login successful!"})
	return c.Redirect(sanitizeRedirectPath(c.Query("next"), "/dashboard"), fiber.StatusSeeOther)
}

func (handler *Handler) renderLoginError(c *fiber.Ctx, message string) error {
	return handler.render(c, "login", fiber.Map{
		"Title": "StudyHub | Login",
		"Next":  sanitizeRedirectPath(c.Query("next"), ""),
		"Flash": FlashPayload{Error: message},
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return handler.flashAndRedirect(c, FlashPayload{Success: "You have been logged out."}, "/")
}
