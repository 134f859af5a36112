package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quillandco/studyhub/internal/db"
	"github.com/quillandco/studyhub/internal/models"
	"github.com/quillandco/studyhub/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// unavailableTextGenerator forces every handler test down the deterministic
// fallback path, keeping rendered content stable.
type unavailableTextGenerator struct{}

func (unavailableTextGenerator) Generate(string, int) services.GenerationResult {
	return services.GenerationResult{Available: false, Reason: "disabled in tests"}
}

func newStudyHubTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}

	apiDir := filepath.Dir(testFile)
	templatesDir := filepath.Join(filepath.Dir(apiDir), "templates")
	databasePath := filepath.Join(t.TempDir(), "studyhub-test.db")

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, "test-secret-key", templatesDir, time.UTC, unavailableTextGenerator{}, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func createTestUser(t *testing.T, database *gorm.DB, username string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestAssignment(t *testing.T, database *gorm.DB, userID uint, title string, dueDate time.Time, priority string, status string) models.Assignment {
	t.Helper()

	assignment := models.Assignment{
		Title:    title,
		DueDate:  dueDate,
		Priority: priority,
		Status:   status,
		UserID:   userID,
	}
	if err := database.Create(&assignment).Error; err != nil {
		t.Fatalf("create assignment: %v", err)
	}
	return assignment
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, username string, password string) string {
	t.Helper()

	form := url.Values{
		"username": {username},
		"password": {password},
	}
	response := performFormRequest(t, app, http.MethodPost, "/login", form, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected login status 303, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

func performFormRequest(t *testing.T, app *fiber.App, method string, target string, form url.Values, authCookie string) *http.Response {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	request := httptest.NewRequest(method, target, body)
	if form != nil {
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	return response
}

func performGetRequest(t *testing.T, app *fiber.App, target string, authCookie string) *http.Response {
	t.Helper()
	return performFormRequest(t, app, http.MethodGet, target, nil, authCookie)
}

func uintToPathSegment(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}

func readResponseBody(t *testing.T, response *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(body)
}
