package api

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/quillandco/studyhub/internal/db"
	"github.com/quillandco/studyhub/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	templates    map[string]*template.Template

	repositories      *db.Repositories
	authService       *services.AuthService
	assignmentService *services.AssignmentService
	progressService   *services.ProgressService
	studyContent      *services.StudyContentService
}

type credentialsInput struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type assignmentFormInput struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	DueDate     string `json:"due_date" form:"due_date"`
	Priority    string `json:"priority" form:"priority"`
}

type summaryFormInput struct {
	AssignmentID string `json:"assignment_id" form:"assignment_id"`
	Notes        string `json:"notes" form:"notes"`
}

const authTokenTTL = 7 * 24 * time.Hour

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, generator services.TextGenerator, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}

	funcMap := template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"formatFloat": func(value float64) string {
			return fmt.Sprintf("%.1f", value)
		},
		"rawHTML": func(fragment string) template.HTML {
			return template.HTML(fragment)
		},
		"capitalize": capitalizeLabel,
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"index",
		"login",
		"register",
		"dashboard",
		"assignments",
		"assignment_form",
		"study_plan",
		"study_plan_result",
		"summary",
		"summary_result",
		"progress",
	}
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		templates:    templates,
	}
	return handler.withDependencies(database, generator), nil
}
