package api

import (
	"github.com/quillandco/studyhub/internal/db"
	"github.com/quillandco/studyhub/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB, generator services.TextGenerator) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.assignmentService = services.NewAssignmentService(handler.repositories.Assignments)
	handler.progressService = services.NewProgressService(handler.repositories.StudyPlans)
	handler.studyContent = services.NewStudyContentService(generator)
	return handler
}
