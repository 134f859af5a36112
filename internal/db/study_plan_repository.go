package db

import (
	"github.com/quillandco/studyhub/internal/models"
	"gorm.io/gorm"
)

type StudyPlanRepository struct {
	database *gorm.DB
}

func NewStudyPlanRepository(database *gorm.DB) *StudyPlanRepository {
	return &StudyPlanRepository{database: database}
}

func (repo *StudyPlanRepository) Create(plan *models.StudyPlan) error {
	return repo.database.Create(plan).Error
}

func (repo *StudyPlanRepository) ListRecentByUser(userID uint, limit int) ([]models.StudyPlan, error) {
	plans := make([]models.StudyPlan, 0)
	query := repo.database.Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
