package db

import (
	"github.com/quillandco/studyhub/internal/models"
	"gorm.io/gorm"
)

type AssignmentRepository struct {
	database *gorm.DB
}

func NewAssignmentRepository(database *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{database: database}
}

func (repo *AssignmentRepository) ListByUser(userID uint, priorityFilter string, statusFilter string) ([]models.Assignment, error) {
	query := repo.database.Model(&models.Assignment{}).Where("user_id = ?", userID)
	if priorityFilter != "" && priorityFilter != "all" {
		query = query.Where("priority = ?", priorityFilter)
	}
	if statusFilter != "" && statusFilter != "all" {
		query = query.Where("status = ?", statusFilter)
	}

	assignments := make([]models.Assignment, 0)
	if err := query.Order("due_date ASC, id ASC").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (repo *AssignmentRepository) FindByID(assignmentID uint) (models.Assignment, bool, error) {
	assignment := models.Assignment{}
	result := repo.database.Limit(1).Find(&assignment, assignmentID)
	if result.Error != nil {
		return models.Assignment{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Assignment{}, false, nil
	}
	return assignment, true, nil
}

func (repo *AssignmentRepository) FindOwnedByIDs(userID uint, assignmentIDs []uint) ([]models.Assignment, error) {
	assignments := make([]models.Assignment, 0)
	if len(assignmentIDs) == 0 {
		return assignments, nil
	}
	if err := repo.database.
		Where("id IN ? AND user_id = ?", assignmentIDs, userID).
		Order("due_date ASC, id ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (repo *AssignmentRepository) Create(assignment *models.Assignment) error {
	return repo.database.Create(assignment).Error
}

func (repo *AssignmentRepository) Save(assignment *models.Assignment) error {
	return repo.database.Save(assignment).Error
}

// UpdateStatus writes only the status column so a lazy overdue promotion
// does not refresh the row's updated_at timestamp.
func (repo *AssignmentRepository) UpdateStatus(assignmentID uint, status string) error {
	return repo.database.Model(&models.Assignment{}).
		Where("id = ?", assignmentID).
		UpdateColumn("status", status).Error
}

func (repo *AssignmentRepository) Delete(assignmentID uint) error {
	return repo.database.Delete(&models.Assignment{}, assignmentID).Error
}
