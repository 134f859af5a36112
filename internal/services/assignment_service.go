package services

import (
	"errors"
	"strings"
	"time"

	"github.com/quillandco/studyhub/internal/models"
)

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrNotAssignmentOwner = errors.New("assignment belongs to another user")
)

// ValidationError carries a user-facing message for a rejected input; nothing
// is persisted when one is returned.
type ValidationError struct {
	Message string
}

func (err *ValidationError) Error() string {
	return err.Message
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

const dueDateLayout = "2006-01-02"

type AssignmentInput struct {
	Title       string
	Description string
	DueDate     string
	Priority    string
}

type AssignmentStore interface {
	ListByUser(userID uint, priorityFilter string, statusFilter string) ([]models.Assignment, error)
	FindByID(assignmentID uint) (models.Assignment, bool, error)
	FindOwnedByIDs(userID uint, assignmentIDs []uint) ([]models.Assignment, error)
	Create(assignment *models.Assignment) error
	Save(assignment *models.Assignment) error
	UpdateStatus(assignmentID uint, status string) error
	Delete(assignmentID uint) error
}

type AssignmentService struct {
	assignments AssignmentStore
}

func NewAssignmentService(assignments AssignmentStore) *AssignmentService {
	return &AssignmentService{assignments: assignments}
}

func (service *AssignmentService) Create(userID uint, input AssignmentInput) (models.Assignment, error) {
	title, description, dueDate, priority, err := validateAssignmentInput(input)
	if err != nil {
		return models.Assignment{}, err
	}

	assignment := models.Assignment{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
		Status:      models.StatusPending,
		UserID:      userID,
	}
	if err := service.assignments.Create(&assignment); err != nil {
		return models.Assignment{}, err
	}
	return assignment, nil
}

// Get loads an assignment and enforces ownership. A row owned by another user
// is reported as an authorization failure, not a not-found.
func (service *AssignmentService) Get(userID uint, assignmentID uint) (models.Assignment, error) {
	assignment, found, err := service.assignments.FindByID(assignmentID)
	if err != nil {
		return models.Assignment{}, err
	}
	if !found {
		return models.Assignment{}, ErrAssignmentNotFound
	}
	if assignment.UserID != userID {
		return models.Assignment{}, ErrNotAssignmentOwner
	}
	return assignment, nil
}

func (service *AssignmentService) Update(userID uint, assignmentID uint, input AssignmentInput) (models.Assignment, error) {
	assignment, err := service.Get(userID, assignmentID)
	if err != nil {
		return models.Assignment{}, err
	}

	title, description, dueDate, priority, err := validateAssignmentInput(input)
	if err != nil {
		return models.Assignment{}, err
	}

	assignment.Title = title
	assignment.Description = description
	assignment.DueDate = dueDate
	assignment.Priority = priority
	assignment.UpdatedAt = time.Now()
	if err := service.assignments.Save(&assignment); err != nil {
		return models.Assignment{}, err
	}
	return assignment, nil
}

func (service *AssignmentService) Delete(userID uint, assignmentID uint) error {
	if _, err := service.Get(userID, assignmentID); err != nil {
		return err
	}
	return service.assignments.Delete(assignmentID)
}

// Complete marks the assignment completed unconditionally, including rows
// already completed or overdue.
func (service *AssignmentService) Complete(userID uint, assignmentID uint) error {
	if _, err := service.Get(userID, assignmentID); err != nil {
		return err
	}
	return service.assignments.UpdateStatus(assignmentID, models.StatusCompleted)
}

// List promotes overdue rows first, then returns the caller's assignments
// ordered by due date. An empty or "all" filter value applies no constraint.
func (service *AssignmentService) List(userID uint, priorityFilter string, statusFilter string, now time.Time) ([]models.Assignment, error) {
	if err := service.PromoteOverdue(userID, now); err != nil {
		return nil, err
	}
	return service.assignments.ListByUser(userID, priorityFilter, statusFilter)
}

func (service *AssignmentService) ListPending(userID uint, now time.Time) ([]models.Assignment, error) {
	return service.List(userID, "all", models.StatusPending, now)
}

func (service *AssignmentService) FindOwnedByIDs(userID uint, assignmentIDs []uint) ([]models.Assignment, error) {
	return service.assignments.FindOwnedByIDs(userID, assignmentIDs)
}

// PromoteOverdue persists the overdue status for every non-completed row whose
// due date has passed. It is idempotent, and a completed row never reverts.
func (service *AssignmentService) PromoteOverdue(userID uint, now time.Time) error {
	assignments, err := service.assignments.ListByUser(userID, "all", "all")
	if err != nil {
		return err
	}

	for _, assignment := range assignments {
		if assignment.Status == models.StatusCompleted || assignment.Status == models.StatusOverdue {
			continue
		}
		if !assignment.DueDate.Before(now) {
			continue
		}
		if err := service.assignments.UpdateStatus(assignment.ID, models.StatusOverdue); err != nil {
			return err
		}
	}
	return nil
}

func validateAssignmentInput(input AssignmentInput) (string, string, time.Time, string, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return "", "", time.Time{}, "", &ValidationError{Message: "Assignment title is required!"}
	}

	rawDueDate := strings.TrimSpace(input.DueDate)
	if rawDueDate == "" {
		return "", "", time.Time{}, "", &ValidationError{Message: "Due date is required!"}
	}
	dueDate, err := time.Parse(dueDateLayout, rawDueDate)
	if err != nil {
		return "", "", time.Time{}, "", &ValidationError{Message: "Invalid date format!"}
	}

	priority := strings.TrimSpace(input.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.IsValidPriority(priority) {
		return "", "", time.Time{}, "", &ValidationError{Message: "Invalid priority!"}
	}

	return title, strings.TrimSpace(input.Description), dueDate, priority, nil
}
