package models

import "time"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusOverdue   = "overdue"
)

type Assignment struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string
	DueDate     time.Time `gorm:"type:date;not null"`
	Priority    string    `gorm:"not null;default:medium"`
	Status      string    `gorm:"not null;default:pending"`
	UserID      uint      `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PriorityRank orders priorities for scheduling, most urgent first.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 2
	}
}

func IsValidPriority(priority string) bool {
	return priority == PriorityLow || priority == PriorityMedium || priority == PriorityHigh
}

func IsValidStatus(status string) bool {
	return status == StatusPending || status == StatusCompleted || status == StatusOverdue
}
