package models

import "time"

// StudyPlan is immutable once created; there is no update path.
type StudyPlan struct {
	ID            uint   `gorm:"primaryKey"`
	Content       string `gorm:"not null"`
	AssignmentIDs []uint `gorm:"serializer:json"`
	UserID        uint   `gorm:"not null;index"`
	CreatedAt     time.Time
}
