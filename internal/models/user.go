package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`

	Assignments []Assignment `gorm:"constraint:OnDelete:CASCADE"`
	StudyPlans  []StudyPlan  `gorm:"constraint:OnDelete:CASCADE"`
}
