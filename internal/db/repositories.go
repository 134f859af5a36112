package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Assignments *AssignmentRepository
	StudyPlans  *StudyPlanRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Assignments: NewAssignmentRepository(database),
		StudyPlans:  NewStudyPlanRepository(database),
	}
}
