package services

import (
	"math"

	"github.com/quillandco/studyhub/internal/models"
)

const recentStudyPlanLimit = 5

type AssignmentStats struct {
	Total     int
	Completed int
	Pending   int
	Overdue   int
}

type ProgressReport struct {
	AssignmentStats
	CompletionRate float64
	HighPriority   int
	MediumPriority int
	LowPriority    int
}

func BuildAssignmentStats(assignments []models.Assignment) AssignmentStats {
	stats := AssignmentStats{Total: len(assignments)}
	for _, assignment := range assignments {
		switch assignment.Status {
		case models.StatusCompleted:
			stats.Completed++
		case models.StatusPending:
			stats.Pending++
		case models.StatusOverdue:
			stats.Overdue++
		}
	}
	return stats
}

// BuildProgressReport derives the progress view numbers. The completion rate
// is a percentage rounded to one decimal and is 0 for an empty set.
func BuildProgressReport(assignments []models.Assignment) ProgressReport {
	report := ProgressReport{AssignmentStats: BuildAssignmentStats(assignments)}

	if report.Total > 0 {
		rate := float64(report.Completed) / float64(report.Total) * 100
		report.CompletionRate = math.Round(rate*10) / 10
	}

	for _, assignment := range assignments {
		switch assignment.Priority {
		case models.PriorityHigh:
			report.HighPriority++
		case models.PriorityMedium:
			report.MediumPriority++
		case models.PriorityLow:
			report.LowPriority++
		}
	}
	return report
}

type StudyPlanReader interface {
	ListRecentByUser(userID uint, limit int) ([]models.StudyPlan, error)
}

type ProgressService struct {
	plans StudyPlanReader
}

func NewProgressService(plans StudyPlanReader) *ProgressService {
	return &ProgressService{plans: plans}
}

func (service *ProgressService) RecentStudyPlans(userID uint) ([]models.StudyPlan, error) {
	return service.plans.ListRecentByUser(userID, recentStudyPlanLimit)
}
