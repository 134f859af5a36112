package services

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/quillandco/studyhub/internal/models"
)

const longDateLayout = "January 02, 2006"

// DaysUntil reports the whole days between now and the due date, truncating
// toward zero.
func DaysUntil(due time.Time, now time.Time) int {
	return int(due.Sub(now).Hours() / 24)
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

// FallbackStudyPlan renders a deterministic study plan when the text generator
// is unavailable. Assignments are ordered by due date, then by priority.
func FallbackStudyPlan(assignments []models.Assignment, now time.Time) string {
	ordered := make([]models.Assignment, len(assignments))
	copy(ordered, assignments)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].DueDate.Equal(ordered[j].DueDate) {
			return ordered[i].DueDate.Before(ordered[j].DueDate)
		}
		return models.PriorityRank(ordered[i].Priority) < models.PriorityRank(ordered[j].Priority)
	})

	var plan strings.Builder
	plan.WriteString("<h2>Personalized Study Plan</h2>")
	plan.WriteString("<h3>Your Assignments</h3>")

	for index, assignment := range ordered {
		daysUntilDue := DaysUntil(assignment.DueDate, now)
		plan.WriteString(fmt.Sprintf("<h4>%d. %s</h4>", index+1, html.EscapeString(assignment.Title)))
		plan.WriteString("<ul>")
		plan.WriteString(fmt.Sprintf("<li><strong>Due Date:</strong> %s</li>", assignment.DueDate.Format(longDateLayout)))
		plan.WriteString(fmt.Sprintf("<li><strong>Priority:</strong> %s</li>", capitalize(assignment.Priority)))
		plan.WriteString(fmt.Sprintf("<li><strong>Days Remaining:</strong> %d</li>", daysUntilDue))

		switch {
		case daysUntilDue <= 3:
			plan.WriteString("<li><strong>Recommendation:</strong> This assignment is due soon! Prioritize completing this today.</li>")
		case daysUntilDue <= 7:
			plan.WriteString("<li><strong>Recommendation:</strong> Allocate 1-2 hours daily to complete this assignment.</li>")
		default:
			plan.WriteString(fmt.Sprintf("<li><strong>Recommendation:</strong> Plan to work on this assignment regularly over the next %d days.</li>", daysUntilDue))
		}

		plan.WriteString("</ul>")
	}

	plan.WriteString("<h3>Study Tips</h3>")
	plan.WriteString("<ul>")
	plan.WriteString("<li>Break large assignments into smaller tasks</li>")
	plan.WriteString("<li>Schedule regular study sessions</li>")
	plan.WriteString("<li>Take short breaks every 50 minutes</li>")
	plan.WriteString("<li>Start with high-priority items</li>")
	plan.WriteString("<li>Review completed work before submission</li>")
	plan.WriteString("</ul>")

	return plan.String()
}

// FallbackSummary renders a deterministic study summary from an assignment,
// free-text notes, or both. Callers guarantee at least one is present.
func FallbackSummary(assignment *models.Assignment, notes string, now time.Time) string {
	var summary strings.Builder
	summary.WriteString("<h2>Study Summary</h2>")

	if assignment != nil {
		summary.WriteString(fmt.Sprintf("<h3>Assignment: %s</h3>", html.EscapeString(assignment.Title)))
		daysUntilDue := DaysUntil(assignment.DueDate, now)

		summary.WriteString("<h4>Key Information</h4>")
		summary.WriteString("<ul>")
		summary.WriteString(fmt.Sprintf("<li><strong>Due Date:</strong> %s (%d days remaining)</li>", assignment.DueDate.Format(longDateLayout), daysUntilDue))
		summary.WriteString(fmt.Sprintf("<li><strong>Priority Level:</strong> %s</li>", capitalize(assignment.Priority)))
		summary.WriteString("</ul>")

		if assignment.Description != "" {
			summary.WriteString(fmt.Sprintf("<h4>Description</h4><p>%s</p>", html.EscapeString(assignment.Description)))
		}

		summary.WriteString("<h4>Suggested Approach</h4>")
		summary.WriteString("<ol>")
		summary.WriteString("<li>Review all assignment requirements carefully</li>")
		summary.WriteString("<li>Break down the assignment into manageable tasks</li>")
		summary.WriteString("<li>Create a timeline for completion</li>")
		summary.WriteString("<li>Gather necessary resources and materials</li>")
		summary.WriteString("<li>Start with the most challenging parts first</li>")
		summary.WriteString("</ol>")

		if daysUntilDue <= 3 {
			summary.WriteString(`<div class="alert alert-warning">⚠️ <strong>Urgent:</strong> This assignment is due very soon. Focus your efforts on completing it as soon as possible.</div>`)
		}
	}

	if notes != "" {
		summary.WriteString(fmt.Sprintf("<h4>Additional Notes</h4><p>%s</p>", html.EscapeString(notes)))
	}

	summary.WriteString("<h4>Study Tips</h4>")
	summary.WriteString("<ul>")
	summary.WriteString("<li>Stay organized and keep track of your progress</li>")
	summary.WriteString("<li>Take regular breaks to maintain focus</li>")
	summary.WriteString("<li>Seek help if you encounter difficulties</li>")
	summary.WriteString("<li>Review your work before final submission</li>")
	summary.WriteString("</ul>")

	return summary.String()
}
