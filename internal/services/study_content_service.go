package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/quillandco/studyhub/internal/models"
)

const instructionCloseMarker = "[/INST]"

const (
	studyPlanMaxNewTokens = 800
	summaryMaxNewTokens   = 600
)

// StudyContentService orchestrates prompt building, the generation attempt and
// the deterministic fallback. Its methods always return usable HTML; a failed
// generation is absorbed, never surfaced.
type StudyContentService struct {
	generator TextGenerator
}

func NewStudyContentService(generator TextGenerator) *StudyContentService {
	return &StudyContentService{generator: generator}
}

func (service *StudyContentService) BuildStudyPlan(assignments []models.Assignment, now time.Time) string {
	prompt := buildStudyPlanPrompt(assignments, now)
	result := service.generator.Generate(prompt, studyPlanMaxNewTokens)
	if !result.Available {
		return FallbackStudyPlan(assignments, now)
	}
	return formatGeneratedText(result.Text)
}

func (service *StudyContentService) BuildSummary(assignment *models.Assignment, notes string, now time.Time) string {
	prompt := buildSummaryPrompt(assignment, notes)
	result := service.generator.Generate(prompt, summaryMaxNewTokens)
	if !result.Available {
		return FallbackSummary(assignment, notes, now)
	}
	return formatGeneratedText(result.Text)
}

// formatGeneratedText discards everything through the last instruction-closing
// marker (the model echoes the prompt) and converts the remainder to HTML.
func formatGeneratedText(text string) string {
	if index := strings.LastIndex(text, instructionCloseMarker); index >= 0 {
		text = strings.TrimSpace(text[index+len(instructionCloseMarker):])
	}
	return MarkdownToHTML(text)
}

func buildStudyPlanPrompt(assignments []models.Assignment, now time.Time) string {
	assignmentLines := make([]string, 0, len(assignments))
	for _, assignment := range assignments {
		assignmentLines = append(assignmentLines, fmt.Sprintf(
			"- %s (Due: %s, Priority: %s, Days remaining: %d)",
			assignment.Title,
			assignment.DueDate.Format("2006-01-02"),
			assignment.Priority,
			DaysUntil(assignment.DueDate, now),
		))
	}

	return fmt.Sprintf(`[INST] You are a helpful academic study assistant. Create a personalized study plan for these assignments:

%s

Provide:
1. A recommended study schedule
2. Time allocation for each assignment based on priority and due date
3. Specific study strategies and tips
4. Milestones and checkpoints

Format the response clearly. [/INST]`, strings.Join(assignmentLines, "\n"))
}

func buildSummaryPrompt(assignment *models.Assignment, notes string) string {
	if assignment == nil {
		return fmt.Sprintf(`[INST] You are a helpful study assistant. Provide a study summary and key takeaways for these notes:

%s

Organize the information clearly and highlight important points. [/INST]`, notes)
	}

	description := assignment.Description
	if description == "" {
		description = "No description provided"
	}
	additionalNotes := notes
	if additionalNotes == "" {
		additionalNotes = "None"
	}

	return fmt.Sprintf(`[INST] You are a helpful academic study assistant. Provide a concise study summary for this assignment:

Title: %s
Description: %s
Due Date: %s
Priority: %s
Additional notes: %s

Provide:
1. Key points to focus on
2. Suggested approach
3. Time management tips [/INST]`,
		assignment.Title,
		description,
		assignment.DueDate.Format("2006-01-02"),
		assignment.Priority,
		additionalNotes,
	)
}
