package services

import (
	"strings"
	"testing"
	"time"

	"github.com/quillandco/studyhub/internal/models"
)

type stubTextGenerator struct {
	result        GenerationResult
	lastPrompt    string
	lastMaxTokens int
	callCount     int
}

func (stub *stubTextGenerator) Generate(prompt string, maxNewTokens int) GenerationResult {
	stub.callCount++
	stub.lastPrompt = prompt
	stub.lastMaxTokens = maxNewTokens
	return stub.result
}

func studyContentTestNow() time.Time {
	return time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)
}

func TestBuildStudyPlanFormatsGeneratedText(t *testing.T) {
	now := studyContentTestNow()
	generator := &stubTextGenerator{result: GenerationResult{
		Available: true,
		Text:      "[INST] the echoed prompt [/INST]\n## Schedule\n- Monday: outline\n- Tuesday: draft",
	}}
	service := NewStudyContentService(generator)

	assignments := []models.Assignment{{
		Title:    "History essay",
		DueDate:  now.AddDate(0, 0, 5),
		Priority: models.PriorityHigh,
	}}
	plan := service.BuildStudyPlan(assignments, now)

	if strings.Contains(plan, "[INST]") || strings.Contains(plan, "[/INST]") {
		t.Fatalf("expected prompt echo stripped from output, got %q", plan)
	}
	if !strings.Contains(plan, "<li>Monday: outline</li>") {
		t.Fatalf("expected generated markdown converted to HTML, got %q", plan)
	}
	if generator.lastMaxTokens != 800 {
		t.Fatalf("expected study plan token budget 800, got %d", generator.lastMaxTokens)
	}
}

func TestBuildStudyPlanPromptListsAssignments(t *testing.T) {
	now := studyContentTestNow()
	generator := &stubTextGenerator{result: GenerationResult{Available: true, Text: "[/INST] ok"}}
	service := NewStudyContentService(generator)

	assignments := []models.Assignment{{
		Title:    "History essay",
		DueDate:  now.AddDate(0, 0, 5),
		Priority: models.PriorityHigh,
	}}
	service.BuildStudyPlan(assignments, now)

	expectedLine := "- History essay (Due: 2026-04-06, Priority: high, Days remaining: 5)"
	if !strings.Contains(generator.lastPrompt, expectedLine) {
		t.Fatalf("expected prompt to contain %q, got %q", expectedLine, generator.lastPrompt)
	}
	if !strings.HasPrefix(generator.lastPrompt, "[INST]") || !strings.HasSuffix(generator.lastPrompt, "[/INST]") {
		t.Fatalf("expected instruction framing around the prompt, got %q", generator.lastPrompt)
	}
}

func TestBuildStudyPlanFallsBackWhenUnavailable(t *testing.T) {
	now := studyContentTestNow()
	generator := &stubTextGenerator{result: GenerationResult{Available: false, Reason: "missing api token"}}
	service := NewStudyContentService(generator)

	assignments := []models.Assignment{{
		Title:    "History essay",
		DueDate:  now.AddDate(0, 0, 5),
		Priority: models.PriorityHigh,
	}}
	plan := service.BuildStudyPlan(assignments, now)

	if plan != FallbackStudyPlan(assignments, now) {
		t.Fatalf("expected the deterministic fallback plan, got %q", plan)
	}
	if generator.callCount != 1 {
		t.Fatalf("expected exactly one generation attempt, got %d", generator.callCount)
	}
}

func TestBuildSummaryPromptForAssignment(t *testing.T) {
	now := studyContentTestNow()
	generator := &stubTextGenerator{result: GenerationResult{Available: true, Text: "[/INST] summary text"}}
	service := NewStudyContentService(generator)

	assignment := models.Assignment{
		Title:    "Physics lab",
		DueDate:  now.AddDate(0, 0, 3),
		Priority: models.PriorityMedium,
	}
	service.BuildSummary(&assignment, "", now)

	if !strings.Contains(generator.lastPrompt, "Title: Physics lab") {
		t.Fatalf("expected assignment title in prompt, got %q", generator.lastPrompt)
	}
	if !strings.Contains(generator.lastPrompt, "Description: No description provided") {
		t.Fatalf("expected description placeholder in prompt, got %q", generator.lastPrompt)
	}
	if !strings.Contains(generator.lastPrompt, "Additional notes: None") {
		t.Fatalf("expected notes placeholder in prompt, got %q", generator.lastPrompt)
	}
	if generator.lastMaxTokens != 600 {
		t.Fatalf("expected summary token budget 600, got %d", generator.lastMaxTokens)
	}
}

func TestBuildSummaryPromptForNotesOnly(t *testing.T) {
	now := studyContentTestNow()
	generator := &stubTextGenerator{result: GenerationResult{Available: true, Text: "[/INST] summary text"}}
	service := NewStudyContentService(generator)

	service.BuildSummary(nil, "photosynthesis stages", now)

	if !strings.Contains(generator.lastPrompt, "photosynthesis stages") {
		t.Fatalf("expected notes in prompt, got %q", generator.lastPrompt)
	}
	if strings.Contains(generator.lastPrompt, "Title:") {
		t.Fatalf("expected no assignment fields in a notes-only prompt, got %q", generator.lastPrompt)
	}
}

func TestBuildSummaryFallsBackWhenUnavailable(t *testing.T) {
	now := studyContentTestNow()
	generator := &stubTextGenerator{result: GenerationResult{Available: false, Reason: "unexpected status"}}
	service := NewStudyContentService(generator)

	assignment := models.Assignment{
		Title:    "Physics lab",
		DueDate:  now.AddDate(0, 0, 2),
		Priority: models.PriorityHigh,
	}
	summary := service.BuildSummary(&assignment, "bring goggles", now)

	if summary != FallbackSummary(&assignment, "bring goggles", now) {
		t.Fatalf("expected the deterministic fallback summary, got %q", summary)
	}
}

func TestFormatGeneratedTextStripsThroughLastMarker(t *testing.T) {
	formatted := formatGeneratedText("[INST] outer [/INST] middle [/INST]\nfinal answer")

	if strings.Contains(formatted, "middle") {
		t.Fatalf("expected everything through the last marker removed, got %q", formatted)
	}
	if !strings.Contains(formatted, "<p>final answer</p>") {
		t.Fatalf("expected remaining text rendered as a paragraph, got %q", formatted)
	}
}

func TestFormatGeneratedTextWithoutMarker(t *testing.T) {
	formatted := formatGeneratedText("plain reply")

	if formatted != "<p>plain reply</p>" {
		t.Fatalf("expected text without markers formatted as-is, got %q", formatted)
	}
}
