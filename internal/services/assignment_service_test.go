package services

import (
	"errors"
	"testing"
	"time"

	"github.com/quillandco/studyhub/internal/models"
)

type stubAssignmentStore struct {
	assignments   []models.Assignment
	nextID        uint
	createCount   int
	saveCount     int
	deleteCount   int
	statusUpdates []uint
}

func (stub *stubAssignmentStore) ListByUser(userID uint, priorityFilter string, statusFilter string) ([]models.Assignment, error) {
	result := make([]models.Assignment, 0, len(stub.assignments))
	for _, assignment := range stub.assignments {
		if assignment.UserID != userID {
			continue
		}
		if priorityFilter != "" && priorityFilter != "all" && assignment.Priority != priorityFilter {
			continue
		}
		if statusFilter != "" && statusFilter != "all" && assignment.Status != statusFilter {
			continue
		}
		result = append(result, assignment)
	}
	return result, nil
}

func (stub *stubAssignmentStore) FindByID(assignmentID uint) (models.Assignment, bool, error) {
	for _, assignment := range stub.assignments {
		if assignment.ID == assignmentID {
			return assignment, true, nil
		}
	}
	return models.Assignment{}, false, nil
}

func (stub *stubAssignmentStore) FindOwnedByIDs(userID uint, assignmentIDs []uint) ([]models.Assignment, error) {
	wanted := make(map[uint]bool, len(assignmentIDs))
	for _, id := range assignmentIDs {
		wanted[id] = true
	}
	result := make([]models.Assignment, 0, len(assignmentIDs))
	for _, assignment := range stub.assignments {
		if assignment.UserID == userID && wanted[assignment.ID] {
			result = append(result, assignment)
		}
	}
	return result, nil
}

func (stub *stubAssignmentStore) Create(assignment *models.Assignment) error {
	stub.createCount++
	stub.nextID++
	assignment.ID = stub.nextID
	stub.assignments = append(stub.assignments, *assignment)
	return nil
}

func (stub *stubAssignmentStore) Save(assignment *models.Assignment) error {
	stub.saveCount++
	for index := range stub.assignments {
		if stub.assignments[index].ID == assignment.ID {
			stub.assignments[index] = *assignment
			return nil
		}
	}
	return errors.New("assignment missing")
}

func (stub *stubAssignmentStore) UpdateStatus(assignmentID uint, status string) error {
	for index := range stub.assignments {
		if stub.assignments[index].ID == assignmentID {
			stub.assignments[index].Status = status
			stub.statusUpdates = append(stub.statusUpdates, assignmentID)
			return nil
		}
	}
	return errors.New("assignment missing")
}

func (stub *stubAssignmentStore) Delete(assignmentID uint) error {
	stub.deleteCount++
	for index := range stub.assignments {
		if stub.assignments[index].ID == assignmentID {
			stub.assignments = append(stub.assignments[:index], stub.assignments[index+1:]...)
			return nil
		}
	}
	return nil
}

func newStubAssignmentStore(assignments ...models.Assignment) *stubAssignmentStore {
	store := &stubAssignmentStore{assignments: assignments}
	for _, assignment := range assignments {
		if assignment.ID > store.nextID {
			store.nextID = assignment.ID
		}
	}
	return store
}

func TestAssignmentServiceCreateValidInput(t *testing.T) {
	store := newStubAssignmentStore()
	service := NewAssignmentService(store)

	created, err := service.Create(7, AssignmentInput{
		Title:    "  Read chapter 5  ",
		DueDate:  "2026-05-20",
		Priority: models.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.Title != "Read chapter 5" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if created.Status != models.StatusPending {
		t.Fatalf("expected new assignment to be pending, got %q", created.Status)
	}
	if created.UserID != 7 {
		t.Fatalf("expected owner 7, got %d", created.UserID)
	}
	if !created.DueDate.Equal(time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected due date %v", created.DueDate)
	}
}

func TestAssignmentServiceCreateDefaultsPriorityToMedium(t *testing.T) {
	store := newStubAssignmentStore()
	service := NewAssignmentService(store)

	created, err := service.Create(7, AssignmentInput{Title: "Quiz prep", DueDate: "2026-05-20"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Priority != models.PriorityMedium {
		t.Fatalf("expected default priority medium, got %q", created.Priority)
	}
}

func TestAssignmentServiceCreateValidationMessages(t *testing.T) {
	cases := []struct {
		name    string
		input   AssignmentInput
		message string
	}{
		{"missing title", AssignmentInput{DueDate: "2026-05-20"}, "Assignment title is required!"},
		{"blank title", AssignmentInput{Title: "   ", DueDate: "2026-05-20"}, "Assignment title is required!"},
		{"missing due date", AssignmentInput{Title: "Essay"}, "Due date is required!"},
		{"wrong date format", AssignmentInput{Title: "Essay", DueDate: "13/01/2025"}, "Invalid date format!"},
		{"unknown priority", AssignmentInput{Title: "Essay", DueDate: "2026-05-20", Priority: "urgent"}, "Invalid priority!"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			store := newStubAssignmentStore()
			service := NewAssignmentService(store)

			_, err := service.Create(7, testCase.input)
			if !IsValidationError(err) {
				t.Fatalf("expected a validation error, got %v", err)
			}
			if err.Error() != testCase.message {
				t.Fatalf("expected message %q, got %q", testCase.message, err.Error())
			}
			if store.createCount != 0 {
				t.Fatalf("expected nothing persisted on validation failure, got %d creates", store.createCount)
			}
		})
	}
}

func TestAssignmentServiceGetOwnershipOutcomes(t *testing.T) {
	store := newStubAssignmentStore(models.Assignment{
		ID:     1,
		Title:  "Owned by user 1",
		UserID: 1,
		Status: models.StatusPending,
	})
	service := NewAssignmentService(store)

	if _, err := service.Get(1, 1); err != nil {
		t.Fatalf("expected owner to load the assignment, got %v", err)
	}
	if _, err := service.Get(2, 1); !errors.Is(err, ErrNotAssignmentOwner) {
		t.Fatalf("expected ownership error for a foreign row, got %v", err)
	}
	if _, err := service.Get(1, 99); !errors.Is(err, ErrAssignmentNotFound) {
		t.Fatalf("expected not-found error for a missing row, got %v", err)
	}
}

func TestAssignmentServiceUpdateRejectsForeignRowBeforeValidation(t *testing.T) {
	store := newStubAssignmentStore(models.Assignment{ID: 1, Title: "Original", UserID: 1, Status: models.StatusPending})
	service := NewAssignmentService(store)

	_, err := service.Update(2, 1, AssignmentInput{Title: "Hijacked", DueDate: "2026-05-20"})
	if !errors.Is(err, ErrNotAssignmentOwner) {
		t.Fatalf("expected ownership error, got %v", err)
	}
	if store.saveCount != 0 {
		t.Fatalf("expected no save for a foreign row, got %d", store.saveCount)
	}
	if store.assignments[0].Title != "Original" {
		t.Fatalf("expected row unchanged, got %q", store.assignments[0].Title)
	}
}

func TestAssignmentServiceUpdatePersistsChanges(t *testing.T) {
	store := newStubAssignmentStore(models.Assignment{
		ID:       1,
		Title:    "Original",
		UserID:   1,
		Priority: models.PriorityLow,
		Status:   models.StatusPending,
	})
	service := NewAssignmentService(store)

	updated, err := service.Update(1, 1, AssignmentInput{
		Title:    "Revised",
		DueDate:  "2026-06-01",
		Priority: models.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Revised" || updated.Priority != models.PriorityHigh {
		t.Fatalf("unexpected updated row: %+v", updated)
	}
	if store.assignments[0].Title != "Revised" {
		t.Fatalf("expected change persisted, got %q", store.assignments[0].Title)
	}
	if store.assignments[0].Status != models.StatusPending {
		t.Fatalf("expected status untouched by update, got %q", store.assignments[0].Status)
	}
}

func TestAssignmentServiceDeleteEnforcesOwnership(t *testing.T) {
	store := newStubAssignmentStore(models.Assignment{ID: 1, Title: "Keep me", UserID: 1, Status: models.StatusPending})
	service := NewAssignmentService(store)

	if err := service.Delete(2, 1); !errors.Is(err, ErrNotAssignmentOwner) {
		t.Fatalf("expected ownership error, got %v", err)
	}
	if len(store.assignments) != 1 {
		t.Fatal("expected the row to survive a foreign delete")
	}

	if err := service.Delete(1, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.assignments) != 0 {
		t.Fatal("expected the row removed by its owner")
	}
}

func TestAssignmentServiceCompleteIsUnconditional(t *testing.T) {
	store := newStubAssignmentStore(
		models.Assignment{ID: 1, UserID: 1, Status: models.StatusOverdue},
		models.Assignment{ID: 2, UserID: 1, Status: models.StatusCompleted},
	)
	service := NewAssignmentService(store)

	if err := service.Complete(1, 1); err != nil {
		t.Fatalf("complete overdue: %v", err)
	}
	if store.assignments[0].Status != models.StatusCompleted {
		t.Fatalf("expected overdue row completed, got %q", store.assignments[0].Status)
	}

	if err := service.Complete(1, 2); err != nil {
		t.Fatalf("complete already-completed: %v", err)
	}
	if store.assignments[1].Status != models.StatusCompleted {
		t.Fatalf("expected completed row to stay completed, got %q", store.assignments[1].Status)
	}
}

func TestPromoteOverdueMarksOnlyPastDuePendingRows(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	store := newStubAssignmentStore(
		models.Assignment{ID: 1, UserID: 1, Status: models.StatusPending, DueDate: now.AddDate(0, 0, -2)},
		models.Assignment{ID: 2, UserID: 1, Status: models.StatusPending, DueDate: now.AddDate(0, 0, 2)},
		models.Assignment{ID: 3, UserID: 1, Status: models.StatusCompleted, DueDate: now.AddDate(0, 0, -5)},
		models.Assignment{ID: 4, UserID: 2, Status: models.StatusPending, DueDate: now.AddDate(0, 0, -2)},
	)
	service := NewAssignmentService(store)

	if err := service.PromoteOverdue(1, now); err != nil {
		t.Fatalf("promote overdue: %v", err)
	}

	if store.assignments[0].Status != models.StatusOverdue {
		t.Fatalf("expected past-due pending row promoted, got %q", store.assignments[0].Status)
	}
	if store.assignments[1].Status != models.StatusPending {
		t.Fatalf("expected future row untouched, got %q", store.assignments[1].Status)
	}
	if store.assignments[2].Status != models.StatusCompleted {
		t.Fatalf("expected completed row never to revert, got %q", store.assignments[2].Status)
	}
	if store.assignments[3].Status != models.StatusPending {
		t.Fatalf("expected another user's row untouched, got %q", store.assignments[3].Status)
	}
}

func TestPromoteOverdueIsIdempotent(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	store := newStubAssignmentStore(
		models.Assignment{ID: 1, UserID: 1, Status: models.StatusPending, DueDate: now.AddDate(0, 0, -2)},
	)
	service := NewAssignmentService(store)

	if err := service.PromoteOverdue(1, now); err != nil {
		t.Fatalf("first promote: %v", err)
	}
	if err := service.PromoteOverdue(1, now); err != nil {
		t.Fatalf("second promote: %v", err)
	}

	if len(store.statusUpdates) != 1 {
		t.Fatalf("expected exactly one status write, got %d", len(store.statusUpdates))
	}
}

func TestPromoteOverdueLeavesRowDueLaterToday(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	store := newStubAssignmentStore(
		models.Assignment{ID: 1, UserID: 1, Status: models.StatusPending, DueDate: now.Add(3 * time.Hour)},
	)
	service := NewAssignmentService(store)

	if err := service.PromoteOverdue(1, now); err != nil {
		t.Fatalf("promote overdue: %v", err)
	}
	if store.assignments[0].Status != models.StatusPending {
		t.Fatalf("expected row due later today to stay pending, got %q", store.assignments[0].Status)
	}
}

func TestListPendingPromotesThenFilters(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	store := newStubAssignmentStore(
		models.Assignment{ID: 1, UserID: 1, Status: models.StatusPending, DueDate: now.AddDate(0, 0, -1)},
		models.Assignment{ID: 2, UserID: 1, Status: models.StatusPending, DueDate: now.AddDate(0, 0, 4)},
	)
	service := NewAssignmentService(store)

	pending, err := service.ListPending(1, now)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}

	if len(pending) != 1 || pending[0].ID != 2 {
		t.Fatalf("expected only the future pending row, got %+v", pending)
	}
	if store.assignments[0].Status != models.StatusOverdue {
		t.Fatalf("expected the past-due row promoted before filtering, got %q", store.assignments[0].Status)
	}
}
