package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/famhub/choreboard/internal/domain"
	"github.com/famhub/choreboard/internal/service"
)

func pendingTask() *domain.Task {
	return &domain.Task{
		ID:         "t-1",
		Title:      "Walk the dog",
		AssignedTo: "Junior",
		Status:     domain.TaskStatusPending,
		Points:     10,
	}
}

func TestNextTransition_PendingToCompleted(t *testing.T) {
	now := time.Now()
	task := pendingTask()

	tr := service.NextTransition(task, now)

	assert.Equal(t, domain.TaskStatusCompleted, tr.NewStatus)
	require.NotNil(t, tr.CompletedAt)
	assert.Equal(t, now, *tr.CompletedAt)
	assert.Equal(t, "Junior", tr.CreditMember)
	assert.Equal(t, 10, tr.CreditDelta)
	assert.True(t, tr.HasCredit())
}

func TestNextTransition_CreditUsesCurrentPoints(t *testing.T) {
	// An edit before the toggle changes the credited value.
	task := pendingTask()
	task.Points = 5

	tr := service.NextTransition(task, time.Now())

	assert.Equal(t, 5, tr.CreditDelta)
}

func TestNextTransition_RevertDoesNotDebit(t *testing.T) {
	now := time.Now()
	completedAt := now.Add(-time.Hour)
	task := pendingTask()
	task.Status = domain.TaskStatusCompleted
	task.CompletedAt = &completedAt

	tr := service.NextTransition(task, now)

	assert.Equal(t, domain.TaskStatusPending, tr.NewStatus)
	assert.Nil(t, tr.CompletedAt)
	// Points earned stay earned: reverting carries no ledger change.
	assert.Equal(t, 0, tr.CreditDelta)
	assert.False(t, tr.HasCredit())
}

func TestTransition_Apply(t *testing.T) {
	now := time.Now()
	task := pendingTask()

	tr := service.NextTransition(task, now)
	tr.Apply(task)

	assert.Equal(t, domain.TaskStatusCompleted, task.Status)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, now, *task.CompletedAt)

	// Toggling twice returns the task to its original status.
	tr = service.NextTransition(task, now.Add(time.Minute))
	tr.Apply(task)

	assert.Equal(t, domain.TaskStatusPending, task.Status)
	assert.Nil(t, task.CompletedAt)
}

func TestValidateFields(t *testing.T) {
	valid := domain.Task{
		Title:      "Mow the lawn",
		AssignedTo: "Dad",
		DueDate:    time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Priority:   domain.TaskPriorityLow,
		Status:     domain.TaskStatusPending,
		Points:     20,
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Task)
		wantErr error
	}{
		{"valid", func(t *domain.Task) {}, nil},
		{"empty title", func(t *domain.Task) { t.Title = "" }, domain.ErrValidation},
		{"empty assignee", func(t *domain.Task) { t.AssignedTo = "" }, domain.ErrValidation},
		{"zero due date", func(t *domain.Task) { t.DueDate = time.Time{} }, domain.ErrValidation},
		{"zero points", func(t *domain.Task) { t.Points = 0 }, domain.ErrValidation},
		{"negative points", func(t *domain.Task) { t.Points = -3 }, domain.ErrValidation},
		{"bad priority", func(t *domain.Task) { t.Priority = "Urgent" }, domain.ErrInvalidPriority},
		{"bad status", func(t *domain.Task) { t.Status = "Done" }, domain.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := valid
			tt.mutate(&task)
			err := service.ValidateFields(&task)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
