package query_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/famhub/choreboard/internal/domain"
	"github.com/famhub/choreboard/internal/query"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func task(id string, status domain.TaskStatus, due string, assignedTo string) *domain.Task {
	return &domain.Task{
		ID:         id,
		Title:      "Task " + id,
		AssignedTo: assignedTo,
		DueDate:    date(due),
		Status:     status,
		Points:     10,
	}
}

func TestFilter(t *testing.T) {
	tasks := []*domain.Task{
		task("1", domain.TaskStatusPending, "2025-10-01", "Mom"),
		task("2", domain.TaskStatusCompleted, "2025-10-02", "Dad"),
		task("3", domain.TaskStatusPending, "2025-10-03", "Dad"),
	}

	tests := []struct {
		name       string
		status     string
		assignedTo string
		wantIDs    []string
	}{
		{"no filters", "", "", []string{"1", "2", "3"}},
		{"all sentinel", "All", "All", []string{"1", "2", "3"}},
		{"status pending", "Pending", "", []string{"1", "3"}},
		{"status completed", "Completed", "All", []string{"2"}},
		{"assignee only", "", "Dad", []string{"2", "3"}},
		{"both filters", "Pending", "Dad", []string{"3"}},
		{"no match", "Completed", "Mom", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.Filter(tasks, tt.status, tt.assignedTo)
			ids := make([]string, 0, len(got))
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSortPendingFirst_PendingPrecedeCompleted(t *testing.T) {
	tasks := []*domain.Task{
		task("c1", domain.TaskStatusCompleted, "2025-01-01", "Mom"),
		task("p1", domain.TaskStatusPending, "2025-12-31", "Mom"),
		task("c2", domain.TaskStatusCompleted, "2025-06-15", "Dad"),
		task("p2", domain.TaskStatusPending, "2025-03-01", "Dad"),
	}

	got := query.SortPendingFirst(tasks)
	require.Len(t, got, 4)

	// All Pending entries precede all Completed entries regardless of date.
	assert.Equal(t, "p2", got[0].ID)
	assert.Equal(t, "p1", got[1].ID)
	assert.Equal(t, "c1", got[2].ID)
	assert.Equal(t, "c2", got[3].ID)
}

func TestSortPendingFirst_StableOnTies(t *testing.T) {
	// Same status and due date: relative input order must be preserved.
	tasks := []*domain.Task{
		task("a", domain.TaskStatusPending, "2025-10-01", "Mom"),
		task("b", domain.TaskStatusPending, "2025-10-01", "Dad"),
		task("c", domain.TaskStatusPending, "2025-10-01", "Junior"),
	}

	got := query.SortPendingFirst(tasks)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestSortPendingFirst_DoesNotMutateInput(t *testing.T) {
	tasks := []*domain.Task{
		task("c", domain.TaskStatusCompleted, "2025-01-01", "Mom"),
		task("p", domain.TaskStatusPending, "2025-01-02", "Mom"),
	}

	_ = query.SortPendingFirst(tasks)

	assert.Equal(t, "c", tasks[0].ID)
	assert.Equal(t, "p", tasks[1].ID)
}

func TestFilteredSorted(t *testing.T) {
	tasks := []*domain.Task{
		task("c1", domain.TaskStatusCompleted, "2025-01-01", "Mom"),
		task("p1", domain.TaskStatusPending, "2025-12-31", "Dad"),
		task("c2", domain.TaskStatusCompleted, "2025-06-15", "Dad"),
		task("p2", domain.TaskStatusPending, "2025-03-01", "Dad"),
	}

	got := query.FilteredSorted(tasks, domain.FilterAll, "Dad")
	require.Len(t, got, 3)
	assert.Equal(t, "p2", got[0].ID)
	assert.Equal(t, "p1", got[1].ID)
	assert.Equal(t, "c2", got[2].ID)
}

func TestStats(t *testing.T) {
	tasks := []*domain.Task{
		task("1", domain.TaskStatusPending, "2025-10-01", "Mom"),
		task("2", domain.TaskStatusCompleted, "2025-10-02", "Dad"),
		task("3", domain.TaskStatusPending, "2025-10-03", "Dad"),
		task("4", domain.TaskStatusPending, "2025-10-04", "Junior"),
	}

	stats := query.Stats(tasks)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Pending)
	assert.Equal(t, 1, stats.Completed)
}

func TestStats_Empty(t *testing.T) {
	stats := query.Stats(nil)
	assert.Equal(t, query.TaskStats{}, stats)
}

func TestTotalPoints(t *testing.T) {
	members := []*domain.Member{
		{Name: "Mom", Points: 150},
		{Name: "Dad", Points: 100},
		{Name: "Junior", Points: 50},
	}

	assert.Equal(t, 300, query.TotalPoints(members))
	assert.Equal(t, 0, query.TotalPoints(nil))
}
