// Package query derives task views and aggregate statistics from in-memory
// snapshots. Everything here is pure: no store access, no mutation of the
// input slices.
package query

import (
	"sort"

	"github.com/famhub/choreboard/internal/domain"
)

// TaskStats holds aggregate counts over a task snapshot.
type TaskStats struct {
	Total     int
	Pending   int
	Completed int
}

// Filter applies the status and assignee filters to a task snapshot. An
// empty value or "All" leaves the dimension unfiltered.
func Filter(tasks []*domain.Task, status, assignedTo string) []*domain.Task {
	filtered := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if status != "" && status != domain.FilterAll && string(task.Status) != status {
			continue
		}
		if assignedTo != "" && assignedTo != domain.FilterAll && task.AssignedTo != assignedTo {
			continue
		}
		filtered = append(filtered, task)
	}
	return filtered
}

// SortPendingFirst orders tasks so that all Pending tasks precede all
// Completed tasks, ascending by due date within each status bucket. The sort
// is stable: ties on status and due date keep their relative input order.
func SortPendingFirst(tasks []*domain.Task) []*domain.Task {
	sorted := make([]*domain.Task, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Status != sorted[j].Status {
			return sorted[i].Status == domain.TaskStatusPending
		}
		return sorted[i].DueDate.Before(sorted[j].DueDate)
	})

	return sorted
}

// FilteredSorted is the full derived view: filter by status and assignee,
// then order pending-first by due date.
func FilteredSorted(tasks []*domain.Task, status, assignedTo string) []*domain.Task {
	return SortPendingFirst(Filter(tasks, status, assignedTo))
}

// Stats counts tasks by completion status.
func Stats(tasks []*domain.Task) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, task := range tasks {
		if task.IsCompleted() {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}

// TotalPoints sums all member point balances.
func TotalPoints(members []*domain.Member) int {
	total := 0
	for _, member := range members {
		total += member.Points
	}
	return total
}
