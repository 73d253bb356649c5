package domain

import "time"

// TaskStatus represents the completion state of a chore.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "Pending"
	TaskStatusCompleted TaskStatus = "Completed"
)

// IsValid checks if the status is one of the allowed values.
func (s TaskStatus) IsValid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// Toggled returns the opposite status. Pending/Completed is the only
// transition pair a task ever goes through.
func (s TaskStatus) Toggled() TaskStatus {
	if s == TaskStatusPending {
		return TaskStatusCompleted
	}
	return TaskStatusPending
}

// TaskPriority represents the priority level of a chore.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// IsValid checks if the priority is one of the allowed values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}

// FilterAll is the sentinel filter value meaning "no filtering".
const FilterAll = "All"

// Task represents a household chore with an owner, a due date, and a point
// reward credited to the assignee on completion.
type Task struct {
	ID          string
	Title       string
	AssignedTo  string
	DueDate     time.Time
	Priority    TaskPriority
	Status      TaskStatus
	Points      int
	Description string
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsCompleted reports whether the task is currently marked Completed.
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// IsAssignedTo reports whether the task belongs to the named member.
func (t *Task) IsAssignedTo(name string) bool {
	return t.AssignedTo == name
}
