package dto

import (
	"fmt"
	"time"

	"github.com/famhub/choreboard/internal/domain"
)

// dateLayout is the calendar-date format clients send for due dates.
const dateLayout = "2006-01-02"

// CreateTaskRequest represents the request body for POST /api/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	AssignedTo  string `json:"assignedTo"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority,omitempty"`
	Points      int    `json:"points"`
	Description string `json:"description,omitempty"`
}

// UpdateTaskRequest represents the partial body for PATCH /api/tasks/{id}.
// Absent fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	AssignedTo  *string `json:"assignedTo,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	Points      *int    `json:"points,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ParseDate parses a due date sent as a calendar date, accepting a full
// RFC 3339 timestamp as a fallback.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: dueDate must be a YYYY-MM-DD date", domain.ErrValidation)
	}
	return t, nil
}
