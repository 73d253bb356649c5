package dto

import (
	"time"

	"github.com/famhub/choreboard/internal/domain"
	"github.com/famhub/choreboard/internal/query"
	"github.com/famhub/choreboard/internal/service"
)

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	AssignedTo  string     `json:"assignedTo"`
	DueDate     string     `json:"dueDate"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Points      int        `json:"points"`
	Description string     `json:"description,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// MemberResponse represents a ledger member in API responses.
type MemberResponse struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Avatar string `json:"avatar,omitempty"`
}

// ToggleResponse is the response for PATCH /api/tasks/complete/{id}: the
// updated task plus the full member list for refreshing derived views.
type ToggleResponse struct {
	Task          TaskResponse     `json:"task"`
	Members       []MemberResponse `json:"members"`
	LedgerSkipped bool             `json:"ledgerSkipped"`
}

// DeleteResponse is the response for DELETE /api/tasks/{id}.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// StatsResponse holds aggregate counts and the household point total.
type StatsResponse struct {
	Total       int `json:"total"`
	Pending     int `json:"pending"`
	Completed   int `json:"completed"`
	TotalPoints int `json:"totalPoints"`
}

// ToTaskResponse converts domain.Task to TaskResponse.
func ToTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		AssignedTo:  task.AssignedTo,
		DueDate:     task.DueDate.Format(dateLayout),
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		Points:      task.Points,
		Description: task.Description,
		CompletedAt: task.CompletedAt,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskResponses converts a task slice, preserving order.
func ToTaskResponses(tasks []*domain.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}

// ToMemberResponses converts a member slice, preserving order.
func ToMemberResponses(members []*domain.Member) []MemberResponse {
	responses := make([]MemberResponse, len(members))
	for i, member := range members {
		responses[i] = MemberResponse{
			Name:   member.Name,
			Points: member.Points,
			Avatar: member.Avatar,
		}
	}
	return responses
}

// ToToggleResponse converts a service.ToggleResult to ToggleResponse.
func ToToggleResponse(result *service.ToggleResult) ToggleResponse {
	return ToggleResponse{
		Task:          ToTaskResponse(result.Task),
		Members:       ToMemberResponses(result.Members),
		LedgerSkipped: result.LedgerSkipped,
	}
}

// ToStatsResponse combines task counts with the member point total.
func ToStatsResponse(stats query.TaskStats, totalPoints int) StatsResponse {
	return StatsResponse{
		Total:       stats.Total,
		Pending:     stats.Pending,
		Completed:   stats.Completed,
		TotalPoints: totalPoints,
	}
}
