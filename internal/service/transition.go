package service

import (
	"time"

	"github.com/famhub/choreboard/internal/domain"
)

// Transition describes the joint state change a completion toggle applies:
// the task-side status flip and the ledger credit that must commit with it.
type Transition struct {
	NewStatus    domain.TaskStatus
	CompletedAt  *time.Time
	CreditMember string
	CreditDelta  int
}

// NextTransition computes the transition for a completion toggle without
// touching any store. Pending tasks move to Completed and carry a credit for
// the assignee worth the task's current point value. Completed tasks revert
// to Pending with no debit: points earned stay earned, a documented quirk of
// the reward model.
func NextTransition(task *domain.Task, now time.Time) Transition {
	if task.Status == domain.TaskStatusPending {
		return Transition{
			NewStatus:    domain.TaskStatusCompleted,
			CompletedAt:  &now,
			CreditMember: task.AssignedTo,
			CreditDelta:  task.Points,
		}
	}

	return Transition{
		NewStatus:   domain.TaskStatusPending,
		CompletedAt: nil,
	}
}

// Apply writes the transition onto the task. The caller commits the result
// together with the ledger credit in one unit of work.
func (tr Transition) Apply(task *domain.Task) {
	task.Status = tr.NewStatus
	task.CompletedAt = tr.CompletedAt
}

// HasCredit reports whether the transition carries a ledger credit.
func (tr Transition) HasCredit() bool {
	return tr.CreditDelta > 0
}
