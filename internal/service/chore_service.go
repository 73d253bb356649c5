package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/famhub/choreboard/internal/domain"
	"github.com/famhub/choreboard/internal/repository"
)

// ChoreService coordinates task lifecycle operations and the point-ledger
// side effect of completion toggles.
type ChoreService struct {
	pool       *pgxpool.Pool
	taskRepo   *repository.TaskRepository
	memberRepo *repository.MemberRepository
	validator  *Validator
}

// NewChoreService creates a new ChoreService.
func NewChoreService(
	pool *pgxpool.Pool,
	taskRepo *repository.TaskRepository,
	memberRepo *repository.MemberRepository,
) *ChoreService {
	return &ChoreService{
		pool:       pool,
		taskRepo:   taskRepo,
		memberRepo: memberRepo,
		validator:  NewValidator(memberRepo),
	}
}

// CreateTaskParams holds the fields of a task draft. ID, status, and
// timestamps are assigned by the store.
type CreateTaskParams struct {
	Title       string
	AssignedTo  string
	DueDate     time.Time
	Priority    domain.TaskPriority
	Points      int
	Description string
}

// UpdateTaskParams is a partial patch; nil fields are left unchanged.
type UpdateTaskParams struct {
	Title       *string
	AssignedTo  *string
	DueDate     *time.Time
	Priority    *domain.TaskPriority
	Status      *domain.TaskStatus
	Points      *int
	Description *string
}

// ToggleResult is what a completion toggle returns: the updated task and the
// full member list so the caller can refresh derived views. LedgerSkipped is
// set when the assignee was missing from the ledger and no credit happened.
type ToggleResult struct {
	Task          *domain.Task
	Members       []*domain.Member
	LedgerSkipped bool
}

// CreateTask validates a draft and stores it as a new Pending task.
func (s *ChoreService) CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	priority := params.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}

	task := &domain.Task{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(params.Title),
		AssignedTo:  params.AssignedTo,
		DueDate:     params.DueDate,
		Priority:    priority,
		Status:      domain.TaskStatusPending,
		Points:      params.Points,
		Description: strings.TrimSpace(params.Description),
	}

	if err := s.validator.ValidateTask(ctx, task); err != nil {
		return nil, err
	}

	created, err := s.taskRepo.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	slog.Info("task created",
		"task_id", created.ID,
		"assigned_to", created.AssignedTo,
		"points", created.Points,
	)

	return created, nil
}

// UpdateTask merges a partial patch into an existing task and revalidates
// the result. The merge happens under a row lock so concurrent edits on the
// same task serialize.
func (s *ChoreService) UpdateTask(ctx context.Context, taskID string, patch UpdateTaskParams) (*domain.Task, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	task, err := s.taskRepo.GetByIDForUpdate(ctx, tx, taskID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.AssignedTo != nil {
		task.AssignedTo = *patch.AssignedTo
	}
	if patch.DueDate != nil {
		task.DueDate = *patch.DueDate
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Points != nil {
		task.Points = *patch.Points
	}
	if patch.Description != nil {
		task.Description = strings.TrimSpace(*patch.Description)
	}

	if err := s.validator.ValidateTask(ctx, task); err != nil {
		return nil, err
	}

	updated, err := s.taskRepo.Update(ctx, tx, task)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("task updated", "task_id", updated.ID)

	return updated, nil
}

// DeleteTask removes a task. Deleting an already-deleted ID surfaces
// ErrTaskNotFound rather than succeeding silently.
func (s *ChoreService) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return err
	}

	slog.Info("task deleted", "task_id", taskID)

	return nil
}

// ToggleCompletion flips a task between Pending and Completed and, on the
// Pending->Completed direction, credits the assignee's point balance. The
// status write and the credit commit as one transaction: a failed credit
// (other than a missing member) leaves the task status unchanged. The row
// lock taken by GetByIDForUpdate serializes concurrent toggles on the same
// task, so a rapid double toggle never double-credits.
func (s *ChoreService) ToggleCompletion(ctx context.Context, taskID string) (*ToggleResult, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	task, err := s.taskRepo.GetByIDForUpdate(ctx, tx, taskID)
	if err != nil {
		return nil, err
	}

	transition := NextTransition(task, time.Now())
	transition.Apply(task)

	ledgerSkipped := false
	if transition.HasCredit() {
		err := s.memberRepo.CreditPoints(ctx, tx, transition.CreditMember, transition.CreditDelta)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrMemberNotFound):
			// Completion is not blocked by a ledger bookkeeping gap; the
			// credit is skipped and flagged for the caller.
			ledgerSkipped = true
			slog.Warn("ledger credit skipped, assignee not in ledger",
				"task_id", task.ID,
				"assigned_to", transition.CreditMember,
			)
		default:
			return nil, err
		}
	}

	updated, err := s.taskRepo.Update(ctx, tx, task)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	slog.Info("task completion toggled",
		"task_id", updated.ID,
		"new_status", updated.Status,
		"credit_delta", transition.CreditDelta,
		"ledger_skipped", ledgerSkipped,
	)

	return &ToggleResult{
		Task:          updated,
		Members:       members,
		LedgerSkipped: ledgerSkipped,
	}, nil
}
