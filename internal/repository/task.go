package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/famhub/choreboard/internal/domain"
)

// taskColumns is the shared list of columns for task queries.
var taskColumns = []string{
	"id", "title", "assigned_to", "due_date", "priority", "status",
	"points", "description", "completed_at", "created_at", "updated_at",
}

// ListFilters holds the supported filters for task listing. An empty value
// or the "All" sentinel means the filter is not applied.
type ListFilters struct {
	Status     string
	AssignedTo string
}

// TaskRepository handles database operations for tasks.
type TaskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// scanTask scans a single row into a Task struct.
func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.AssignedTo,
		&task.DueDate,
		&task.Priority,
		&task.Status,
		&task.Points,
		&task.Description,
		&task.CompletedAt,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, classifyStorageErr("scan task", err)
	}
	return &task, nil
}

// scanTasks scans multiple rows into a slice of Task structs.
func scanTasks(rows pgx.Rows) ([]*domain.Task, error) {
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return tasks, nil
}

// List retrieves tasks matching the filters, ordered by due date ascending.
// Ties on due date keep insertion order via created_at.
func (r *TaskRepository) List(ctx context.Context, filters ListFilters) ([]*domain.Task, error) {
	qb := psql.Select(taskColumns...).From("tasks")

	if filters.Status != "" && filters.Status != domain.FilterAll {
		qb = qb.Where(sq.Eq{"status": filters.Status})
	}
	if filters.AssignedTo != "" && filters.AssignedTo != domain.FilterAll {
		qb = qb.Where(sq.Eq{"assigned_to": filters.AssignedTo})
	}

	qb = qb.OrderBy("due_date ASC", "created_at ASC")

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query for tasks: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, classifyStorageErr("query tasks", err)
	}

	return scanTasks(rows)
}

// GetByID retrieves a task by ID.
func (r *TaskRepository) GetByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": taskID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for task: %w", err)
	}

	return scanTask(r.pool.QueryRow(ctx, query, args...))
}

// GetByIDForUpdate retrieves a task by ID with FOR UPDATE lock (within transaction).
// The row lock serializes concurrent mutations on the same task.
func (r *TaskRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, taskID string) (*domain.Task, error) {
	query, args, err := psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"id": taskID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByIDForUpdate query for task %s: %w", taskID, err)
	}

	return scanTask(tx.QueryRow(ctx, query, args...))
}

// Create inserts a new task and returns it with ID and timestamps populated.
// The caller is responsible for validation; status is always stored Pending.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityMedium
	}
	task.Status = domain.TaskStatusPending
	task.CompletedAt = nil

	query, args, err := psql.
		Insert("tasks").
		Columns("id", "title", "assigned_to", "due_date", "priority", "status", "points", "description").
		Values(
			task.ID,
			task.Title,
			task.AssignedTo,
			task.DueDate,
			task.Priority,
			task.Status,
			task.Points,
			task.Description,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for task: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, classifyStorageErr("create task", err)
	}

	return task, nil
}

// Update persists the full mutable state of a task within a transaction and
// stamps updated_at. Patch merging happens in the service layer after the
// row is locked.
func (r *TaskRepository) Update(ctx context.Context, tx pgx.Tx, task *domain.Task) (*domain.Task, error) {
	query, args, err := psql.
		Update("tasks").
		Set("title", task.Title).
		Set("assigned_to", task.AssignedTo).
		Set("due_date", task.DueDate).
		Set("priority", task.Priority).
		Set("status", task.Status).
		Set("points", task.Points).
		Set("description", task.Description).
		Set("completed_at", task.CompletedAt).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": task.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Update query for task %s: %w", task.ID, err)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&task.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, classifyStorageErr(fmt.Sprintf("update task %s", task.ID), err)
	}

	return task, nil
}

// Delete removes a task by ID. A missing row surfaces ErrTaskNotFound, so a
// repeated delete of the same ID fails instead of silently succeeding.
func (r *TaskRepository) Delete(ctx context.Context, taskID string) error {
	query, args, err := psql.
		Delete("tasks").
		Where(sq.Eq{"id": taskID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Delete query for task %s: %w", taskID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return classifyStorageErr(fmt.Sprintf("delete task %s", taskID), err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}
