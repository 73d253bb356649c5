package handler

import (
	"encoding/json"
	"net/http"

	"github.com/famhub/choreboard/internal/domain"
	"github.com/famhub/choreboard/internal/handler/dto"
	"github.com/famhub/choreboard/internal/query"
	"github.com/famhub/choreboard/internal/repository"
	"github.com/famhub/choreboard/internal/service"
)

// handleListTasks returns tasks matching the optional filters, ordered
// pending-first by due date.
// @Summary List tasks
// @Description Get tasks with optional status and assignee filters, pending tasks first
// @Tags tasks
// @Produce json
// @Param status query string false "Pending, Completed, or All"
// @Param assignedTo query string false "Member name or All"
// @Success 200 {array} dto.TaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /tasks [get]
func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := r.URL.Query()
	status := params.Get("status")
	assignedTo := params.Get("assignedTo")

	if status != "" && status != domain.FilterAll && !domain.TaskStatus(status).IsValid() {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "status filter must be Pending, Completed, or All")
		return
	}

	tasks, err := h.taskRepo.List(ctx, repository.ListFilters{
		Status:     status,
		AssignedTo: assignedTo,
	})
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	// Store-level ordering is due date ascending; the view puts Pending
	// tasks ahead of Completed ones.
	respondJSON(w, http.StatusOK, dto.ToTaskResponses(query.SortPendingFirst(tasks)))
}

// handleCreateTask creates a new task.
// @Summary Create a task
// @Description Creates a new Pending task. Status in the body is ignored.
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task draft"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /tasks [post]
func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.DueDate == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "dueDate is required")
		return
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	task, err := h.choreService.CreateTask(ctx, service.CreateTaskParams{
		Title:       req.Title,
		AssignedTo:  req.AssignedTo,
		DueDate:     dueDate,
		Priority:    domain.TaskPriority(req.Priority),
		Points:      req.Points,
		Description: req.Description,
	})
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToTaskResponse(task))
}

// handleGetTask retrieves a single task.
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tasks/{id} [get]
func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleUpdateTask merges a partial patch into an existing task.
// @Summary Update a task
// @Description Partial update; absent fields are unchanged. Fields present are revalidated.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Partial patch"
// @Success 200 {object} dto.TaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tasks/{id} [patch]
func (h *Handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	patch := service.UpdateTaskParams{
		Title:       req.Title,
		AssignedTo:  req.AssignedTo,
		Points:      req.Points,
		Description: req.Description,
	}
	if req.DueDate != nil {
		dueDate, err := dto.ParseDate(*req.DueDate)
		if err != nil {
			status, code, message := dto.MapDomainError(err)
			respondError(w, status, code, message)
			return
		}
		patch.DueDate = &dueDate
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		patch.Priority = &priority
	}
	if req.Status != nil {
		taskStatus := domain.TaskStatus(*req.Status)
		patch.Status = &taskStatus
	}

	task, err := h.choreService.UpdateTask(ctx, taskID, patch)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleToggleCompletion flips a task between Pending and Completed,
// crediting the assignee's points on completion.
// @Summary Toggle task completion
// @Description Completing credits the assignee's point balance; reverting does not debit it.
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.ToggleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tasks/complete/{id} [patch]
func (h *Handler) handleToggleCompletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	result, err := h.choreService.ToggleCompletion(ctx, taskID)
	if err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToToggleResponse(result))
}

// handleDeleteTask removes a task.
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskID, ok := extractTaskID(w, r)
	if !ok {
		return
	}

	if err := h.choreService.DeleteTask(ctx, taskID); err != nil {
		status, code, message := dto.MapDomainError(err)
		respondError(w, status, code, message)
		return
	}

	respondJSON(w, http.StatusOK, dto.DeleteResponse{
		Message: "Task deleted successfully",
		ID:      taskID,
	})
}
