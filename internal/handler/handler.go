package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/famhub/choreboard/docs" // Import generated docs
	"github.com/famhub/choreboard/internal/handler/dto"
	"github.com/famhub/choreboard/internal/middleware"
	"github.com/famhub/choreboard/internal/repository"
	"github.com/famhub/choreboard/internal/service"
	"github.com/famhub/choreboard/internal/static"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	pool         *pgxpool.Pool
	choreService *service.ChoreService
	taskRepo     *repository.TaskRepository
	memberRepo   *repository.MemberRepository
	requestLog   *middleware.RequestLogger
}

// New creates a new Handler instance with all dependencies.
func New(pool *pgxpool.Pool) *Handler {
	// Create repositories
	taskRepo := repository.NewTaskRepository(pool)
	memberRepo := repository.NewMemberRepository(pool)

	// Create services
	choreService := service.NewChoreService(pool, taskRepo, memberRepo)

	return &Handler{
		pool:         pool,
		choreService: choreService,
		taskRepo:     taskRepo,
		memberRepo:   memberRepo,
		requestLog:   middleware.NewRequestLogger(),
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Landing page
	mux.HandleFunc("GET /{$}", h.handleIndex)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	// API routes with request logging
	mux.Handle("GET /api/tasks", h.requestLog.Log(http.HandlerFunc(h.handleListTasks)))
	mux.Handle("POST /api/tasks", h.requestLog.Log(http.HandlerFunc(h.handleCreateTask)))
	mux.Handle("GET /api/tasks/{id}", h.requestLog.Log(http.HandlerFunc(h.handleGetTask)))
	mux.Handle("PATCH /api/tasks/{id}", h.requestLog.Log(http.HandlerFunc(h.handleUpdateTask)))
	mux.Handle("PATCH /api/tasks/complete/{id}", h.requestLog.Log(http.HandlerFunc(h.handleToggleCompletion)))
	mux.Handle("DELETE /api/tasks/{id}", h.requestLog.Log(http.HandlerFunc(h.handleDeleteTask)))
	mux.Handle("GET /api/members", h.requestLog.Log(http.HandlerFunc(h.handleListMembers)))
	mux.Handle("GET /api/stats", h.requestLog.Log(http.HandlerFunc(h.handleGetStats)))
}

// handleHealthz returns 200 OK if the database is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.pool.Ping(ctx); err != nil {
		slog.Error("database health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// handleIndex serves the embedded landing page.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(static.IndexHTML))
}

// Ping checks if the database is reachable (used for testing).
func (h *Handler) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// extractTaskID extracts and validates the task ID path parameter.
// Returns (taskID, true) if valid, ("", false) if invalid (error already sent to client).
func extractTaskID(w http.ResponseWriter, r *http.Request) (string, bool) {
	taskID := r.PathValue("id")
	if taskID == "" {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "task id is required")
		return "", false
	}

	if _, err := uuid.Parse(taskID); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "task id must be a valid UUID")
		return "", false
	}

	return taskID, true
}
