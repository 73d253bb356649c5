package dto

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/famhub/choreboard/internal/domain"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// MapDomainError maps domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code string, message string) {
	message = err.Error()

	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, "TASK_NOT_FOUND", message
	case errors.Is(err, domain.ErrMemberNotFound):
		return http.StatusNotFound, "MEMBER_NOT_FOUND", message

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidPriority):
		return http.StatusBadRequest, "VALIDATION_ERROR", message

	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "storage temporarily unavailable"

	default:
		// CRITICAL: Log unmapped error for debugging
		slog.Error("unmapped domain error returned to client",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
		)
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}
}
