package domain

import "errors"

// Domain-specific errors for business logic validation.
var (
	// Task errors
	ErrTaskNotFound = errors.New("task not found")

	// Member errors
	ErrMemberNotFound = errors.New("member not found")

	// Validation errors
	ErrValidation      = errors.New("validation failed")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")

	// Infrastructure errors
	ErrStorageUnavailable = errors.New("storage unavailable")
)
