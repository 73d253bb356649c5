package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/famhub/choreboard/internal/domain"
	"github.com/famhub/choreboard/internal/repository"
)

// Validator checks task field constraints and member references.
type Validator struct {
	memberRepo *repository.MemberRepository
}

// NewValidator creates a new Validator.
func NewValidator(memberRepo *repository.MemberRepository) *Validator {
	return &Validator{
		memberRepo: memberRepo,
	}
}

// ValidateTask checks all field-level invariants of a task plus the member
// reference. Each violation names the offending field so the gateway can
// render a useful message.
func (v *Validator) ValidateTask(ctx context.Context, task *domain.Task) error {
	if err := ValidateFields(task); err != nil {
		return err
	}
	return v.checkMemberExists(ctx, task.AssignedTo)
}

// ValidateFields checks the store-independent invariants of a task.
func ValidateFields(task *domain.Task) error {
	if task.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if task.AssignedTo == "" {
		return fmt.Errorf("%w: assignedTo is required", domain.ErrValidation)
	}
	if task.DueDate.IsZero() {
		return fmt.Errorf("%w: dueDate is required", domain.ErrValidation)
	}
	if task.Points < 1 {
		return fmt.Errorf("%w: points must be at least 1", domain.ErrValidation)
	}
	if !task.Priority.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPriority, task.Priority)
	}
	if !task.Status.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, task.Status)
	}

	return nil
}

// checkMemberExists verifies the assignee references a known ledger member.
// Assignment to an unknown member is a validation error at create/edit time;
// only the completion credit tolerates a member that has since disappeared.
func (v *Validator) checkMemberExists(ctx context.Context, name string) error {
	_, err := v.memberRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return fmt.Errorf("%w: assignedTo references unknown member %q", domain.ErrValidation, name)
		}
		return fmt.Errorf("check member %s: %w", name, err)
	}
	return nil
}
