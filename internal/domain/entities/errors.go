package entities

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidationError is returned when caller-supplied data violates an entity
// invariant. It is always raised before any persistence call is made.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// NewValidationError creates a validation error with a field-specific message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// Validation errors raised by entity constructors and mutators.
var (
	ErrWorkspaceTitleEmpty  = NewValidationError("Workspace title cannot be empty")
	ErrWorkspaceUserEmpty   = NewValidationError("User ID is required for workspace creation")
	ErrColumnTitleEmpty     = NewValidationError("Column title cannot be empty")
	ErrColumnWorkspaceEmpty = NewValidationError("Valid workspace ID is required")
	ErrTaskTitleEmpty       = NewValidationError("Task title cannot be empty")
	ErrTaskWorkspaceEmpty   = NewValidationError("Valid workspace ID is required")
	ErrTaskColumnEmpty      = NewValidationError("Valid column ID is required")
	ErrTaskMoveColumnEmpty  = NewValidationError("Valid column ID is required for task movement")
	ErrInvalidPriority      = NewValidationError("Invalid priority value")
	ErrTagNameEmpty         = NewValidationError("Tag name cannot be empty")
	ErrTagColorEmpty        = NewValidationError("Tag color cannot be empty")
	ErrTagUserEmpty         = NewValidationError("User ID is required for tag creation")
	ErrAssigneeNameEmpty    = NewValidationError("Assignee name cannot be empty")
	ErrAssigneeUserEmpty    = NewValidationError("User ID is required for assignee creation")
)

// NotFoundError is returned when an entity referenced by id does not exist.
// It always outranks ForbiddenError: ownership is never evaluated against an
// absent entity.
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' was not found", e.Entity, e.ID)
}

// NewNotFoundError creates a not-found error for the given entity kind and id.
func NewNotFoundError(entity string, id uuid.UUID) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// ForbiddenError is returned when an entity exists but does not belong to the
// caller, directly or through its owning workspace.
type ForbiddenError struct {
	Resource string
	ID       uuid.UUID
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("User does not have access to %s: %s", e.Resource, e.ID)
}

// NewForbiddenError creates a forbidden error for the given resource kind and id.
func NewForbiddenError(resource string, id uuid.UUID) *ForbiddenError {
	return &ForbiddenError{Resource: resource, ID: id}
}
