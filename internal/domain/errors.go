package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error returned by the engine and the services matches
// exactly one of these through errors.Is.
var (
	ErrConflict   = errors.New("conflict")
	ErrIO         = errors.New("io error")
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

var (
	ErrBranchAlreadyExists = fmt.Errorf("branch already exists: %w", ErrConflict)
	ErrBranchNotFound      = fmt.Errorf("branch not found: %w", ErrNotFound)
	ErrInvalidTransition   = fmt.Errorf("invalid status transition: %w", ErrConflict)
	ErrMergeConflict       = fmt.Errorf("merge conflict: %w", ErrConflict)
	ErrNotAdmin            = fmt.Errorf("admin privileges required: %w", ErrValidation)
	ErrPullRequestNotFound = fmt.Errorf("pull request not found: %w", ErrNotFound)
	ErrPullRequestNotOpen  = fmt.Errorf("pull request is not open: %w", ErrConflict)
	ErrRepositoryNotFound  = fmt.Errorf("repository not found: %w", ErrNotFound)
	ErrRepositoryOpen      = fmt.Errorf("repository cannot be opened: %w", ErrNotFound)
	ErrSourceNotFound      = fmt.Errorf("source branch not found: %w", ErrNotFound)
	ErrUserExists          = fmt.Errorf("user already exists: %w", ErrConflict)
	ErrUserNotFound        = fmt.Errorf("user not found: %w", ErrNotFound)
)

// RepositoryOpenError reports a path that does not open as a git repository.
type RepositoryOpenError struct {
	Path string
	Err  error
}

func (e *RepositoryOpenError) Error() string {
	return fmt.Sprintf("failed to open repository %s: %v", e.Path, e.Err)
}

func (e *RepositoryOpenError) Unwrap() []error {
	return []error{ErrRepositoryOpen, e.Err}
}

// BranchNotFoundError names the branch that could not be resolved.
// Source is set when the missing branch was the source of a branch creation.
type BranchNotFoundError struct {
	Name   string
	Source bool
}

func (e *BranchNotFoundError) Error() string {
	if e.Source {
		return fmt.Sprintf("source branch %s does not exist", e.Name)
	}
	return fmt.Sprintf("branch %s does not exist", e.Name)
}

func (e *BranchNotFoundError) Unwrap() []error {
	if e.Source {
		return []error{ErrSourceNotFound, ErrBranchNotFound}
	}
	return []error{ErrBranchNotFound}
}

// DiffComputationError wraps an unexpected failure while diffing two trees.
type DiffComputationError struct {
	Source string
	Target string
	Err    error
}

func (e *DiffComputationError) Error() string {
	return fmt.Sprintf("failed to compute diff %s..%s: %v", e.Target, e.Source, e.Err)
}

func (e *DiffComputationError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// ValidationError reports an invalid input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// UserMessage renders an error the way it is shown inline next to a pull request.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var branchErr *BranchNotFoundError
	switch {
	case errors.As(err, &branchErr) && !branchErr.Source:
		return "one or both branches do not exist"
	case errors.As(err, &branchErr):
		return fmt.Sprintf("Source branch %s does not exist", branchErr.Name)
	case errors.Is(err, ErrBranchAlreadyExists):
		return "Branch already exists"
	case errors.Is(err, ErrNotAdmin):
		return "only admins can merge or close pull requests"
	}

	return strings.TrimSpace(err.Error())
}
