package domain

import (
	"fmt"
	"time"
)

// PullRequestStatus is the lifecycle state of a pull request
type PullRequestStatus string

const (
	StatusClosed PullRequestStatus = "closed"
	StatusMerged PullRequestStatus = "merged"
	StatusOpen   PullRequestStatus = "open"
)

// IsTerminal reports whether no further transitions are allowed
func (s PullRequestStatus) IsTerminal() bool {
	return s == StatusMerged || s == StatusClosed
}

// Valid reports whether s is a known status
func (s PullRequestStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusMerged, StatusClosed:
		return true
	}
	return false
}

// PullRequestEvent drives a status transition
type PullRequestEvent string

const (
	EventCloseRequested PullRequestEvent = "close_requested"
	EventMergeSucceeded PullRequestEvent = "merge_succeeded"
)

// PullRequest proposes merging SourceBranch into TargetBranch
type PullRequest struct {
	Author       string            `json:"author" yaml:"author"`
	ClosedAt     *time.Time        `json:"closed_at,omitempty" yaml:"closed_at,omitempty"`
	Comments     []Comment         `json:"comments,omitempty" yaml:"comments,omitempty"`
	CreatedAt    time.Time         `json:"created_at" yaml:"created_at"`
	Description  string            `json:"description,omitempty" yaml:"description,omitempty"`
	ID           uint              `json:"id" yaml:"id"`
	MergedAt     *time.Time        `json:"merged_at,omitempty" yaml:"merged_at,omitempty"`
	Repository   Repository        `json:"repository" yaml:"repository"`
	SourceBranch string            `json:"source_branch" yaml:"source_branch"`
	Status       PullRequestStatus `json:"status" yaml:"status"`
	TargetBranch string            `json:"target_branch" yaml:"target_branch"`
	Title        string            `json:"title" yaml:"title"`
	UpdatedAt    time.Time         `json:"updated_at" yaml:"updated_at"`
}

// Transition applies event to the pull request status.
// Only open pull requests move; merged and closed are terminal.
func (pr *PullRequest) Transition(event PullRequestEvent, at time.Time) error {
	if pr.Status != StatusOpen {
		return fmt.Errorf("cannot apply %s to %s pull request: %w", event, pr.Status, ErrInvalidTransition)
	}

	switch event {
	case EventMergeSucceeded:
		pr.Status = StatusMerged
		pr.MergedAt = &at
	case EventCloseRequested:
		pr.Status = StatusClosed
		pr.ClosedAt = &at
	default:
		return fmt.Errorf("unknown event %q: %w", event, ErrInvalidTransition)
	}
	pr.UpdatedAt = at

	return nil
}

// Validate checks the fields required to open a pull request
func (pr *PullRequest) Validate() error {
	if pr.Title == "" {
		return NewValidationError("title", "cannot be empty")
	}
	if pr.Repository.Path == "" {
		return NewValidationError("repository", "cannot be empty")
	}
	if pr.SourceBranch == "" {
		return NewValidationError("source_branch", "cannot be empty")
	}
	if pr.TargetBranch == "" {
		return NewValidationError("target_branch", "cannot be empty")
	}
	if pr.SourceBranch == pr.TargetBranch {
		return NewValidationError("source_branch", "must differ from target branch %s", pr.TargetBranch)
	}
	return nil
}

// Comment is a review note attached to a pull request
type Comment struct {
	Author        string    `json:"author" yaml:"author"`
	Content       string    `json:"content" yaml:"content"`
	CreatedAt     time.Time `json:"created_at" yaml:"created_at"`
	ID            uint      `json:"id" yaml:"id"`
	PullRequestID uint      `json:"pull_request_id" yaml:"pull_request_id"`
}

// User identifies an actor. Admins may merge and close pull requests.
type User struct {
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	ID        uint      `json:"id" yaml:"id"`
	IsAdmin   bool      `json:"is_admin" yaml:"is_admin"`
	Username  string    `json:"username" yaml:"username"`
}
