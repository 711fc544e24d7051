package domain

import (
	"fmt"
	"strings"
)

// MergeFailureReason explains why a merge did not complete
type MergeFailureReason string

const (
	MergeBranchNotFound MergeFailureReason = "branch_not_found"
	MergeCheckoutFailed MergeFailureReason = "checkout_failed"
	MergeConflict       MergeFailureReason = "conflict"
	MergeTimeout        MergeFailureReason = "timeout"
	MergeVCSError       MergeFailureReason = "vcs_error"
)

// MergeOutcome is the result of merging a source branch into a target branch.
// Exactly one of Success or Reason is meaningful.
type MergeOutcome struct {
	ConflictedFiles []string           `json:"conflicted_files,omitempty" yaml:"conflicted_files,omitempty"`
	Detail          string             `json:"detail,omitempty" yaml:"detail,omitempty"`
	FastForward     bool               `json:"fast_forward,omitempty" yaml:"fast_forward,omitempty"`
	HeadCommit      string             `json:"head_commit,omitempty" yaml:"head_commit,omitempty"`
	Message         string             `json:"message" yaml:"message"`
	Reason          MergeFailureReason `json:"reason,omitempty" yaml:"reason,omitempty"`
	Success         bool               `json:"success" yaml:"success"`
}

// MergeSucceeded builds a successful outcome
func MergeSucceeded(message, headCommit string, fastForward bool) MergeOutcome {
	return MergeOutcome{
		FastForward: fastForward,
		HeadCommit:  headCommit,
		Message:     message,
		Success:     true,
	}
}

// MergeFailed builds a failed outcome with a human readable message
func MergeFailed(reason MergeFailureReason, detail string, conflicted ...string) MergeOutcome {
	outcome := MergeOutcome{
		ConflictedFiles: conflicted,
		Detail:          strings.TrimSpace(detail),
		Reason:          reason,
	}

	switch reason {
	case MergeBranchNotFound:
		outcome.Message = "one or both branches do not exist"
	case MergeCheckoutFailed:
		outcome.Message = "failed to check out target branch"
	case MergeConflict:
		outcome.Message = fmt.Sprintf("merge failed: conflict in %s", strings.Join(conflicted, ", "))
	case MergeTimeout:
		outcome.Message = "merge timed out"
	default:
		outcome.Message = "merge failed"
	}
	if outcome.Detail != "" && reason != MergeConflict {
		outcome.Message = fmt.Sprintf("%s: %s", outcome.Message, outcome.Detail)
	}

	return outcome
}

// Err converts a failed outcome into an error matching the domain kinds.
// Returns nil for successful outcomes.
func (o MergeOutcome) Err() error {
	if o.Success {
		return nil
	}
	switch o.Reason {
	case MergeBranchNotFound:
		return fmt.Errorf("%s: %w", o.Message, ErrBranchNotFound)
	case MergeConflict:
		return fmt.Errorf("%s: %w", o.Message, ErrMergeConflict)
	default:
		return fmt.Errorf("%s: %w", o.Message, ErrIO)
	}
}
