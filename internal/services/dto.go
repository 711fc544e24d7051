package services

import "github.com/renato0307/gitwatch/internal/domain"

// CreatePullRequestParams contains parameters for opening a pull request
type CreatePullRequestParams struct {
	Author       string
	Description  string
	Repository   string // name under the repositories root, or a path
	SourceBranch string
	TargetBranch string // defaults to the configured target branch
	Title        string
}

// PullRequestDetail is a pull request with its live diff.
// DiffError is set instead of Changes when the diff cannot be computed,
// e.g. after a branch was deleted.
type PullRequestDetail struct {
	Changes     []domain.FileChange `json:"changes" yaml:"changes"`
	DiffError   string              `json:"diff_error,omitempty" yaml:"diff_error,omitempty"`
	PullRequest *domain.PullRequest `json:"pull_request" yaml:"pull_request"`
	Summary     domain.DiffSummary  `json:"summary" yaml:"summary"`
}

// DiffPreview is shown before a pull request is opened
type DiffPreview struct {
	Changes []domain.FileChange `json:"changes" yaml:"changes"`
	Summary domain.DiffSummary  `json:"summary" yaml:"summary"`
}

// MergeResult is the outcome of a merge request against a pull request
type MergeResult struct {
	Outcome     domain.MergeOutcome `json:"outcome" yaml:"outcome"`
	PullRequest *domain.PullRequest `json:"pull_request" yaml:"pull_request"`
}
