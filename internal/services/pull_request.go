package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/renato0307/gitwatch/internal/domain"
	"github.com/renato0307/gitwatch/internal/logging"
	"github.com/renato0307/gitwatch/internal/ports"
)

// RepositoryResolver turns a repository name or path into a repository
type RepositoryResolver interface {
	ResolveRepository(nameOrPath string) (domain.Repository, error)
}

// PullRequestService drives the pull request workflow
type PullRequestService struct {
	defaultTarget string
	engine        ports.GitEngine
	now           func() time.Time
	resolver      RepositoryResolver
	store         ports.ReviewStore
}

// NewPullRequestService creates a new PullRequestService
func NewPullRequestService(
	store ports.ReviewStore,
	engine ports.GitEngine,
	resolver RepositoryResolver,
	defaultTarget string,
) *PullRequestService {
	return &PullRequestService{
		defaultTarget: defaultTarget,
		engine:        engine,
		now:           time.Now,
		resolver:      resolver,
		store:         store,
	}
}

// Create opens a new pull request. Both branches must exist in the repository.
func (s *PullRequestService) Create(ctx context.Context, params CreatePullRequestParams) (*domain.PullRequest, error) {
	logging.Logger.Info("Creating pull request",
		"repo", params.Repository,
		"source", params.SourceBranch,
		"target", params.TargetBranch)

	target := params.TargetBranch
	if target == "" {
		target = s.defaultTarget
	}

	pr := &domain.PullRequest{
		Author:       params.Author,
		Description:  strings.TrimSpace(params.Description),
		SourceBranch: params.SourceBranch,
		Status:       domain.StatusOpen,
		TargetBranch: target,
		Title:        strings.TrimSpace(params.Title),
	}

	if params.Repository == "" {
		return nil, domain.NewValidationError("repository", "cannot be empty")
	}
	repo, err := s.resolver.ResolveRepository(params.Repository)
	if err != nil {
		return nil, err
	}
	pr.Repository = repo

	if err := pr.Validate(); err != nil {
		return nil, err
	}

	branches, err := s.engine.ListBranches(ctx, repo.Path)
	if err != nil {
		return nil, err
	}
	for _, name := range []string{pr.SourceBranch, pr.TargetBranch} {
		if !slices.Contains(branches, name) {
			return nil, &domain.BranchNotFoundError{Name: name}
		}
	}

	registered, err := s.store.FindOrCreateRepository(ctx, repo.Name, repo.Path)
	if err != nil {
		return nil, err
	}
	pr.Repository = *registered

	if err := s.store.CreatePullRequest(ctx, pr); err != nil {
		return nil, err
	}

	logging.Logger.Info("Pull request created", "id", pr.ID, "repo", pr.Repository.Name)
	return pr, nil
}

// List returns pull requests, newest first. An empty status lists all of them.
func (s *PullRequestService) List(ctx context.Context, status domain.PullRequestStatus) ([]domain.PullRequest, error) {
	if status != "" && !status.Valid() {
		return nil, domain.NewValidationError("status", "unknown status %q", status)
	}
	return s.store.ListPullRequests(ctx, status)
}

// Get loads a pull request with its comments and a live diff. Diff failures
// are reported in DiffError so the pull request can still be shown.
func (s *PullRequestService) Get(ctx context.Context, id uint) (*PullRequestDetail, error) {
	pr, err := s.store.GetPullRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &PullRequestDetail{PullRequest: pr, Changes: []domain.FileChange{}}

	changes, err := s.engine.ComputeDiff(ctx, pr.Repository.Path, pr.SourceBranch, pr.TargetBranch)
	if err != nil {
		logging.Logger.Warn("Failed to compute pull request diff", "id", id, "error", err)
		detail.DiffError = domain.UserMessage(err)
		return detail, nil
	}

	detail.Changes = changes
	detail.Summary = domain.Summarize(changes)
	return detail, nil
}

// Merge merges the pull request's source branch into its target. A failed
// merge leaves the pull request open and is reported in the result's outcome.
func (s *PullRequestService) Merge(ctx context.Context, id uint, actor string) (*MergeResult, error) {
	pr, err := s.loadForAdminAction(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	outcome := s.engine.Merge(ctx, pr.Repository.Path, pr.SourceBranch, pr.TargetBranch)
	result := &MergeResult{Outcome: outcome, PullRequest: pr}
	if !outcome.Success {
		logging.Logger.Warn("Pull request merge failed", "id", id, "reason", outcome.Reason)
		return result, nil
	}

	if err := s.transition(ctx, pr, domain.EventMergeSucceeded); err != nil {
		return result, fmt.Errorf("branches merged but status not updated: %w", err)
	}

	logging.Logger.Info("Pull request merged", "id", id, "head", outcome.HeadCommit)
	return result, nil
}

// Close closes the pull request without merging
func (s *PullRequestService) Close(ctx context.Context, id uint, actor string) (*domain.PullRequest, error) {
	pr, err := s.loadForAdminAction(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	if err := s.transition(ctx, pr, domain.EventCloseRequested); err != nil {
		return nil, err
	}

	logging.Logger.Info("Pull request closed", "id", id)
	return pr, nil
}

// AddComment attaches a comment to an existing pull request
func (s *PullRequestService) AddComment(ctx context.Context, id uint, author, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.NewValidationError("content", "cannot be empty")
	}

	comment := &domain.Comment{
		Author:        author,
		Content:       content,
		PullRequestID: id,
	}
	if err := s.store.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *PullRequestService) loadForAdminAction(ctx context.Context, id uint, actor string) (*domain.PullRequest, error) {
	user, err := s.store.GetUser(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		return nil, fmt.Errorf("%s: %w", actor, domain.ErrNotAdmin)
	}

	pr, err := s.store.GetPullRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if pr.Status != domain.StatusOpen {
		return nil, fmt.Errorf("pull request #%d is %s: %w", id, pr.Status, domain.ErrPullRequestNotOpen)
	}
	return pr, nil
}

func (s *PullRequestService) transition(ctx context.Context, pr *domain.PullRequest, event domain.PullRequestEvent) error {
	if err := pr.Transition(event, s.now()); err != nil {
		return err
	}
	if err := s.store.UpdatePullRequestStatus(ctx, pr); err != nil {
		if errors.Is(err, domain.ErrPullRequestNotOpen) {
			logging.Logger.Warn("Pull request changed concurrently", "id", pr.ID)
		}
		return err
	}
	return nil
}
