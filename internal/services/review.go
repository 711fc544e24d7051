package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/renato0307/gitwatch/internal/domain"
	"github.com/renato0307/gitwatch/internal/logging"
	"github.com/renato0307/gitwatch/internal/ports"
)

// ReviewService exposes the git engine to the CLI and UI
type ReviewService struct {
	engine    ports.GitEngine
	reposRoot string
}

// NewReviewService creates a new ReviewService scanning reposRoot
func NewReviewService(engine ports.GitEngine, reposRoot string) *ReviewService {
	return &ReviewService{
		engine:    engine,
		reposRoot: reposRoot,
	}
}

// ReposRoot returns the directory scanned for repositories
func (s *ReviewService) ReposRoot() string {
	return s.reposRoot
}

// WithRoot returns a copy of the service scanning a different root
func (s *ReviewService) WithRoot(reposRoot string) *ReviewService {
	return NewReviewService(s.engine, reposRoot)
}

// ListRepositories lists the repositories under the configured root
func (s *ReviewService) ListRepositories() []domain.Repository {
	return s.engine.ListRepositories(s.reposRoot)
}

// ResolveRepository accepts a repository name under the root or a path to a
// repository directory
func (s *ReviewService) ResolveRepository(nameOrPath string) (domain.Repository, error) {
	if nameOrPath == "" {
		return domain.Repository{}, domain.NewValidationError("repository", "cannot be empty")
	}

	for _, repo := range s.ListRepositories() {
		if repo.Name == nameOrPath {
			return repo, nil
		}
	}

	if info, err := os.Stat(filepath.Join(nameOrPath, ".git")); err == nil && info != nil {
		abs, err := filepath.Abs(nameOrPath)
		if err != nil {
			abs = nameOrPath
		}
		return domain.Repository{Name: filepath.Base(abs), Path: abs}, nil
	}

	return domain.Repository{}, fmt.Errorf("%s under %s: %w", nameOrPath, s.reposRoot, domain.ErrRepositoryNotFound)
}

// ListBranches returns the branches of a repository. A repository that cannot
// be read yields an empty list; the failure is logged.
func (s *ReviewService) ListBranches(ctx context.Context, repoPath string) []string {
	branches, err := s.engine.ListBranches(ctx, repoPath)
	if err != nil {
		logging.Logger.Warn("Failed to list branches", "repo", repoPath, "error", err)
		return []string{}
	}
	return branches
}

// CreateBranch creates newName from sourceName. With sanitize set, newName is
// first turned into a valid branch name.
func (s *ReviewService) CreateBranch(ctx context.Context, repoPath, newName, sourceName string, sanitize bool) (string, error) {
	if sanitize {
		sanitized, err := s.engine.SanitizeBranchName(newName)
		if err != nil {
			return "", err
		}
		newName = sanitized
	}

	if err := s.engine.CreateBranch(ctx, repoPath, newName, sourceName); err != nil {
		return "", err
	}
	return newName, nil
}

// ComputeDiff returns the per-file changes of source relative to target
func (s *ReviewService) ComputeDiff(ctx context.Context, repoPath, source, target string) ([]domain.FileChange, error) {
	return s.engine.ComputeDiff(ctx, repoPath, source, target)
}

// PreviewDiff computes the diff and its summary for a pull request about to be opened
func (s *ReviewService) PreviewDiff(ctx context.Context, repoPath, source, target string) (*DiffPreview, error) {
	changes, err := s.engine.ComputeDiff(ctx, repoPath, source, target)
	if err != nil {
		return nil, err
	}
	return &DiffPreview{Changes: changes, Summary: domain.Summarize(changes)}, nil
}
