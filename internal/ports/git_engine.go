package ports

import (
	"context"

	"github.com/renato0307/gitwatch/internal/domain"
)

// RepositoryLocator discovers git repositories under a root directory
type RepositoryLocator interface {
	ListRepositories(rootPath string) []domain.Repository
}

// RefInspector lists branch heads
type RefInspector interface {
	ListBranches(ctx context.Context, repoPath string) ([]string, error)
}

// BranchCreator creates branches without touching the working tree
type BranchCreator interface {
	CreateBranch(ctx context.Context, repoPath, newName, sourceName string) error
}

// DiffEngine computes per-file changes between two branch tips
type DiffEngine interface {
	ComputeDiff(ctx context.Context, repoPath, source, target string) ([]domain.FileChange, error)
}

// MergeExecutor merges a source branch into a target branch
type MergeExecutor interface {
	Merge(ctx context.Context, repoPath, source, target string) domain.MergeOutcome
}

// BranchValidator validates and sanitizes branch names
type BranchValidator interface {
	SanitizeBranchName(name string) (string, error)
	ValidateBranchName(name string) error
}

// GitEngine is the composite interface
type GitEngine interface {
	BranchCreator
	BranchValidator
	DiffEngine
	MergeExecutor
	RefInspector
	RepositoryLocator
}
