package git

import (
	"errors"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/renato0307/gitwatch/internal/adapters/process"
	"github.com/renato0307/gitwatch/internal/domain"
	"github.com/renato0307/gitwatch/internal/ports"
)

const defaultMergeTimeout = 2 * time.Minute

// EngineOptions configures an Engine. Zero values fall back to defaults.
type EngineOptions struct {
	// Executor runs the git binary for checkout and merge
	Executor ports.CommandExecutor
	// LockDir holds cross-process lock files; empty means in-process locking only
	LockDir          string
	MergeAuthorEmail string
	MergeAuthorName  string
	MergeTimeout     time.Duration
}

// Engine implements ports.GitEngine. Reads and ref updates go through go-git;
// checkout and merge shell out to git.
type Engine struct {
	executor ports.CommandExecutor
	locks    *lockRegistry
	opts     EngineOptions
}

// Verify interface compliance at compile time
var _ ports.GitEngine = (*Engine)(nil)

// NewEngine creates a new Engine
func NewEngine(opts EngineOptions) *Engine {
	if opts.Executor == nil {
		opts.Executor = process.NewOSExecutor("LC_ALL=C", "GIT_TERMINAL_PROMPT=0")
	}
	if opts.MergeTimeout <= 0 {
		opts.MergeTimeout = defaultMergeTimeout
	}
	return &Engine{
		executor: opts.Executor,
		locks:    newLockRegistry(opts.LockDir),
		opts:     opts,
	}
}

// ValidateBranchName implements BranchValidator.ValidateBranchName
func (e *Engine) ValidateBranchName(name string) error {
	return validateBranchName(name)
}

// SanitizeBranchName implements BranchValidator.SanitizeBranchName
func (e *Engine) SanitizeBranchName(name string) (string, error) {
	return sanitizeBranchName(name)
}

// openRepository opens the repository rooted at path. Every engine call opens
// its own handle; nothing is cached between calls.
func openRepository(path string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, &domain.RepositoryOpenError{Path: path, Err: err}
	}
	return repo, nil
}

// resolveBranchCommit returns the tip commit of refs/heads/<name>
func resolveBranchCommit(repo *gogit.Repository, name string) (*object.Commit, error) {
	ref, err := repo.Reference(plumbing.NewBranchReferenceName(name), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, &domain.BranchNotFoundError{Name: name}
		}
		return nil, err
	}

	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, err
	}
	return commit, nil
}
