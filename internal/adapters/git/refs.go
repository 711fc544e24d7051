package git

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5/plumbing"

	"github.com/renato0307/gitwatch/internal/domain"
	"github.com/renato0307/gitwatch/internal/logging"
)

// ListBranches returns the local branch names of the repository, sorted
// alphabetically so repeated calls on an unchanged repository agree.
func (e *Engine) ListBranches(ctx context.Context, repoPath string) ([]string, error) {
	release, err := e.locks.acquire(ctx, repoPath, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w: %w", domain.ErrIO, err)
	}
	defer release()

	repo, err := openRepository(repoPath)
	if err != nil {
		return nil, err
	}

	iter, err := repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w: %w", domain.ErrIO, err)
	}
	defer iter.Close()

	branches := []string{}
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		branches = append(branches, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w: %w", domain.ErrIO, err)
	}

	sort.Strings(branches)
	return branches, nil
}

// CreateBranch points refs/heads/<newName> at the tip of sourceName. HEAD,
// the index and the working tree are left alone.
func (e *Engine) CreateBranch(ctx context.Context, repoPath, newName, sourceName string) error {
	logging.Logger.Info("Creating branch", "repo", repoPath, "branch", newName, "source", sourceName)

	if err := validateBranchName(newName); err != nil {
		return err
	}

	release, err := e.locks.acquire(ctx, repoPath, true)
	if err != nil {
		return fmt.Errorf("failed to create branch %s: %w: %w", newName, domain.ErrIO, err)
	}
	defer release()

	repo, err := openRepository(repoPath)
	if err != nil {
		return err
	}

	newRef := plumbing.NewBranchReferenceName(newName)
	_, err = repo.Reference(newRef, false)
	switch {
	case err == nil:
		return fmt.Errorf("branch %s: %w", newName, domain.ErrBranchAlreadyExists)
	case !errors.Is(err, plumbing.ErrReferenceNotFound):
		return fmt.Errorf("failed to look up branch %s: %w: %w", newName, domain.ErrIO, err)
	}

	source, err := repo.Reference(plumbing.NewBranchReferenceName(sourceName), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return &domain.BranchNotFoundError{Name: sourceName, Source: true}
		}
		return fmt.Errorf("failed to resolve branch %s: %w: %w", sourceName, domain.ErrIO, err)
	}

	if err := repo.Storer.SetReference(plumbing.NewHashReference(newRef, source.Hash())); err != nil {
		return fmt.Errorf("failed to create branch %s: %w: %w", newName, domain.ErrIO, err)
	}

	logging.Logger.Info("Branch created", "repo", repoPath, "branch", newName, "commit", source.Hash().String())
	return nil
}
