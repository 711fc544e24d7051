package git

import (
	"context"
	"errors"
	"strings"

	fdiff "github.com/go-git/go-git/v5/plumbing/format/diff"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/renato0307/gitwatch/internal/domain"
	"github.com/renato0307/gitwatch/internal/logging"
)

// ComputeDiff lists what changes when going from the target tip to the source
// tip. Target is the base. Nothing is checked out.
func (e *Engine) ComputeDiff(ctx context.Context, repoPath, source, target string) ([]domain.FileChange, error) {
	release, err := e.locks.acquire(ctx, repoPath, false)
	if err != nil {
		return nil, &domain.DiffComputationError{Source: source, Target: target, Err: err}
	}
	defer release()

	repo, err := openRepository(repoPath)
	if err != nil {
		return nil, err
	}

	fail := func(err error) error {
		var notFound *domain.BranchNotFoundError
		if errors.As(err, &notFound) {
			return err
		}
		return &domain.DiffComputationError{Source: source, Target: target, Err: err}
	}

	sourceCommit, err := resolveBranchCommit(repo, source)
	if err != nil {
		return nil, fail(err)
	}
	targetCommit, err := resolveBranchCommit(repo, target)
	if err != nil {
		return nil, fail(err)
	}

	if sourceCommit.Hash == targetCommit.Hash {
		return []domain.FileChange{}, nil
	}

	sourceTree, err := sourceCommit.Tree()
	if err != nil {
		return nil, fail(err)
	}
	targetTree, err := targetCommit.Tree()
	if err != nil {
		return nil, fail(err)
	}

	changes, err := object.DiffTreeWithOptions(ctx, targetTree, sourceTree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, fail(err)
	}

	result := make([]domain.FileChange, 0, len(changes))
	for _, change := range changes {
		fc, err := toFileChange(ctx, change)
		if err != nil {
			return nil, fail(err)
		}
		result = append(result, fc)
	}

	logging.Logger.Debug("Diff computed", "repo", repoPath, "source", source, "target", target, "files", len(result))
	return result, nil
}

func toFileChange(ctx context.Context, change *object.Change) (domain.FileChange, error) {
	fc := domain.FileChange{ChangeType: classifyChange(change)}

	switch fc.ChangeType {
	case domain.ChangeDeleted:
		fc.Path = change.From.Name
	case domain.ChangeRenamed:
		fc.Path = change.To.Name
		fc.OldPath = change.From.Name
	default:
		fc.Path = change.To.Name
		if fc.Path == "" {
			fc.Path = change.From.Name
		}
	}

	patch, err := change.PatchContext(ctx)
	if err != nil {
		return fc, err
	}

	for _, fp := range patch.FilePatches() {
		if fp.IsBinary() {
			fc.IsBinary = true
			continue
		}
		for _, chunk := range fp.Chunks() {
			switch chunk.Type() {
			case fdiff.Add:
				fc.Additions += countLines(chunk.Content())
			case fdiff.Delete:
				fc.Deletions += countLines(chunk.Content())
			}
		}
	}

	if fc.IsBinary {
		fc.Additions, fc.Deletions = 0, 0
	} else {
		fc.Patch = patch.String()
	}

	return fc, nil
}

func classifyChange(change *object.Change) domain.ChangeType {
	from, to := change.From.Name, change.To.Name
	switch {
	case from == "" && to != "":
		return domain.ChangeAdded
	case from != "" && to == "":
		return domain.ChangeDeleted
	case from != to:
		return domain.ChangeRenamed
	case from != "":
		return domain.ChangeModified
	default:
		return domain.ChangeUnknown
	}
}

// countLines counts lines in a chunk; a trailing fragment without newline counts as one
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
