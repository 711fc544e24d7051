package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"

	"github.com/renato0307/gitwatch/internal/domain"
	"github.com/renato0307/gitwatch/internal/logging"
)

// Merge checks out target and merges source into it with the git binary.
// The whole operation, including waiting for the repository lock, is bounded
// by the configured merge timeout. On conflict the repository is left
// mid-merge for inspection.
//
// A git process killed by the timeout may leave .git/index.lock behind.
func (e *Engine) Merge(ctx context.Context, repoPath, source, target string) domain.MergeOutcome {
	logging.Logger.Info("Merging branches", "repo", repoPath, "source", source, "target", target)

	ctx, cancel := context.WithTimeout(ctx, e.opts.MergeTimeout)
	defer cancel()

	release, err := e.locks.acquire(ctx, repoPath, true)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return e.logOutcome(domain.MergeFailed(domain.MergeTimeout, "timed out waiting for repository lock"))
		}
		return e.logOutcome(domain.MergeFailed(domain.MergeVCSError, err.Error()))
	}
	defer release()

	repo, err := openRepository(repoPath)
	if err != nil {
		return e.logOutcome(domain.MergeFailed(domain.MergeVCSError, err.Error()))
	}

	for _, name := range []string{source, target} {
		if _, err := resolveBranchCommit(repo, name); err != nil {
			var notFound *domain.BranchNotFoundError
			if errors.As(err, &notFound) {
				return e.logOutcome(domain.MergeFailed(domain.MergeBranchNotFound, ""))
			}
			return e.logOutcome(domain.MergeFailed(domain.MergeVCSError, err.Error()))
		}
	}

	if output, err := e.executor.CombinedOutput(ctx, repoPath, "git", "checkout", target, "--"); err != nil {
		if isTimeout(ctx, err) {
			return e.logOutcome(domain.MergeFailed(domain.MergeTimeout, "git checkout did not finish in time"))
		}
		return e.logOutcome(domain.MergeFailed(domain.MergeCheckoutFailed, string(output)))
	}

	output, err := e.executor.CombinedOutput(ctx, repoPath, "git", e.mergeArgs(source)...)
	if err != nil {
		return e.logOutcome(e.mergeFailure(ctx, repoPath, string(output), err))
	}

	head := e.headCommit(ctx, repoPath)
	text := string(output)
	message := fmt.Sprintf("Merged %s into %s", source, target)
	if strings.Contains(text, "Already up to date") {
		message = fmt.Sprintf("%s is already up to date with %s", target, source)
	}

	return e.logOutcome(domain.MergeSucceeded(message, head, strings.Contains(text, "Fast-forward")))
}

// mergeArgs names the source by its full ref so a tag with the same name
// cannot shadow the branch
func (e *Engine) mergeArgs(source string) []string {
	var args []string
	if e.opts.MergeAuthorName != "" {
		args = append(args, "-c", "user.name="+e.opts.MergeAuthorName)
	}
	if e.opts.MergeAuthorEmail != "" {
		args = append(args, "-c", "user.email="+e.opts.MergeAuthorEmail)
	}
	return append(args, "merge", "--no-edit", plumbing.NewBranchReferenceName(source).String())
}

// mergeFailure tells a conflict apart from other git merge failures
func (e *Engine) mergeFailure(ctx context.Context, repoPath, output string, err error) domain.MergeOutcome {
	if isTimeout(ctx, err) {
		return domain.MergeFailed(domain.MergeTimeout, "git merge did not finish in time")
	}

	conflicted, cerr := e.conflictedFiles(ctx, repoPath)
	if cerr != nil {
		logging.Logger.Warn("Failed to list conflicted files", "repo", repoPath, "error", cerr)
	}
	if len(conflicted) > 0 {
		return domain.MergeFailed(domain.MergeConflict, output, conflicted...)
	}

	if strings.TrimSpace(output) == "" {
		output = err.Error()
	}
	return domain.MergeFailed(domain.MergeVCSError, output)
}

func (e *Engine) conflictedFiles(ctx context.Context, repoPath string) ([]string, error) {
	output, err := e.executor.Output(ctx, repoPath, "git", "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(string(output), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

func (e *Engine) headCommit(ctx context.Context, repoPath string) string {
	output, err := e.executor.Output(ctx, repoPath, "git", "rev-parse", "HEAD")
	if err != nil {
		logging.Logger.Warn("Failed to read merge result commit", "repo", repoPath, "error", err)
		return ""
	}
	return strings.TrimSpace(string(output))
}

func (e *Engine) logOutcome(outcome domain.MergeOutcome) domain.MergeOutcome {
	if outcome.Success {
		logging.Logger.Info("Merge succeeded", "message", outcome.Message, "head", outcome.HeadCommit)
	} else {
		logging.Logger.Warn("Merge failed", "reason", outcome.Reason, "message", outcome.Message)
	}
	return outcome
}

func isTimeout(ctx context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
}
