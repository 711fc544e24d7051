package git

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitwatch/internal/adapters/process"
	"github.com/renato0307/gitwatch/internal/domain"
)

func isAncestor(t *testing.T, repo, ancestor, descendant string) bool {
	t.Helper()
	cmd := exec.Command("git", "merge-base", "--is-ancestor", ancestor, descendant)
	cmd.Dir = repo
	return cmd.Run() == nil
}

func TestMerge_FastForwardSuccess(t *testing.T) {
	repo := setupTestRepo(t)
	runGit(t, repo, "checkout", "-b", "feature")
	commitFile(t, repo, "f.txt", "f\n", "feature work")
	runGit(t, repo, "checkout", "main")

	outcome := newTestEngine(t).Merge(context.Background(), repo, "feature", "main")

	require.True(t, outcome.Success, outcome.Message)
	assert.Equal(t, "Merged feature into main", outcome.Message)
	assert.True(t, outcome.FastForward)
	assert.Equal(t, runGit(t, repo, "rev-parse", "main"), outcome.HeadCommit)
	assert.True(t, isAncestor(t, repo, "feature", "main"))
}

func TestMerge_DivergedBranchesCreateMergeCommit(t *testing.T) {
	repo := setupTestRepo(t)
	runGit(t, repo, "checkout", "-b", "feature")
	commitFile(t, repo, "f.txt", "f\n", "feature work")
	runGit(t, repo, "checkout", "main")
	commitFile(t, repo, "m.txt", "m\n", "main work")
	engine := NewEngine(EngineOptions{
		LockDir:          filepath.Join(t.TempDir(), "locks"),
		MergeAuthorEmail: "merger@example.com",
		MergeAuthorName:  "Merger",
	})

	outcome := engine.Merge(context.Background(), repo, "feature", "main")

	require.True(t, outcome.Success, outcome.Message)
	assert.False(t, outcome.FastForward)
	assert.True(t, isAncestor(t, repo, "feature", "main"))
	assert.Equal(t, "Merger", runGit(t, repo, "log", "-1", "--format=%cn", "main"))
	assert.FileExists(t, filepath.Join(repo, "f.txt"))
}

func TestMerge_TagWithBranchNameDoesNotShadowBranch(t *testing.T) {
	repo := setupTestRepo(t)
	runGit(t, repo, "checkout", "-b", "feature")
	commitFile(t, repo, "one.txt", "one\n", "one")
	runGit(t, repo, "tag", "feature")
	commitFile(t, repo, "two.txt", "two\n", "two")
	runGit(t, repo, "checkout", "main")
	commitFile(t, repo, "m.txt", "m\n", "main work")

	outcome := newTestEngine(t).Merge(context.Background(), repo, "feature", "main")

	require.True(t, outcome.Success, outcome.Message)
	assert.True(t, isAncestor(t, repo, "refs/heads/feature", "refs/heads/main"))
	assert.FileExists(t, filepath.Join(repo, "two.txt"))
	assert.Equal(t, "Merge branch 'feature'", runGit(t, repo, "log", "-1", "--format=%s", "main"))
}

func TestMerge_BranchWithTagNamedLikeTarget(t *testing.T) {
	repo := setupTestRepo(t)
	runGit(t, repo, "tag", "main")
	commitFile(t, repo, "later.txt", "later\n", "later main work")
	runGit(t, repo, "checkout", "-b", "feature")
	commitFile(t, repo, "f.txt", "f\n", "feature work")

	outcome := newTestEngine(t).Merge(context.Background(), repo, "feature", "main")

	require.True(t, outcome.Success, outcome.Message)
	assert.Equal(t, "refs/heads/main", runGit(t, repo, "symbolic-ref", "HEAD"))
	assert.True(t, isAncestor(t, repo, "refs/heads/feature", "refs/heads/main"))
}

func TestMerge_Conflict(t *testing.T) {
	repo := setupTestRepo(t)
	commitFile(t, repo, "a.txt", "base\n", "add a")
	runGit(t, repo, "checkout", "-b", "feature")
	commitFile(t, repo, "a.txt", "feature\n", "feature edit")
	runGit(t, repo, "checkout", "main")
	commitFile(t, repo, "a.txt", "main\n", "main edit")

	outcome := newTestEngine(t).Merge(context.Background(), repo, "feature", "main")

	assert.False(t, outcome.Success)
	assert.Equal(t, domain.MergeConflict, outcome.Reason)
	assert.Equal(t, []string{"a.txt"}, outcome.ConflictedFiles)
	assert.Equal(t, "merge failed: conflict in a.txt", outcome.Message)
	assert.ErrorIs(t, outcome.Err(), domain.ErrMergeConflict)
}

func TestMerge_MissingBranch(t *testing.T) {
	repo := setupTestRepo(t)
	executor := process.NewMockExecutor(nil)
	engine := NewEngine(EngineOptions{Executor: executor})

	for _, pair := range [][2]string{{"ghost", "main"}, {"main", "ghost"}} {
		outcome := engine.Merge(context.Background(), repo, pair[0], pair[1])

		assert.False(t, outcome.Success)
		assert.Equal(t, domain.MergeBranchNotFound, outcome.Reason)
		assert.Equal(t, "one or both branches do not exist", outcome.Message)
	}
	assert.Empty(t, executor.Calls(), "no git command may run when a branch is missing")
}

func TestMerge_CheckoutFailureStopsBeforeMerge(t *testing.T) {
	repo := setupTestRepo(t)
	runGit(t, repo, "branch", "feature")
	executor := process.NewMockExecutor(nil)
	executor.AddPrefixMatch("git", []string{"checkout"}, process.MockResponse{
		Stdout: []byte("error: Your local changes would be overwritten by checkout"),
		Err:    errors.New("exit status 1"),
	})
	engine := NewEngine(EngineOptions{Executor: executor})

	outcome := engine.Merge(context.Background(), repo, "feature", "main")

	assert.Equal(t, domain.MergeCheckoutFailed, outcome.Reason)
	assert.Contains(t, outcome.Message, "local changes would be overwritten")
	calls := executor.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"checkout", "main", "--"}, calls[0].Args)
}

func TestMerge_GenericFailureWithoutConflicts(t *testing.T) {
	repo := setupTestRepo(t)
	runGit(t, repo, "branch", "feature")
	executor := process.NewMockExecutor(nil)
	executor.AddPrefixMatch("git", []string{"merge"}, process.MockResponse{
		Stdout: []byte("fatal: refusing to merge unrelated histories"),
		Err:    errors.New("exit status 128"),
	})
	executor.AddPrefixMatch("git", []string{"diff"}, process.MockResponse{})
	engine := NewEngine(EngineOptions{Executor: executor})

	outcome := engine.Merge(context.Background(), repo, "feature", "main")

	assert.Equal(t, domain.MergeVCSError, outcome.Reason)
	assert.Equal(t, "merge failed: fatal: refusing to merge unrelated histories", outcome.Message)
}

func TestMerge_TimesOutWaitingForLock(t *testing.T) {
	repo := setupTestRepo(t)
	runGit(t, repo, "branch", "feature")
	engine := NewEngine(EngineOptions{
		Executor:     process.NewMockExecutor(nil),
		MergeTimeout: 50 * time.Millisecond,
	})

	release, err := engine.locks.acquire(context.Background(), repo, true)
	require.NoError(t, err)
	defer release()

	outcome := engine.Merge(context.Background(), repo, "feature", "main")

	assert.Equal(t, domain.MergeTimeout, outcome.Reason)
}

func TestMerge_ReleasesLockAfterTimeout(t *testing.T) {
	repo := setupTestRepo(t)
	runGit(t, repo, "branch", "feature")
	executor := process.NewMockExecutor(nil)
	executor.AddPrefixMatch("git", []string{"merge"}, process.MockResponse{Err: context.DeadlineExceeded})
	engine := NewEngine(EngineOptions{Executor: executor})

	outcome := engine.Merge(context.Background(), repo, "feature", "main")
	require.Equal(t, domain.MergeTimeout, outcome.Reason)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	release, err := engine.locks.acquire(ctx, repo, true)
	require.NoError(t, err, "lock must be free after a timed out merge")
	release()
}

func TestMergeArgs(t *testing.T) {
	plain := NewEngine(EngineOptions{})
	assert.Equal(t, []string{"merge", "--no-edit", "refs/heads/dev"}, plain.mergeArgs("dev"))

	withAuthor := NewEngine(EngineOptions{MergeAuthorName: "Bot", MergeAuthorEmail: "bot@example.com"})
	assert.Equal(t,
		[]string{"-c", "user.name=Bot", "-c", "user.email=bot@example.com", "merge", "--no-edit", "refs/heads/dev"},
		withAuthor.mergeArgs("dev"))
}
