package git

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitwatch/internal/domain"
)

func TestListBranches_SortedAndStable(t *testing.T) {
	repo := setupTestRepo(t)
	runGit(t, repo, "branch", "zeta")
	runGit(t, repo, "branch", "alpha")
	runGit(t, repo, "branch", "feature/login")
	engine := newTestEngine(t)

	first, err := engine.ListBranches(context.Background(), repo)
	require.NoError(t, err)
	second, err := engine.ListBranches(context.Background(), repo)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "feature/login", "main", "zeta"}, first)
	assert.Equal(t, first, second)
}

func TestListBranches_NotARepository(t *testing.T) {
	_, err := newTestEngine(t).ListBranches(context.Background(), t.TempDir())

	assert.ErrorIs(t, err, domain.ErrRepositoryOpen)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBranch_PointsAtSourceWithoutCheckout(t *testing.T) {
	repo := setupTestRepo(t)
	runGit(t, repo, "checkout", "-b", "dev")
	commitFile(t, repo, "dev.txt", "dev\n", "dev work")
	runGit(t, repo, "checkout", "main")
	engine := newTestEngine(t)

	err := engine.CreateBranch(context.Background(), repo, "feature/x", "dev")

	require.NoError(t, err)
	assert.Equal(t, runGit(t, repo, "rev-parse", "dev"), runGit(t, repo, "rev-parse", "feature/x"))
	assert.Equal(t, "main", runGit(t, repo, "rev-parse", "--abbrev-ref", "HEAD"), "HEAD must not move")
	assert.NoFileExists(t, repo+"/dev.txt", "working tree must not change")

	branches, err := engine.ListBranches(context.Background(), repo)
	require.NoError(t, err)
	assert.Contains(t, branches, "feature/x")
}

func TestCreateBranch_AlreadyExistsLeavesHeadsUnchanged(t *testing.T) {
	repo := setupTestRepo(t)
	runGit(t, repo, "branch", "dev")
	commitFile(t, repo, "more.txt", "more\n", "advance main")
	engine := newTestEngine(t)

	before, err := engine.ListBranches(context.Background(), repo)
	require.NoError(t, err)
	devBefore := runGit(t, repo, "rev-parse", "dev")

	err = engine.CreateBranch(context.Background(), repo, "dev", "main")

	assert.ErrorIs(t, err, domain.ErrBranchAlreadyExists)
	assert.ErrorIs(t, err, domain.ErrConflict)
	after, err := engine.ListBranches(context.Background(), repo)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, devBefore, runGit(t, repo, "rev-parse", "dev"))
}

func TestCreateBranch_SourceNotFound(t *testing.T) {
	repo := setupTestRepo(t)

	err := newTestEngine(t).CreateBranch(context.Background(), repo, "feature", "ghost")

	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
	var notFound *domain.BranchNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "ghost", notFound.Name)
	assert.Equal(t, "Source branch ghost does not exist", domain.UserMessage(err))
}

func TestCreateBranch_InvalidName(t *testing.T) {
	repo := setupTestRepo(t)

	err := newTestEngine(t).CreateBranch(context.Background(), repo, "bad name", "main")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateBranch_ConcurrentSameNameExactlyOneWins(t *testing.T) {
	repo := setupTestRepo(t)
	engine := newTestEngine(t)

	const workers = 8
	errs := make([]error, workers)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			errs[i] = engine.CreateBranch(context.Background(), repo, "race", "main")
		}()
	}
	close(start)
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrBranchAlreadyExists)
	}
	assert.Equal(t, 1, successes)
}
