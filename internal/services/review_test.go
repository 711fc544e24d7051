package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitwatch/internal/domain"
	portsmocks "github.com/renato0307/gitwatch/internal/ports/mocks"
)

func TestResolveRepository_ByName(t *testing.T) {
	engine := portsmocks.NewMockGitEngine(t)
	engine.EXPECT().ListRepositories("/repos").Return([]domain.Repository{
		{Name: "alpha", Path: "/repos/alpha"},
		{Name: "beta", Path: "/repos/beta"},
	})

	service := NewReviewService(engine, "/repos")

	repo, err := service.ResolveRepository("beta")
	require.NoError(t, err)
	assert.Equal(t, "/repos/beta", repo.Path)
}

func TestResolveRepository_ByPath(t *testing.T) {
	dir := t.TempDir()
	repoDir := filepath.Join(dir, "outside")
	require.NoError(t, os.MkdirAll(filepath.Join(repoDir, ".git"), 0755))

	engine := portsmocks.NewMockGitEngine(t)
	engine.EXPECT().ListRepositories("/repos").Return([]domain.Repository{})

	service := NewReviewService(engine, "/repos")

	repo, err := service.ResolveRepository(repoDir)
	require.NoError(t, err)
	assert.Equal(t, "outside", repo.Name)
	assert.Equal(t, repoDir, repo.Path)
}

func TestResolveRepository_Unknown(t *testing.T) {
	engine := portsmocks.NewMockGitEngine(t)
	engine.EXPECT().ListRepositories("/repos").Return([]domain.Repository{})

	service := NewReviewService(engine, "/repos")

	_, err := service.ResolveRepository("missing")
	assert.ErrorIs(t, err, domain.ErrRepositoryNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveRepository_Empty(t *testing.T) {
	service := NewReviewService(portsmocks.NewMockGitEngine(t), "/repos")

	_, err := service.ResolveRepository("")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListBranches_ErrorYieldsEmptyList(t *testing.T) {
	engine := portsmocks.NewMockGitEngine(t)
	engine.EXPECT().ListBranches(mock.Anything, "/repos/broken").
		Return(nil, &domain.RepositoryOpenError{Path: "/repos/broken", Err: errors.New("not a repo")})

	service := NewReviewService(engine, "/repos")

	branches := service.ListBranches(context.Background(), "/repos/broken")
	assert.NotNil(t, branches)
	assert.Empty(t, branches)
}

func TestCreateBranch_Sanitizes(t *testing.T) {
	engine := portsmocks.NewMockGitEngine(t)
	engine.EXPECT().SanitizeBranchName("Fix login bug").Return("fix-login-bug", nil)
	engine.EXPECT().CreateBranch(mock.Anything, "/repos/alpha", "fix-login-bug", "main").Return(nil)

	service := NewReviewService(engine, "/repos")

	name, err := service.CreateBranch(context.Background(), "/repos/alpha", "Fix login bug", "main", true)
	require.NoError(t, err)
	assert.Equal(t, "fix-login-bug", name)
}

func TestCreateBranch_PropagatesEngineError(t *testing.T) {
	engine := portsmocks.NewMockGitEngine(t)
	engine.EXPECT().CreateBranch(mock.Anything, "/repos/alpha", "feature", "main").
		Return(domain.ErrBranchAlreadyExists)

	service := NewReviewService(engine, "/repos")

	_, err := service.CreateBranch(context.Background(), "/repos/alpha", "feature", "main", false)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "Branch already exists", domain.UserMessage(err))
}

func TestPreviewDiff_Summarizes(t *testing.T) {
	engine := portsmocks.NewMockGitEngine(t)
	engine.EXPECT().ComputeDiff(mock.Anything, "/repos/alpha", "feature", "main").Return([]domain.FileChange{
		{Path: "a.go", ChangeType: domain.ChangeModified, Additions: 3, Deletions: 1},
		{Path: "b.go", ChangeType: domain.ChangeAdded, Additions: 10},
	}, nil)

	service := NewReviewService(engine, "/repos")

	preview, err := service.PreviewDiff(context.Background(), "/repos/alpha", "feature", "main")
	require.NoError(t, err)
	assert.Equal(t, domain.DiffSummary{Additions: 13, Deletions: 1, Files: 2}, preview.Summary)
	assert.Len(t, preview.Changes, 2)
}
