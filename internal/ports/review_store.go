package ports

import (
	"context"

	"github.com/renato0307/gitwatch/internal/domain"
)

// RepositoryRegistry records repositories that have pull requests
type RepositoryRegistry interface {
	FindOrCreateRepository(ctx context.Context, name, path string) (*domain.Repository, error)
	ListRegisteredRepositories(ctx context.Context) ([]domain.Repository, error)
}

// PullRequestReader reads pull requests
type PullRequestReader interface {
	GetPullRequest(ctx context.Context, id uint) (*domain.PullRequest, error)
	ListPullRequests(ctx context.Context, status domain.PullRequestStatus) ([]domain.PullRequest, error)
}

// PullRequestWriter creates pull requests and persists status changes
type PullRequestWriter interface {
	CreatePullRequest(ctx context.Context, pr *domain.PullRequest) error
	UpdatePullRequestStatus(ctx context.Context, pr *domain.PullRequest) error
}

// CommentStore stores review comments
type CommentStore interface {
	AddComment(ctx context.Context, comment *domain.Comment) error
	ListComments(ctx context.Context, pullRequestID uint) ([]domain.Comment, error)
}

// UserStore stores users
type UserStore interface {
	AddUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// ReviewStore is the composite interface
type ReviewStore interface {
	CommentStore
	PullRequestReader
	PullRequestWriter
	RepositoryRegistry
	UserStore

	Close() error
}
