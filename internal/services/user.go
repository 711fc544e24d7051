package services

import (
	"context"
	"errors"
	"strings"

	"github.com/renato0307/gitwatch/internal/domain"
	"github.com/renato0307/gitwatch/internal/logging"
	"github.com/renato0307/gitwatch/internal/ports"
)

// DefaultAdminUsername is created on first use when no users exist
const DefaultAdminUsername = "admin"

// UserService manages the actors that author and review pull requests
type UserService struct {
	store ports.UserStore
}

// NewUserService creates a new UserService
func NewUserService(store ports.UserStore) *UserService {
	return &UserService{store: store}
}

// AddUser registers a new user
func (s *UserService) AddUser(ctx context.Context, username string, admin bool) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.NewValidationError("username", "cannot be empty")
	}
	if strings.ContainsAny(username, " \t\n") {
		return nil, domain.NewValidationError("username", "cannot contain whitespace")
	}

	user := &domain.User{Username: username, IsAdmin: admin}
	if err := s.store.AddUser(ctx, user); err != nil {
		return nil, err
	}

	logging.Logger.Info("User added", "username", username, "admin", admin)
	return user, nil
}

// ListUsers returns all users sorted by username
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.store.ListUsers(ctx)
}

// Resolve looks up the acting user
func (s *UserService) Resolve(ctx context.Context, username string) (*domain.User, error) {
	if username == "" {
		return nil, domain.NewValidationError("user", "cannot be empty")
	}
	return s.store.GetUser(ctx, username)
}

// EnsureDefaultAdmin creates the default admin user when the store has no users
func (s *UserService) EnsureDefaultAdmin(ctx context.Context) error {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	_, err = s.AddUser(ctx, DefaultAdminUsername, true)
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	return err
}
