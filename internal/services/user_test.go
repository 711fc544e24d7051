package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitwatch/internal/domain"
	portsmocks "github.com/renato0307/gitwatch/internal/ports/mocks"
)

func TestAddUser(t *testing.T) {
	store := portsmocks.NewMockReviewStore(t)
	store.EXPECT().AddUser(mock.Anything, &domain.User{Username: "alice", IsAdmin: true}).Return(nil)

	user, err := NewUserService(store).AddUser(context.Background(), " alice ", true)

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestAddUser_Invalid(t *testing.T) {
	service := NewUserService(portsmocks.NewMockReviewStore(t))

	for _, name := range []string{"", "  ", "john doe"} {
		_, err := service.AddUser(context.Background(), name, false)
		assert.ErrorIs(t, err, domain.ErrValidation, name)
	}
}

func TestAddUser_Duplicate(t *testing.T) {
	store := portsmocks.NewMockReviewStore(t)
	store.EXPECT().AddUser(mock.Anything, mock.Anything).Return(domain.ErrUserExists)

	_, err := NewUserService(store).AddUser(context.Background(), "alice", false)

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestEnsureDefaultAdmin(t *testing.T) {
	store := portsmocks.NewMockReviewStore(t)
	store.EXPECT().ListUsers(mock.Anything).Return([]domain.User{}, nil)
	store.EXPECT().AddUser(mock.Anything, &domain.User{Username: DefaultAdminUsername, IsAdmin: true}).Return(nil)

	require.NoError(t, NewUserService(store).EnsureDefaultAdmin(context.Background()))
}

func TestEnsureDefaultAdmin_ExistingUsers(t *testing.T) {
	store := portsmocks.NewMockReviewStore(t)
	store.EXPECT().ListUsers(mock.Anything).Return([]domain.User{{Username: "alice"}}, nil)

	require.NoError(t, NewUserService(store).EnsureDefaultAdmin(context.Background()))
}
