package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"branch not found", &BranchNotFoundError{Name: "x"}, ErrNotFound},
		{"source not found", &BranchNotFoundError{Name: "x", Source: true}, ErrNotFound},
		{"repository open", &RepositoryOpenError{Path: "/tmp", Err: errors.New("boom")}, ErrNotFound},
		{"already exists", ErrBranchAlreadyExists, ErrConflict},
		{"diff failure", &DiffComputationError{Err: errors.New("boom")}, ErrIO},
		{"validation", NewValidationError("name", "bad"), ErrValidation},
		{"wrapped", fmt.Errorf("ctx: %w", ErrPullRequestNotFound), ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
		})
	}
}

func TestBranchNotFoundError_SourceMatchesBothSentinels(t *testing.T) {
	err := error(&BranchNotFoundError{Name: "dev", Source: true})

	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.ErrorIs(t, err, ErrBranchNotFound)
	assert.Equal(t, "source branch dev does not exist", err.Error())

	plain := error(&BranchNotFoundError{Name: "dev"})
	assert.NotErrorIs(t, plain, ErrSourceNotFound)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "one or both branches do not exist", UserMessage(&BranchNotFoundError{Name: "a"}))
	assert.Equal(t, "Source branch dev does not exist", UserMessage(&BranchNotFoundError{Name: "dev", Source: true}))
	assert.Equal(t, "Branch already exists", UserMessage(fmt.Errorf("create: %w", ErrBranchAlreadyExists)))
	assert.Equal(t, "title: cannot be empty", UserMessage(NewValidationError("title", "cannot be empty")))
}
