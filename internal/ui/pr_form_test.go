package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitwatch/internal/domain"
)

func TestTargetOptions_DefaultFirst(t *testing.T) {
	options := targetOptions([]string{"develop", "feature", "main"}, "main")

	require.Len(t, options, 3)
	assert.Equal(t, "main", options[0].Value)
	assert.Equal(t, "develop", options[1].Value)
	assert.Equal(t, "feature", options[2].Value)
}

func TestTargetOptions_DefaultMissing(t *testing.T) {
	options := targetOptions([]string{"develop", "feature"}, "main")

	require.Len(t, options, 2)
	assert.Equal(t, "develop", options[0].Value)
}

func TestNewPullRequestForm_NoRepositories(t *testing.T) {
	_, err := NewPullRequestForm(PullRequestFormOptions{}, &PullRequestFormResult{})
	assert.Error(t, err)
}

func TestNewPullRequestForm_PreselectsFirstRepository(t *testing.T) {
	result := &PullRequestFormResult{}
	form, err := NewPullRequestForm(PullRequestFormOptions{
		Branches:      func(string) []string { return []string{"main"} },
		DefaultTarget: "main",
		Repositories: []domain.Repository{
			{Name: "alpha", Path: "/repos/alpha"},
			{Name: "beta", Path: "/repos/beta"},
		},
	}, result)

	require.NoError(t, err)
	assert.NotNil(t, form)
	assert.Equal(t, "/repos/alpha", result.RepositoryPath)
}
