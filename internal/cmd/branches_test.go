package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranches(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  string
		validate func(t *testing.T, env *testEnvironment, stdout string)
	}{
		{
			name: "list is sorted",
			args: []string{"branches", "app"},
			validate: func(t *testing.T, env *testEnvironment, stdout string) {
				assert.Equal(t, "feature\nmain\n", stdout)
			},
		},
		{
			name: "create from source",
			args: []string{"branches", "create", "app", "hotfix", "--from", "feature"},
			validate: func(t *testing.T, env *testEnvironment, stdout string) {
				assert.Equal(t, "Branch 'hotfix' created from 'feature'\n", stdout)
				dir := filepath.Join(env.ReposRoot, "app")
				assert.Equal(t, runGit(t, dir, "rev-parse", "feature"), runGit(t, dir, "rev-parse", "hotfix"))
			},
		},
		{
			name:    "create existing",
			args:    []string{"branches", "create", "app", "feature", "-f", "main"},
			wantErr: "Branch already exists",
		},
		{
			name:    "create from missing source",
			args:    []string{"branches", "create", "app", "hotfix", "-f", "ghost"},
			wantErr: "Source branch ghost does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnvironment(t)
			env.createFeatureRepo(t, "app")

			result := run(t, nil, tt.args...)

			if tt.wantErr != "" {
				require.Error(t, result.Err)
				assert.Equal(t, tt.wantErr, result.Err.Error())
				return
			}
			require.NoError(t, result.Err)
			tt.validate(t, env, result.Stdout)
		})
	}
}
