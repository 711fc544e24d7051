package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/renato0307/gitwatch/internal/domain"
	"github.com/renato0307/gitwatch/internal/services"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  string
		validate func(t *testing.T, stdout string)
	}{
		{
			name: "table",
			args: []string{"diff", "app", "feature", "main"},
			validate: func(t *testing.T, stdout string) {
				assert.Contains(t, stdout, "M  a.txt")
				assert.Contains(t, stdout, "A  b.txt")
				assert.Contains(t, stdout, "2 files changed, 2 insertions(+), 0 deletions(-)")
			},
		},
		{
			name: "patch",
			args: []string{"diff", "app", "feature", "main", "--format", "patch"},
			validate: func(t *testing.T, stdout string) {
				assert.Contains(t, stdout, "--- a/a.txt")
				assert.Contains(t, stdout, "+++ b/a.txt")
				assert.Contains(t, stdout, "+feature")
				assert.Contains(t, stdout, "+++ b/b.txt")
			},
		},
		{
			name: "json",
			args: []string{"diff", "app", "feature", "main", "--format", "json"},
			validate: func(t *testing.T, stdout string) {
				var preview services.DiffPreview
				require.NoError(t, json.Unmarshal([]byte(stdout), &preview))
				assert.Equal(t, domain.DiffSummary{Files: 2, Additions: 2}, preview.Summary)
				require.Len(t, preview.Changes, 2)
			},
		},
		{
			name: "yaml",
			args: []string{"diff", "app", "feature", "main", "--format", "yaml"},
			validate: func(t *testing.T, stdout string) {
				var preview services.DiffPreview
				require.NoError(t, yaml.Unmarshal([]byte(stdout), &preview))
				assert.Equal(t, 2, preview.Summary.Files)
				paths := []string{preview.Changes[0].Path, preview.Changes[1].Path}
				assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, paths)
			},
		},
		{
			name: "equal branches",
			args: []string{"diff", "app", "main", "main"},
			validate: func(t *testing.T, stdout string) {
				assert.Contains(t, stdout, "No changes found.")
			},
		},
		{
			name:    "missing branch",
			args:    []string{"diff", "app", "ghost", "main"},
			wantErr: "one or both branches do not exist",
		},
		{
			name:    "unknown repository",
			args:    []string{"diff", "nowhere", "feature", "main"},
			wantErr: "nowhere",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnvironment(t)
			env.createFeatureRepo(t, "app")

			result := run(t, nil, tt.args...)

			if tt.wantErr != "" {
				require.Error(t, result.Err)
				assert.Contains(t, result.Err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, result.Err)
			tt.validate(t, result.Stdout)
		})
	}
}
