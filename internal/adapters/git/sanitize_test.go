package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitwatch/internal/domain"
)

func TestValidateBranchName_Valid(t *testing.T) {
	for _, name := range []string{"main", "feature/login", "release-1.2", "fix_bug", "a"} {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, validateBranchName(name))
		})
	}
}

func TestValidateBranchName_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"empty", "", "empty"},
		{"starts with dot", ".hidden", "start with '.'"},
		{"starts with slash", "/path", "start with '/'"},
		{"starts with hyphen", "-feature", "start with '-'"},
		{"ends with .lock", "branch.lock", ".lock"},
		{"ends with slash", "branch/", "end with '/'"},
		{"double dot", "a..b", "'..'"},
		{"double slash", "a//b", "'//'"},
		{"reflog syntax", "a@{1}", "'@{'"},
		{"space", "my branch", "invalid characters"},
		{"shell metachar", "a;rm", "invalid characters"},
		{"tilde", "a~1", "invalid characters"},
		{"control char", "a\tb", "control characters"},
		{"at sign alone", "@", "invalid characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBranchName(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestSanitizeBranchName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Add Login Page", "add-login-page"},
		{"fix: crash on start", "fix-crash-on-start"},
		{"feature//nested", "feature/nested"},
		{"..hidden..", "hidden"},
		{"release v1.2.lock", "release-v1.2"},
		{"a   --  b", "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := sanitizeBranchName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSanitizeBranchName_Unusable(t *testing.T) {
	for _, input := range []string{"", "...", "@", "~~~"} {
		t.Run(input, func(t *testing.T) {
			_, err := sanitizeBranchName(input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
