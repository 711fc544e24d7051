package git

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/renato0307/gitwatch/internal/domain"
	"github.com/renato0307/gitwatch/internal/logging"
)

// validBranchNameChars matches alphanumerics, hyphens, underscores, dots and slashes
var validBranchNameChars = regexp.MustCompile(`^[a-zA-Z0-9._/-]+$`)

// invalidBranchNameChars matches git-prohibited characters and shell metacharacters
var invalidBranchNameChars = regexp.MustCompile(`[\s~^:?*\[\]\\{}#@()&|;<>$` + "`" + `'"]+`)

var consecutiveHyphens = regexp.MustCompile(`-{2,}`)

type branchNameRule struct {
	broken  func(string) bool
	message string
}

// branchNameRules are stricter than git-check-ref-format: names end up as
// arguments of git merge and checkout, so shell metacharacters are refused too.
var branchNameRules = []branchNameRule{
	{func(n string) bool { return strings.HasPrefix(n, ".") }, "cannot start with '.'"},
	{func(n string) bool { return strings.HasPrefix(n, "/") }, "cannot start with '/'"},
	{func(n string) bool { return strings.HasPrefix(n, "-") }, "cannot start with '-'"},
	{func(n string) bool { return strings.HasSuffix(n, ".lock") }, "cannot end with '.lock'"},
	{func(n string) bool { return strings.HasSuffix(n, ".") }, "cannot end with '.'"},
	{func(n string) bool { return strings.HasSuffix(n, "/") }, "cannot end with '/'"},
	{func(n string) bool { return strings.HasSuffix(n, "-") }, "cannot end with '-'"},
	{func(n string) bool { return strings.Contains(n, "..") }, "cannot contain '..'"},
	{func(n string) bool { return strings.Contains(n, "//") }, "cannot contain '//'"},
	{func(n string) bool { return strings.Contains(n, "@{") }, "cannot contain '@{'"},
	{func(n string) bool { return strings.IndexFunc(n, unicode.IsControl) >= 0 }, "cannot contain control characters"},
	{func(n string) bool { return !validBranchNameChars.MatchString(n) }, "contains invalid characters (only alphanumeric, '.', '_', '-', '/' allowed)"},
	{func(n string) bool { return n == "@" }, "cannot be '@'"},
}

// validateBranchName returns a *domain.ValidationError for names git or a shell would choke on
func validateBranchName(name string) error {
	if name == "" {
		return domain.NewValidationError("branch", "name cannot be empty")
	}
	for _, rule := range branchNameRules {
		if rule.broken(name) {
			return domain.NewValidationError("branch", "%q %s", name, rule.message)
		}
	}
	return nil
}

// sanitizeBranchName turns free text (a PR title, say) into a valid branch name
func sanitizeBranchName(name string) (string, error) {
	logging.Logger.Debug("Sanitizing branch name", "input", name)

	result := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)

	result = invalidBranchNameChars.ReplaceAllString(result, "-")
	result = strings.ReplaceAll(result, "..", "-")
	result = strings.ReplaceAll(result, "//", "/")
	result = strings.TrimLeft(result, "./-")
	result = strings.TrimSuffix(result, ".lock")
	result = strings.TrimRight(result, "./-")
	result = consecutiveHyphens.ReplaceAllString(result, "-")

	if result == "" || result == "@" {
		return "", domain.NewValidationError("branch", "%q does not yield a usable branch name", name)
	}

	logging.Logger.Debug("Branch name sanitized", "input", name, "output", result)
	return result, nil
}
