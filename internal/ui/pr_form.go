package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/gitwatch/internal/domain"
	"github.com/renato0307/gitwatch/internal/logging"
)

// ErrFormAborted is returned when the user cancels a form
var ErrFormAborted = huh.ErrUserAborted

// PullRequestFormOptions feeds the pull request form
type PullRequestFormOptions struct {
	Branches      func(repoPath string) []string
	DefaultTarget string
	Repositories  []domain.Repository
}

// PullRequestFormResult contains the values entered in the form
type PullRequestFormResult struct {
	Description    string
	RepositoryPath string
	SourceBranch   string
	TargetBranch   string
	Title          string
}

// NewPullRequestForm builds the form that opens a pull request. Branch
// choices follow the selected repository.
func NewPullRequestForm(opts PullRequestFormOptions, result *PullRequestFormResult) (*huh.Form, error) {
	if len(opts.Repositories) == 0 {
		return nil, errors.New("no repositories found")
	}

	repoOptions := make([]huh.Option[string], len(opts.Repositories))
	for i, repo := range opts.Repositories {
		repoOptions[i] = huh.NewOption(repo.Name, repo.Path)
	}
	if result.RepositoryPath == "" {
		result.RepositoryPath = opts.Repositories[0].Path
	}

	branchOptions := func() []huh.Option[string] {
		return huh.NewOptions(opts.Branches(result.RepositoryPath)...)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Repository").
				Options(repoOptions...).
				Value(&result.RepositoryPath),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Source branch").
				Description("Branch with the changes").
				OptionsFunc(branchOptions, &result.RepositoryPath).
				Value(&result.SourceBranch),
			huh.NewSelect[string]().
				Title("Target branch").
				Description("Branch the changes are merged into").
				OptionsFunc(func() []huh.Option[string] {
					return targetOptions(opts.Branches(result.RepositoryPath), opts.DefaultTarget)
				}, &result.RepositoryPath).
				Value(&result.TargetBranch).
				Validate(func(target string) error {
					if target == result.SourceBranch {
						return fmt.Errorf("target must differ from source branch %s", target)
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&result.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("title required")
					}
					return nil
				}),
			huh.NewText().
				Title("Description (optional)").
				Value(&result.Description),
		),
	)

	return form, nil
}

// RunPullRequestForm runs the form in the terminal
func RunPullRequestForm(opts PullRequestFormOptions) (*PullRequestFormResult, error) {
	result := &PullRequestFormResult{}
	form, err := NewPullRequestForm(opts, result)
	if err != nil {
		return nil, err
	}

	if err := form.Run(); err != nil {
		logging.Logger.Debug("Pull request form ended", "error", err)
		return nil, err
	}

	logging.Logger.Debug("Pull request form completed",
		"repo", result.RepositoryPath,
		"source", result.SourceBranch,
		"target", result.TargetBranch)
	return result, nil
}

// targetOptions lists branches with the default target first when present
func targetOptions(branches []string, defaultTarget string) []huh.Option[string] {
	ordered := make([]string, 0, len(branches))
	for _, b := range branches {
		if b == defaultTarget {
			ordered = append([]string{b}, ordered...)
			continue
		}
		ordered = append(ordered, b)
	}
	return huh.NewOptions(ordered...)
}
