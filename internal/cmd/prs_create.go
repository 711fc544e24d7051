package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/renato0307/gitwatch/internal/domain"
	"github.com/renato0307/gitwatch/internal/logging"
	"github.com/renato0307/gitwatch/internal/services"
	"github.com/renato0307/gitwatch/internal/ui"
)

// PrsCreateCmd opens a pull request. Without flags on a terminal it shows a form.
type PrsCreateCmd struct {
	Description string `help:"Pull request description"`
	Repo        string `help:"Repository name or path" short:"r"`
	Source      string `help:"Source branch" short:"s"`
	Target      string `help:"Target branch (defaults to the configured target branch)" short:"t"`
	Title       string `help:"Pull request title"`
}

// Run executes the create command
func (p *PrsCreateCmd) Run(cli *CLI) error {
	ctx := context.Background()

	params := services.CreatePullRequestParams{
		Author:       cli.User,
		Description:  p.Description,
		Repository:   p.Repo,
		SourceBranch: p.Source,
		TargetBranch: p.Target,
		Title:        p.Title,
	}

	if p.Repo == "" && p.Source == "" && p.Title == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		logging.Logger.Debug("No flags given, showing pull request form")

		review := cli.Container.ReviewService
		input, err := ui.RunPullRequestForm(ui.PullRequestFormOptions{
			Branches:      func(repoPath string) []string { return review.ListBranches(ctx, repoPath) },
			DefaultTarget: cli.settings.TargetBranch(),
			Repositories:  review.ListRepositories(),
		})
		if err != nil {
			if errors.Is(err, ui.ErrFormAborted) {
				fmt.Println("Aborted.")
				return nil
			}
			return err
		}

		params.Description = input.Description
		params.Repository = input.RepositoryPath
		params.SourceBranch = input.SourceBranch
		params.TargetBranch = input.TargetBranch
		params.Title = input.Title
	}

	pr, err := cli.Container.PullRequestService.Create(ctx, params)
	if err != nil {
		return errors.New(domain.UserMessage(err))
	}

	fmt.Printf("Pull request #%d opened: %s (%s → %s)\n", pr.ID, pr.Title, pr.SourceBranch, pr.TargetBranch)

	preview, err := cli.Container.ReviewService.PreviewDiff(ctx, pr.Repository.Path, pr.SourceBranch, pr.TargetBranch)
	if err != nil {
		logging.Logger.Warn("Failed to preview diff", "id", pr.ID, "error", err)
		return nil
	}
	fmt.Printf("%d files changed, %d insertions(+), %d deletions(-)\n",
		preview.Summary.Files, preview.Summary.Additions, preview.Summary.Deletions)
	return nil
}
