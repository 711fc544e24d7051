package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/gitwatch/internal/domain"
	"github.com/renato0307/gitwatch/internal/logging"
)

// BranchesCmd manages branches
type BranchesCmd struct {
	Create BranchesCreateCmd `cmd:"create" help:"Create a branch from an existing branch"`
	List   BranchesListCmd   `cmd:"list" help:"List branches of a repository" default:"withargs"`
}

// BranchesListCmd lists branches
type BranchesListCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	Repo   string `arg:"" help:"Repository name or path"`
}

// Run executes the list command
func (b *BranchesListCmd) Run(cli *CLI) error {
	repo, err := cli.Container.ReviewService.ResolveRepository(b.Repo)
	if err != nil {
		return err
	}

	branches := cli.Container.ReviewService.ListBranches(context.Background(), repo.Path)
	if done, err := printStructured(b.Format, branches); done {
		return err
	}

	for _, branch := range branches {
		fmt.Println(branch)
	}
	return nil
}

// BranchesCreateCmd creates a branch
type BranchesCreateCmd struct {
	Repo     string `arg:"" help:"Repository name or path"`
	Name     string `arg:"" help:"Name of the new branch"`
	From     string `help:"Source branch" required:"" short:"f"`
	Sanitize bool   `help:"Turn the name into a valid branch name first"`
}

// Run executes the create command
func (b *BranchesCreateCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing branches create command", "repo", b.Repo, "name", b.Name, "from", b.From)

	repo, err := cli.Container.ReviewService.ResolveRepository(b.Repo)
	if err != nil {
		return err
	}

	name, err := cli.Container.ReviewService.CreateBranch(context.Background(), repo.Path, b.Name, b.From, b.Sanitize)
	if err != nil {
		return errors.New(domain.UserMessage(err))
	}

	fmt.Printf("Branch '%s' created from '%s'\n", name, b.From)
	return nil
}
