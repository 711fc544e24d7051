package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/gitwatch/internal/domain"
)

// PrsCmd manages pull requests
type PrsCmd struct {
	Close   PrsCloseCmd   `cmd:"close" help:"Close a pull request without merging (admin only)"`
	Comment PrsCommentCmd `cmd:"comment" help:"Comment on a pull request"`
	Create  PrsCreateCmd  `cmd:"create" help:"Open a pull request"`
	List    PrsListCmd    `cmd:"list" help:"List pull requests" default:"1"`
	Merge   PrsMergeCmd   `cmd:"merge" help:"Merge a pull request (admin only)"`
	View    PrsViewCmd    `cmd:"view" help:"View a pull request with its diff and comments"`
}

// PrsListCmd lists pull requests
type PrsListCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	Status string `help:"Only show pull requests with this status" enum:",open,merged,closed" default:""`
}

// Run executes the list command
func (p *PrsListCmd) Run(cli *CLI) error {
	prs, err := cli.Container.PullRequestService.List(context.Background(), domain.PullRequestStatus(p.Status))
	if err != nil {
		return fmt.Errorf("failed to list pull requests: %w", err)
	}

	if done, err := printStructured(p.Format, prs); done {
		return err
	}

	if len(prs) == 0 {
		fmt.Println("No pull requests.")
		return nil
	}

	w := newTabWriter()
	fmt.Fprintln(w, "ID\tSTATUS\tREPO\tBRANCHES\tAUTHOR\tTITLE\tCREATED")
	for _, pr := range prs {
		fmt.Fprintf(w, "#%d\t%s\t%s\t%s → %s\t%s\t%s\t%s\n",
			pr.ID,
			pr.Status,
			pr.Repository.Name,
			pr.SourceBranch,
			pr.TargetBranch,
			pr.Author,
			pr.Title,
			pr.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

// PrsViewCmd shows a pull request
type PrsViewCmd struct {
	Format      string `help:"Output format: table, json, yaml or patch" enum:"table,json,yaml,patch" default:"table"`
	ID          uint   `arg:"" help:"Pull request ID"`
	Interactive bool   `help:"Browse the diff in a terminal viewer" short:"i"`
}

// Run executes the view command
func (p *PrsViewCmd) Run(cli *CLI) error {
	detail, err := cli.Container.PullRequestService.Get(context.Background(), p.ID)
	if err != nil {
		return err
	}
	pr := detail.PullRequest

	if p.Interactive && detail.DiffError == "" {
		title := fmt.Sprintf("#%d %s (%s → %s)", pr.ID, pr.Title, pr.SourceBranch, pr.TargetBranch)
		return runDiffViewer(cli, title, detail.Changes)
	}

	if done, err := printStructured(p.Format, detail); done {
		return err
	}
	if p.Format == "patch" {
		printPatches(detail.Changes)
		return nil
	}

	fmt.Printf("#%d %s\n", pr.ID, pr.Title)
	fmt.Printf("Status: %s\n", pr.Status)
	fmt.Printf("Repository: %s (%s)\n", pr.Repository.Name, pr.Repository.Path)
	fmt.Printf("Branches: %s → %s\n", pr.SourceBranch, pr.TargetBranch)
	fmt.Printf("Author: %s\n", pr.Author)
	fmt.Printf("Created: %s\n", pr.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	if pr.MergedAt != nil {
		fmt.Printf("Merged: %s\n", pr.MergedAt.Local().Format("2006-01-02 15:04:05"))
	}
	if pr.ClosedAt != nil {
		fmt.Printf("Closed: %s\n", pr.ClosedAt.Local().Format("2006-01-02 15:04:05"))
	}
	if pr.Description != "" {
		fmt.Printf("\n%s\n", pr.Description)
	}

	fmt.Println()
	if detail.DiffError != "" {
		fmt.Printf("Diff unavailable: %s\n", detail.DiffError)
	} else if err := printChangesTable(detail.Changes, detail.Summary); err != nil {
		return err
	}

	if len(pr.Comments) > 0 {
		fmt.Printf("\nComments:\n")
		for _, c := range pr.Comments {
			fmt.Printf("  %s (%s): %s\n", c.Author, c.CreatedAt.Local().Format("2006-01-02 15:04"), c.Content)
		}
	}
	return nil
}

// PrsMergeCmd merges a pull request
type PrsMergeCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	ID     uint   `arg:"" help:"Pull request ID"`
}

// Run executes the merge command
func (p *PrsMergeCmd) Run(cli *CLI) error {
	result, err := cli.Container.PullRequestService.Merge(context.Background(), p.ID, cli.User)
	if err != nil {
		return errors.New(domain.UserMessage(err))
	}

	if done, err := printStructured(p.Format, result); done {
		if err != nil || result.Outcome.Success {
			return err
		}
		return errors.New(result.Outcome.Message)
	}

	if !result.Outcome.Success {
		return fmt.Errorf("pull request #%d not merged: %s", p.ID, result.Outcome.Message)
	}

	fmt.Printf("Pull request #%d merged: %s\n", p.ID, result.Outcome.Message)
	if result.Outcome.HeadCommit != "" {
		fmt.Printf("%s is now at %s\n", result.PullRequest.TargetBranch, result.Outcome.HeadCommit)
	}
	return nil
}

// PrsCloseCmd closes a pull request
type PrsCloseCmd struct {
	ID uint `arg:"" help:"Pull request ID"`
}

// Run executes the close command
func (p *PrsCloseCmd) Run(cli *CLI) error {
	if _, err := cli.Container.PullRequestService.Close(context.Background(), p.ID, cli.User); err != nil {
		return errors.New(domain.UserMessage(err))
	}

	fmt.Printf("Pull request #%d closed\n", p.ID)
	return nil
}

// PrsCommentCmd comments on a pull request
type PrsCommentCmd struct {
	ID      uint   `arg:"" help:"Pull request ID"`
	Message string `help:"Comment text" required:"" short:"m"`
}

// Run executes the comment command
func (p *PrsCommentCmd) Run(cli *CLI) error {
	if _, err := cli.Container.PullRequestService.AddComment(context.Background(), p.ID, cli.User, p.Message); err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}

	fmt.Printf("Comment added to pull request #%d\n", p.ID)
	return nil
}
