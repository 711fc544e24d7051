package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/gitwatch/internal/config"
	"github.com/renato0307/gitwatch/internal/domain"
	"github.com/renato0307/gitwatch/internal/theme"
	"github.com/renato0307/gitwatch/internal/ui"
)

// DiffCmd shows a diff between two branches
type DiffCmd struct {
	Repo        string `arg:"" help:"Repository name or path"`
	Source      string `arg:"" help:"Source branch"`
	Target      string `arg:"" help:"Target branch"`
	Format      string `help:"Output format: table, json, yaml or patch" enum:"table,json,yaml,patch" default:"table"`
	Interactive bool   `help:"Browse the diff in a terminal viewer" short:"i"`
}

// Run executes the diff command
func (d *DiffCmd) Run(cli *CLI) error {
	repo, err := cli.Container.ReviewService.ResolveRepository(d.Repo)
	if err != nil {
		return errors.New(domain.UserMessage(err))
	}

	preview, err := cli.Container.ReviewService.PreviewDiff(context.Background(), repo.Path, d.Source, d.Target)
	if err != nil {
		return errors.New(domain.UserMessage(err))
	}

	if d.Interactive {
		title := fmt.Sprintf("%s: %s → %s", repo.Name, d.Source, d.Target)
		return runDiffViewer(cli, title, preview.Changes)
	}

	if done, err := printStructured(d.Format, preview); done {
		return err
	}
	if d.Format == "patch" {
		printPatches(preview.Changes)
		return nil
	}

	return printChangesTable(preview.Changes, preview.Summary)
}

func runDiffViewer(cli *CLI, title string, changes []domain.FileChange) error {
	var keys config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		if err := cli.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keys = cli.settings.Keys
	}
	return ui.RunDiffViewer(title, changes, keys)
}

func printPatches(changes []domain.FileChange) {
	for _, change := range changes {
		if change.IsBinary {
			fmt.Printf("Binary file %s differs\n", change.DisplayPath())
			continue
		}
		fmt.Print(change.Patch)
	}
}

func printChangesTable(changes []domain.FileChange, summary domain.DiffSummary) error {
	if len(changes) == 0 {
		fmt.Println("No changes found.")
		return nil
	}

	w := newTabWriter()
	for _, change := range changes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			change.ChangeType.Symbol(),
			change.DisplayPath(),
			theme.AdditionsStyle.Render(fmt.Sprintf("+%d", change.Additions)),
			theme.DeletionsStyle.Render(fmt.Sprintf("-%d", change.Deletions)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d files changed, %d insertions(+), %d deletions(-)\n",
		summary.Files, summary.Additions, summary.Deletions)
	return nil
}
