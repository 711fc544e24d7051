package cmd

import (
	"fmt"

	"github.com/renato0307/gitwatch/internal/config"
)

// ReposCmd manages repositories
type ReposCmd struct {
	List ReposListCmd `cmd:"list" help:"List repositories under the repositories root" default:"1"`
}

// ReposListCmd lists repositories
type ReposListCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
	Root   string `help:"Directory to scan instead of the configured root"`
}

// Run executes the list command
func (r *ReposListCmd) Run(cli *CLI) error {
	review := cli.Container.ReviewService
	if r.Root != "" {
		review = cli.Container.ReviewService.WithRoot(config.ExpandPath(r.Root))
	}

	repos := review.ListRepositories()
	if done, err := printStructured(r.Format, repos); done {
		return err
	}

	if len(repos) == 0 {
		fmt.Printf("No repositories found in %s\n", review.ReposRoot())
		return nil
	}

	w := newTabWriter()
	fmt.Fprintln(w, "NAME\tPATH")
	for _, repo := range repos {
		fmt.Fprintf(w, "%s\t%s\n", repo.Name, repo.Path)
	}
	return w.Flush()
}
