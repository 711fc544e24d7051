package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/renato0307/gitwatch/internal/theme"
)

// StatsCmd shows pull request statistics
type StatsCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	stats, err := cli.Container.PullRequestService.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	if done, err := printStructured(s.Format, stats); done {
		return err
	}

	fmt.Printf("Pull requests: %d total, %d open, %d merged, %d closed\n",
		stats.Total, stats.Open, stats.Merged, stats.Closed)

	if len(stats.OpenDiffs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Open")
	fmt.Println(strings.Repeat("─", 45))

	w := newTabWriter()
	for _, entry := range stats.OpenDiffs {
		if entry.DiffError != "" {
			fmt.Fprintf(w, "#%d\t%s\t%s\n", entry.ID, entry.Title, theme.ErrorStyle.Render(entry.DiffError))
			continue
		}
		fmt.Fprintf(w, "#%d\t%s\t%d files %s %s\n",
			entry.ID,
			entry.Title,
			entry.Summary.Files,
			theme.AdditionsStyle.Render(fmt.Sprintf("+%d", entry.Summary.Additions)),
			theme.DeletionsStyle.Render(fmt.Sprintf("-%d", entry.Summary.Deletions)))
	}
	return w.Flush()
}
