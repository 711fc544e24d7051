package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/gitwatch/internal/domain"
	"github.com/renato0307/gitwatch/internal/logging"
)

const statsConcurrency = 4

// PullRequestStats is the diff summary of a single open pull request
type PullRequestStats struct {
	DiffError string             `json:"diff_error,omitempty" yaml:"diff_error,omitempty"`
	ID        uint               `json:"id" yaml:"id"`
	Summary   domain.DiffSummary `json:"summary" yaml:"summary"`
	Title     string             `json:"title" yaml:"title"`
}

// DashboardStats counts pull requests by status and summarizes open ones
type DashboardStats struct {
	Closed    int                `json:"closed" yaml:"closed"`
	Merged    int                `json:"merged" yaml:"merged"`
	Open      int                `json:"open" yaml:"open"`
	OpenDiffs []PullRequestStats `json:"open_diffs" yaml:"open_diffs"`
	Total     int                `json:"total" yaml:"total"`
}

// Stats computes dashboard counters. Open pull request diffs are computed
// concurrently; a diff that fails is reported on its entry.
func (s *PullRequestService) Stats(ctx context.Context) (*DashboardStats, error) {
	prs, err := s.store.ListPullRequests(ctx, "")
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{Total: len(prs), OpenDiffs: []PullRequestStats{}}
	var open []domain.PullRequest
	for _, pr := range prs {
		switch pr.Status {
		case domain.StatusOpen:
			stats.Open++
			open = append(open, pr)
		case domain.StatusMerged:
			stats.Merged++
		case domain.StatusClosed:
			stats.Closed++
		}
	}

	entries := make([]PullRequestStats, len(open))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(statsConcurrency)
	for i, pr := range open {
		g.Go(func() error {
			entry := PullRequestStats{ID: pr.ID, Title: pr.Title}
			changes, err := s.engine.ComputeDiff(gctx, pr.Repository.Path, pr.SourceBranch, pr.TargetBranch)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				logging.Logger.Debug("Stats diff failed", "id", pr.ID, "error", err)
				entry.DiffError = domain.UserMessage(err)
			} else {
				entry.Summary = domain.Summarize(changes)
			}
			entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.OpenDiffs = append(stats.OpenDiffs, entries...)
	return stats, nil
}
