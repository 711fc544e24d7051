package git

import (
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	"github.com/renato0307/gitwatch/internal/domain"
	"github.com/renato0307/gitwatch/internal/logging"
)

// ListRepositories returns the immediate subdirectories of rootPath that are
// git repositories. A missing root yields an empty list.
func (e *Engine) ListRepositories(rootPath string) []domain.Repository {
	repos := []domain.Repository{}

	entries, err := os.ReadDir(rootPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to read repositories root", "root", rootPath, "error", err)
		}
		return repos
	}

	for _, entry := range entries {
		path := filepath.Join(rootPath, entry.Name())

		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(path, ".git")); err != nil {
			continue
		}
		if _, err := gogit.PlainOpen(path); err != nil {
			logging.Logger.Debug("Skipping directory that does not open as a repository", "path", path, "error", err)
			continue
		}

		repos = append(repos, domain.Repository{Name: entry.Name(), Path: path})
	}

	logging.Logger.Debug("Repositories listed", "root", rootPath, "count", len(repos))
	return repos
}
