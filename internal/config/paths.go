package config

import (
	"os"
	"path/filepath"
)

// Environment variables recognised by gitwatch
const (
	EnvDataDir   = "GITWATCH_DATA_DIR"
	EnvHome      = "GITWATCH_HOME"
	EnvReposPath = "GITWATCH_REPOS_PATH"
)

// GetHome returns GITWATCH_HOME, GITWATCH_DATA_DIR, or ~/.gitwatch
func GetHome() string {
	if home := os.Getenv(EnvHome); home != "" {
		return ExpandPath(home)
	}
	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		return ExpandPath(dataDir)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gitwatch"
	}
	return filepath.Join(homeDir, ".gitwatch")
}

// GetDBPath returns $GITWATCH_HOME/gitwatch.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "gitwatch.db")
}

// GetLockDir returns $GITWATCH_HOME/locks
func GetLockDir() string {
	return filepath.Join(GetHome(), "locks")
}

// GetSettingsPath returns $GITWATCH_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetDefaultReposPath returns $GITWATCH_HOME/repos
func GetDefaultReposPath() string {
	return filepath.Join(GetHome(), "repos")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
