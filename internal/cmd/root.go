package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/gitwatch/internal/config"
	"github.com/renato0307/gitwatch/internal/logging"
	"github.com/renato0307/gitwatch/internal/services"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	ReposPath   string           `help:"Directory scanned for repositories (overrides $GITWATCH_REPOS_PATH)"`
	User        string           `help:"Acting user" env:"GITWATCH_USER" short:"u"`
	Verbose     bool             `help:"Also log to stderr" short:"v"`

	Branches BranchesCmd `cmd:"branches" help:"List and create branches"`
	Diff     DiffCmd     `cmd:"diff" help:"Show the changes of a source branch relative to a target branch"`
	Prs      PrsCmd      `cmd:"prs" help:"Manage pull requests"`
	Repos    ReposCmd    `cmd:"repos" help:"List repositories"`
	Settings SettingsCmd `cmd:"settings" help:"Show settings"`
	Stats    StatsCmd    `cmd:"stats" help:"Show pull request statistics"`
	Users    UsersCmd    `cmd:"users" help:"Manage users"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("GITWATCH_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("GITWATCH_DEBUG"); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}

		if c.User == "" {
			c.User = c.settings.User
		}
	}
	if c.User == "" {
		c.User = services.DefaultAdminUsername
	}

	logFilePath, err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		DebugFile:   c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
		Verbose:     c.Verbose,
	})
	if err != nil {
		return err
	}

	// Child git processes inherit the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("GITWATCH_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("GITWATCH_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("GITWATCH_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Container is created after logging so GORM logs through logging.Logger
	container, err := NewContainer(c.settings, c.ReposPath)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	if err := container.UserService.EnsureDefaultAdmin(context.Background()); err != nil {
		logging.Logger.Warn("Failed to create default admin", "error", err)
	}

	logging.Logger.Debug("CLI initialized", "user", c.User, "repos_root", container.ReviewService.ReposRoot())
	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	var err error
	if c.Container != nil {
		err = c.Container.Close()
	}
	if closeErr := logging.Close(); err == nil {
		err = closeErr
	}
	return err
}
