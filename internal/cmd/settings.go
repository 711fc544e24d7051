package cmd

import (
	"fmt"
	"sort"

	"github.com/renato0307/gitwatch/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Keys SettingsKeysCmd `cmd:"keys" help:"Manage diff viewer key bindings"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options"`
	Show SettingsShowCmd `cmd:"show" help:"Show the effective settings" default:"1"`
}

// SettingsShowCmd prints the settings in effect for this run
type SettingsShowCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

type effectiveSettings struct {
	DBPath              string `json:"db_path" yaml:"db_path"`
	DefaultTargetBranch string `json:"default_target_branch" yaml:"default_target_branch"`
	Home                string `json:"home" yaml:"home"`
	MergeTimeout        string `json:"merge_timeout" yaml:"merge_timeout"`
	ReposPath           string `json:"repos_path" yaml:"repos_path"`
	SettingsFile        string `json:"settings_file" yaml:"settings_file"`
	User                string `json:"user" yaml:"user"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	effective := effectiveSettings{
		DBPath:              config.GetDBPath(),
		DefaultTargetBranch: cli.settings.TargetBranch(),
		Home:                config.GetHome(),
		MergeTimeout:        cli.settings.MergeTimeout().String(),
		ReposPath:           cli.Container.ReviewService.ReposRoot(),
		SettingsFile:        config.GetSettingsPath(),
		User:                cli.User,
	}

	if done, err := printStructured(s.Format, effective); done {
		return err
	}

	w := newTabWriter()
	fmt.Fprintf(w, "Home\t%s\n", effective.Home)
	fmt.Fprintf(w, "Settings file\t%s\n", effective.SettingsFile)
	fmt.Fprintf(w, "Database\t%s\n", effective.DBPath)
	fmt.Fprintf(w, "Repositories root\t%s\n", effective.ReposPath)
	fmt.Fprintf(w, "Default target branch\t%s\n", effective.DefaultTargetBranch)
	fmt.Fprintf(w, "Merge timeout\t%s\n", effective.MergeTimeout)
	fmt.Fprintf(w, "User\t%s\n", effective.User)
	return w.Flush()
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	output := map[string]any{
		"settings_file": settingsFile,
		"format":        example,
	}
	if done, err := printStructured(s.Format, output); done {
		return err
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := newTabWriter()
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, example[key])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Create or edit this file to configure gitwatch.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}
