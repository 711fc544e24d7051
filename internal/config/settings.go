package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied when neither flags, env, nor settings.json say otherwise
const (
	DefaultMergeTimeout = 2 * time.Minute
	DefaultTargetBranch = "main"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig overrides diff viewer key bindings by name
// (e.g. "toggle": "enter", "quit": ["q", "esc"]).
type KeyBindingsConfig map[string]KeyBindingValue

// Validate rejects unknown binding names, empty keys and keys bound twice
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)
	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents the structure of $GITWATCH_HOME/settings.json
type Settings struct {
	DefaultTargetBranch string            `json:"default_target_branch,omitempty"`
	Debug               *bool             `json:"debug,omitempty"`
	Keys                KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles         *int              `json:"max_log_files,omitempty"`
	MergeAuthorEmail    string            `json:"merge_author_email,omitempty"`
	MergeAuthorName     string            `json:"merge_author_name,omitempty"`
	MergeTimeoutSeconds *int              `json:"merge_timeout_seconds,omitempty"`
	ReposPath           string            `json:"repos_path,omitempty"`
	User                string            `json:"user,omitempty"`
}

// MergeTimeout returns the configured merge timeout or the default
func (s *Settings) MergeTimeout() time.Duration {
	if s == nil || s.MergeTimeoutSeconds == nil || *s.MergeTimeoutSeconds <= 0 {
		return DefaultMergeTimeout
	}
	return time.Duration(*s.MergeTimeoutSeconds) * time.Second
}

// TargetBranch returns the default target branch for new pull requests
func (s *Settings) TargetBranch() string {
	if s == nil || s.DefaultTargetBranch == "" {
		return DefaultTargetBranch
	}
	return s.DefaultTargetBranch
}

// ResolveReposPath applies precedence: flag > GITWATCH_REPOS_PATH > settings.json > default
func (s *Settings) ResolveReposPath(flag string) string {
	if flag != "" {
		return ExpandPath(flag)
	}
	if env := os.Getenv(EnvReposPath); env != "" {
		return ExpandPath(env)
	}
	if s != nil && s.ReposPath != "" {
		return s.ReposPath
	}
	return GetDefaultReposPath()
}

// LoadSettings loads settings from $GITWATCH_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.ReposPath != "" {
		settings.ReposPath = ExpandPath(settings.ReposPath)
	}

	return &settings, nil
}

// SaveSettings saves settings to $GITWATCH_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
