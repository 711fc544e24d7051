package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains all configurable key bindings of the diff viewer.
// Names here are the ones accepted in settings.json "keys".
var AllKeyDefinitions = []KeyDefinition{
	{Name: "collapse_all", Defaults: []string{"c"}, Help: "collapse all"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "next file"},
	{Name: "expand_all", Defaults: []string{"e"}, Help: "expand all"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "toggle help"},
	{Name: "page_down", Defaults: []string{"pgdown", "f"}, Help: "page down"},
	{Name: "page_up", Defaults: []string{"pgup", "b"}, Help: "page up"},
	{Name: "quit", Defaults: []string{"q", "esc"}, Help: "quit"},
	{Name: "toggle", Defaults: []string{"enter", " "}, Help: "show/hide patch"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "previous file"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
