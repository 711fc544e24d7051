package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/gitwatch/internal/config"
)

// KeyMap contains the diff viewer shortcuts
type KeyMap struct {
	CollapseAll key.Binding
	Down        key.Binding
	ExpandAll   key.Binding
	ForceQuit   key.Binding
	Help        key.Binding
	PageDown    key.Binding
	PageUp      key.Binding
	Quit        key.Binding
	Toggle      key.Binding
	Up          key.Binding
}

// NewKeyMap creates a KeyMap. Custom bindings replace the defaults of the
// same name; pass nil to use the defaults.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		CollapseAll: buildBinding("collapse_all", defaults, customKeys),
		Down:        buildBinding("down", defaults, customKeys),
		ExpandAll:   buildBinding("expand_all", defaults, customKeys),
		ForceQuit:   buildBinding("force_quit", defaults, customKeys),
		Help:        buildBinding("help", defaults, customKeys),
		PageDown:    buildBinding("page_down", defaults, customKeys),
		PageUp:      buildBinding("page_up", defaults, customKeys),
		Quit:        buildBinding("quit", defaults, customKeys),
		Toggle:      buildBinding("toggle", defaults, customKeys),
		Up:          buildBinding("up", defaults, customKeys),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.ExpandAll, k.CollapseAll, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Toggle, k.ExpandAll, k.CollapseAll},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	helpKeys := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		helpKeys[i] = k
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(helpKeys, "/"), def.Help),
	)
}
