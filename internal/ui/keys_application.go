package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"pomo/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// newApplicationKeys creates application key bindings
func newApplicationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ApplicationKeys {
	return ApplicationKeys{
		ForceQuit: buildBinding("force_quit", defaults, customKeys),
		Help:      buildBinding("help", defaults, customKeys),
		Quit:      buildBinding("quit", defaults, customKeys),
	}
}

// buildBinding creates a key.Binding from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), def.Help),
	)
}

// helpKeys joins keys for display, spelling out the space bar
func helpKeys(keys []string) string {
	display := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		display[i] = k
	}
	return strings.Join(display, "/")
}
