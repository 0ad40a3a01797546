package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"pomo/internal/config"
	"pomo/internal/logging"
	"pomo/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List  SettingsKeysListCmd  `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Reset SettingsKeysResetCmd `cmd:"reset" help:"Drop a custom binding so the default applies again"`
	Set   SettingsKeysSetCmd   `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// keyBindingEntry is one row of the key listing
type keyBindingEntry struct {
	Custom      []string `json:"custom,omitempty"`
	Default     []string `json:"default"`
	Description string   `json:"description"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var customKeys config.KeyBindingsConfig
	if cli.settings != nil {
		customKeys = cli.settings.Keys
	}
	return writeKeyBindings(os.Stdout, s.Format, config.GetSettingsFilePath(), customKeys)
}

func writeKeyBindings(out io.Writer, format, settingsFile string, customKeys config.KeyBindingsConfig) error {
	names := ui.GetValidKeyNames()
	entries := make(map[string]keyBindingEntry, len(names))
	for _, name := range names {
		def := ui.GetKeyDefinition(name)
		entry := keyBindingEntry{Default: def.Defaults, Description: def.Help}
		if custom := customKeys[name]; len(custom) > 0 {
			entry.Custom = custom
		}
		entries[name] = entry
	}

	if format == "json" {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Key Bindings (settings file: %s)\n\n", settingsFile)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDefault\tCustom\tAction")
	fmt.Fprintln(w, "────\t───────\t──────\t──────")
	for _, name := range names {
		entry := entries[name]
		custom := "-"
		if len(entry.Custom) > 0 {
			custom = formatKeyList(entry.Custom)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, formatKeyList(entry.Default), custom, entry.Description)
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Use 'pomo settings keys set <name> <value>' to customize.")
	return nil
}

// formatKeyList shows the space bar by name
func formatKeyList(keys []string) string {
	shown := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		shown[i] = k
	}
	return strings.Join(shown, ", ")
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Binding name (e.g., play_pause, help, focus_increase)"`
	Value string `arg:"" help:"Key(s) to bind (e.g., p, ctrl+s, or comma-separated for multiple: up,k)"`
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if !ui.IsValidKeyName(s.Key) {
		return unknownKeyError(s.Key)
	}

	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	err := updateKeyBindings(func(keys config.KeyBindingsConfig) {
		keys[s.Key] = values
	})
	if err != nil {
		return err
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, formatKeyList(values))
	return nil
}

// SettingsKeysResetCmd removes a custom key binding
type SettingsKeysResetCmd struct {
	Key string `arg:"" help:"Binding name to restore to its default"`
}

// Run executes the reset command
func (s *SettingsKeysResetCmd) Run(cli *CLI) error {
	if !ui.IsValidKeyName(s.Key) {
		return unknownKeyError(s.Key)
	}

	logging.Logger.Debug("Resetting key binding", "key", s.Key)

	err := updateKeyBindings(func(keys config.KeyBindingsConfig) {
		delete(keys, s.Key)
	})
	if err != nil {
		return err
	}

	def := ui.GetKeyDefinition(s.Key)
	fmt.Printf("Reset '%s' to default: %s\n", s.Key, formatKeyList(def.Defaults))
	return nil
}

// updateKeyBindings applies change to the stored bindings, checks the result
// for conflicts and saves it. Nothing is written when validation fails.
func updateKeyBindings(change func(config.KeyBindingsConfig)) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	change(settings.Keys)
	if len(settings.Keys) == 0 {
		settings.Keys = nil
	}

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func unknownKeyError(name string) error {
	return fmt.Errorf("unknown key '%s'. Valid keys: %s",
		name, strings.Join(ui.GetValidKeyNames(), ", "))
}

// parseKeyValues parses comma-separated key values. A lone "space" binds
// the space bar.
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		switch trimmed {
		case "":
			continue
		case "space":
			trimmed = " "
		}
		result = append(result, trimmed)
	}
	return result
}
