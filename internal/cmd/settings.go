package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"pomo/internal/config"
	"pomo/internal/domain"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Edit SettingsEditCmd `cmd:"edit" help:"Pick focus and break durations interactively"`
	Keys SettingsKeysCmd `cmd:"keys" help:"List or customize key bindings"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Set  SettingsSetCmd  `cmd:"set" help:"Store focus and/or break durations"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	return writeSettingsMeta(os.Stdout, s.Format, config.GetSettingsFilePath(), config.GetSettingsExample())
}

func writeSettingsMeta(out io.Writer, format, settingsFile string, example map[string]any) error {
	output := map[string]any{
		"settings_file": settingsFile,
		"format":        example,
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(output)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Fprint(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(out, "Example settings.json:")
	fmt.Fprintln(out)

	names := make([]string, 0, len(example))
	for name := range example {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\n", name, formatExampleValue(example[name]))
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Create or edit this file to configure pomo.")
	fmt.Fprintln(out, "All settings are optional and have sensible defaults.")
	return nil
}

func formatExampleValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return fmt.Sprintf("%t", v)
	case int:
		return fmt.Sprintf("%d", v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}

// SettingsSetCmd stores durations without opening the TUI
type SettingsSetCmd struct {
	Break *int `help:"Break minutes (1-15)" name:"break"`
	Focus *int `help:"Focus minutes (5-60 in steps of 5)" name:"focus"`
}

// Run executes the set command
func (s *SettingsSetCmd) Run(cli *CLI) error {
	if s.Focus == nil && s.Break == nil {
		return errors.New("nothing to set: pass --focus and/or --break")
	}

	updated, err := cli.Container.SettingsService.UpdateDurations(s.Focus, s.Break)
	if err != nil {
		return err
	}

	fmt.Printf("Focus: %s, Break: %s\n",
		domain.MinutesToDuration(updated.FocusMinutes),
		domain.MinutesToDuration(updated.BreakMinutes))
	return nil
}

// SettingsEditCmd opens a small form to pick durations
type SettingsEditCmd struct{}

// Run executes the edit command
func (s *SettingsEditCmd) Run(cli *CLI) error {
	current, err := cli.Container.SettingsService.TimerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	focusMinutes := current.FocusMinutes
	breakMinutes := current.BreakMinutes

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Focus duration").
				Description("Minutes per focus phase").
				Options(durationOptions(domain.MinFocusMinutes, domain.MaxFocusMinutes, domain.FocusStep)...).
				Value(&focusMinutes),
			huh.NewSelect[int]().
				Title("Break duration").
				Description("Minutes per break phase").
				Options(durationOptions(domain.MinBreakMinutes, domain.MaxBreakMinutes, domain.BreakStep)...).
				Value(&breakMinutes),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("Cancelled, nothing saved")
			return nil
		}
		return fmt.Errorf("failed to run form: %w", err)
	}

	updated, err := cli.Container.SettingsService.UpdateDurations(&focusMinutes, &breakMinutes)
	if err != nil {
		return err
	}

	fmt.Printf("Saved. Focus: %s, Break: %s\n",
		domain.MinutesToDuration(updated.FocusMinutes),
		domain.MinutesToDuration(updated.BreakMinutes))
	return nil
}

// durationOptions lists every selectable minute value from min to max
func durationOptions(minimum, maximum, step int) []huh.Option[int] {
	options := make([]huh.Option[int], 0, (maximum-minimum)/step+1)
	for minutes := minimum; minutes <= maximum; minutes += step {
		options = append(options, huh.NewOption(domain.MinutesToDuration(minutes), minutes))
	}
	return options
}
