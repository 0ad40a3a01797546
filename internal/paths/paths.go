package paths

import (
	"os"
	"path/filepath"
)

// GetPomoHome returns POMO_HOME or ~/.pomo default
func GetPomoHome() string {
	pomoHome := os.Getenv("POMO_HOME")
	if pomoHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".pomo"
		}
		return filepath.Join(homeDir, ".pomo")
	}
	return ExpandPath(pomoHome)
}

// GetSettingsPath returns $POMO_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetPomoHome(), "settings.json")
}

// GetSSHDir returns $POMO_HOME/ssh, where the server host key lives
func GetSSHDir() string {
	return filepath.Join(GetPomoHome(), "ssh")
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
