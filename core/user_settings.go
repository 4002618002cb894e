package core

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const SettingsFileName = "settings.yaml"

// Settings are the persisted defaults. Command line flags win over them.
type Settings struct {
	SteamRoot    string `yaml:"steam_root,omitempty"`
	BackupSuffix string `yaml:"backup_suffix,omitempty"`
	DryRun       bool   `yaml:"dry_run"`
}

func GetDefaultSettings() *Settings {
	return &Settings{
		BackupSuffix: DefaultBackupSuffix,
	}
}

func GetDefaultSettingsPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(APP_NAME, SettingsFileName))
}

func ReadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	settings := GetDefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, WrapError(err, ErrConfigLoad, path, "parse settings")
	}
	return settings, nil
}

// GetSettingsOrDefault falls back to defaults when the file is missing or
// unreadable. An empty path means the default location.
func GetSettingsOrDefault(path string) *Settings {
	logger := GetLogger("settings")
	if path == "" {
		var err error
		path, err = GetDefaultSettingsPath()
		if err != nil {
			logger.Warn().Err(err).Msg("No settings location, using defaults")
			return GetDefaultSettings()
		}
	}

	settings, err := ReadSettings(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", path).Msg("Ignoring settings file")
		}
		return GetDefaultSettings()
	}
	return settings
}

func WriteSettings(path string, settings *Settings) error {
	if path == "" {
		var err error
		path, err = GetDefaultSettingsPath()
		if err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
