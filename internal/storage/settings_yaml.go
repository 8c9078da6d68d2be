package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"focustree/internal/core/model"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	FocusMinutes int    `yaml:"focus_minutes"`
	TreeTheme    string `yaml:"tree_theme"`
	AmbientSound string `yaml:"ambient_sound"`
	Autostart    bool   `yaml:"autostart"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (model.Settings, error) {
	settings := model.DefaultSettings()
	configPath, err := resolveSettingsPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings model.Settings) error {
	configPath, err := resolveSettingsPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		FocusMinutes: settings.FocusMinutes,
		TreeTheme:    string(settings.TreeTheme),
		AmbientSound: string(settings.Ambient),
		Autostart:    settings.Autostart,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveSettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if fileData.FocusMinutes >= 1 && fileData.FocusMinutes <= 180 {
		settings.FocusMinutes = fileData.FocusMinutes
	}
	if model.ValidTheme(model.TreeTheme(fileData.TreeTheme)) {
		settings.TreeTheme = model.TreeTheme(fileData.TreeTheme)
	}
	if model.ValidAmbient(model.AmbientSound(fileData.AmbientSound)) {
		settings.Ambient = model.AmbientSound(fileData.AmbientSound)
	}
	settings.Autostart = fileData.Autostart
}
