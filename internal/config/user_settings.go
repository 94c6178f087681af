package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// UISettings stores user-facing display preferences.
type UISettings struct {
	ShowHelp bool
	Theme    string // Theme ID, defaults to "gruvbox"
}

func defaultUISettings() UISettings {
	return UISettings{
		ShowHelp: true,
		Theme:    "gruvbox",
	}
}

func loadUISettings(path string) UISettings {
	settings := defaultUISettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return settings
	}

	var raw struct {
		UI struct {
			ShowHelp *bool   `json:"show_help"`
			Theme    *string `json:"theme"`
		} `json:"ui"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return settings
	}
	if raw.UI.ShowHelp != nil {
		settings.ShowHelp = *raw.UI.ShowHelp
	}
	if raw.UI.Theme != nil {
		settings.Theme = *raw.UI.Theme
	}
	return settings
}

// saveUISettings rewrites only the "ui" object, leaving other keys intact.
// If w is non-nil it is told about the new content before the write lands.
func saveUISettings(path string, settings UISettings, w *Watcher) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	payload := map[string]any{}
	if existing, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(existing, &payload)
	}

	ui, ok := payload["ui"].(map[string]any)
	if !ok || ui == nil {
		ui = map[string]any{}
	}
	ui["show_help"] = settings.ShowHelp
	ui["theme"] = settings.Theme
	payload["ui"] = ui

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	if w != nil {
		w.IgnoreContent(data)
	}
	return os.WriteFile(path, data, 0o644)
}

// SaveUISettingsTo persists settings into paths.ConfigPath. It only reads
// its arguments, so callers can pass a copy and run it off the UI loop.
// A non-nil w will not report the resulting change.
func SaveUISettingsTo(paths *Paths, settings UISettings, w *Watcher) error {
	if paths == nil {
		return nil
	}
	return saveUISettings(paths.ConfigPath, settings, w)
}

// SaveUISettings persists UI settings to the config file.
func (c *Config) SaveUISettings() error {
	if c == nil {
		return nil
	}
	return SaveUISettingsTo(c.Paths, c.UI, nil)
}
