package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

const (
	DefaultExportPath    = "./draw(qraw).txt"
	DefaultGlyph         = "█"
	DefaultFrameInterval = 16 * time.Millisecond

	minFrameInterval = time.Millisecond
	maxFrameInterval = time.Second
)

// KeyMapConfig holds user overrides for keybindings.
type KeyMapConfig struct {
	Bindings map[string][]string `json:"bindings,omitempty"`
}

// BindingFor returns the configured keys for an action, if present.
func (k KeyMapConfig) BindingFor(action string) ([]string, bool) {
	if len(k.Bindings) == 0 {
		return nil, false
	}
	if keys, ok := k.Bindings[action]; ok && len(keys) > 0 {
		return keys, true
	}
	if keys, ok := k.Bindings[strings.ToLower(action)]; ok && len(keys) > 0 {
		return keys, true
	}
	return nil, false
}

// Config holds the application configuration
type Config struct {
	Paths *Paths

	// ExportPath is overwritten on every export.
	ExportPath string
	// Glyph marks painted cells on screen and in exports.
	Glyph string
	// FrameInterval is the redraw cadence.
	FrameInterval time.Duration

	KeyMap KeyMapConfig
	UI     UISettings
}

// fileConfig mirrors config.json. Pointer fields distinguish "absent" from
// zero values.
type fileConfig struct {
	ExportPath      *string      `json:"export_path,omitempty"`
	Glyph           *string      `json:"glyph,omitempty"`
	FrameIntervalMs *int         `json:"frame_interval_ms,omitempty"`
	KeyMap          KeyMapConfig `json:"keymap,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return defaultsFor(paths), nil
}

func defaultsFor(paths *Paths) *Config {
	return &Config{
		Paths:         paths,
		ExportPath:    DefaultExportPath,
		Glyph:         DefaultGlyph,
		FrameInterval: DefaultFrameInterval,
		KeyMap:        KeyMapConfig{},
		UI:            defaultUISettings(),
	}
}

// Load loads config overrides from ~/.qraw/config.json if present.
func Load() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return LoadFrom(paths)
}

// LoadFrom builds a config from defaults plus paths.ConfigPath, if it exists.
// The result is validated.
func LoadFrom(paths *Paths) (*Config, error) {
	cfg := defaultsFor(paths)

	data, err := os.ReadFile(paths.ConfigPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var user fileConfig
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("parse %s: %w", paths.ConfigPath, err)
	}
	if user.ExportPath != nil {
		cfg.ExportPath = *user.ExportPath
	}
	if user.Glyph != nil {
		cfg.Glyph = *user.Glyph
	}
	if user.FrameIntervalMs != nil {
		cfg.FrameInterval = time.Duration(*user.FrameIntervalMs) * time.Millisecond
	}
	if len(user.KeyMap.Bindings) > 0 {
		cfg.KeyMap = user.KeyMap
	}
	cfg.UI = loadUISettings(paths.ConfigPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// glyphWidth measures with East Asian ambiguous runes as narrow, so the
// result does not depend on the user's locale.
var glyphWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ExportPath) == "" {
		return errors.New("export_path must not be empty")
	}
	if w := glyphWidth.StringWidth(c.Glyph); w != 1 {
		return fmt.Errorf("glyph %q must be one cell wide, got width %d", c.Glyph, w)
	}
	if c.FrameInterval < minFrameInterval || c.FrameInterval > maxFrameInterval {
		return fmt.Errorf("frame_interval_ms must be between %d and %d, got %d",
			minFrameInterval.Milliseconds(), maxFrameInterval.Milliseconds(), c.FrameInterval.Milliseconds())
	}
	return nil
}

// FPS converts FrameInterval into a frame rate, at least 1.
func (c *Config) FPS() int {
	if c.FrameInterval <= 0 {
		return int(time.Second / DefaultFrameInterval)
	}
	fps := int(time.Second / c.FrameInterval)
	if fps < 1 {
		return 1
	}
	return fps
}
