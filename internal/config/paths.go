package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Paths holds the file system locations qraw reads and writes.
type Paths struct {
	Home       string // ~/.qraw
	ConfigPath string // ~/.qraw/config.json
	LogDir     string // ~/.qraw/logs
}

// NewPaths lays out the qraw directory under home.
func NewPaths(home string) *Paths {
	return &Paths{
		Home:       home,
		ConfigPath: filepath.Join(home, "config.json"),
		LogDir:     filepath.Join(home, "logs"),
	}
}

// DefaultPaths returns paths rooted at $QRAW_HOME, or ~/.qraw when unset.
func DefaultPaths() (*Paths, error) {
	if home := strings.TrimSpace(os.Getenv("QRAW_HOME")); home != "" {
		return NewPaths(home), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewPaths(filepath.Join(home, ".qraw")), nil
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
