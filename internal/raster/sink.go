package raster

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath is where exports land unless configured otherwise.
const DefaultPath = "./draw(qraw).txt"

// WriteFile replaces the file at path with text. The content goes to a
// sibling temp file first and is renamed into place, so a failed write never
// leaves a truncated export behind.
func WriteFile(path, text string) error {
	if path == "" {
		return fmt.Errorf("export path is empty")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, []byte(text), 0o644); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("write export: %w", err)
	}
	if err := replaceFile(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("replace export: %w", err)
	}
	return nil
}
