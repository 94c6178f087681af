package messages

import "github.com/andyrewlee/qraw/internal/config"

// ExportSaved is sent when the raster was written to Path.
type ExportSaved struct {
	Path  string
	Cells int
	Bytes int
}

// ExportFailed is sent when writing the raster failed. The canvas is left
// untouched and the program keeps running.
type ExportFailed struct {
	Path string
	Err  error
}

// ClipboardCopied is sent after the raster was placed on the clipboard.
type ClipboardCopied struct {
	Bytes int
}

// ConfigChanged is sent by the config watcher when config.json changes on
// disk.
type ConfigChanged struct{}

// ConfigReloaded carries a freshly loaded, validated config.
type ConfigReloaded struct {
	Config *config.Config
}

// Error is a generic error surfaced to the user.
type Error struct {
	Err     error
	Context string
	Logged  bool
}

func (e Error) Error() string {
	if e.Err == nil {
		return e.Context
	}
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e Error) Unwrap() error {
	return e.Err
}
