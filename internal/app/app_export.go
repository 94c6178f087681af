package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"

	"github.com/andyrewlee/qraw/internal/messages"
	"github.com/andyrewlee/qraw/internal/perf"
	"github.com/andyrewlee/qraw/internal/raster"
)

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

// rasterize renders the current cells with the configured glyph. The result
// is a snapshot; later edits to the surface do not affect it.
func (a *App) rasterize() (text string, cells int) {
	defer perf.Time("export")()
	snapshot := a.surface.Cells()
	return raster.ExportWith(snapshot, a.bounds, raster.Options{Glyph: a.config.Glyph}), len(snapshot)
}

// export rasterizes on the loop and writes the file in a command. A failed
// write leaves the canvas untouched.
func (a *App) export() tea.Cmd {
	text, cells := a.rasterize()
	path := a.exportPath()
	return a.safeCmd(func() tea.Msg {
		if err := raster.WriteFile(path, text); err != nil {
			return messages.ExportFailed{Path: path, Err: err}
		}
		return messages.ExportSaved{Path: path, Cells: cells, Bytes: len(text)}
	})
}

func (a *App) copyRaster() tea.Cmd {
	if a.surface.Len() == 0 {
		return a.toast.ShowInfo("Nothing to copy")
	}
	text, _ := a.rasterize()
	return a.safeCmd(func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return messages.Error{Err: fmt.Errorf("clipboard error: %w", err), Context: "clipboard"}
		}
		return messages.ClipboardCopied{Bytes: len(text)}
	})
}

func (a *App) exportPath() string {
	if a.opts.ExportPath != "" {
		return a.opts.ExportPath
	}
	return a.config.ExportPath
}
