package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/qraw/internal/keymap"
	"github.com/andyrewlee/qraw/internal/paint"
	"github.com/andyrewlee/qraw/internal/perf"
	"github.com/andyrewlee/qraw/internal/ui/board"
)

const drawTitle = " ↓↓ Draw here ↓↓ "

// View renders the canvas.
func (a *App) View() tea.View {
	defer perf.Time("view")()

	view := tea.View{
		AltScreen:            true,
		MouseMode:            tea.MouseModeCellMotion,
		BackgroundColor:      a.theme.Colors.Background,
		ForegroundColor:      a.theme.Colors.Foreground,
		KeyboardEnhancements: tea.KeyboardEnhancements{ReportEventTypes: true},
	}

	if a.quitting {
		view.SetContent("")
		return view
	}
	if !a.ready {
		view.SetContent("Loading...")
		return view
	}

	content := a.board.Render(a.frame())
	view.SetContent(a.board.Scan(content))
	return view
}

// frame gathers what the board needs for one screen. Points are projected
// against the full terminal height, with the canvas origin at the top-left.
func (a *App) frame() board.Frame {
	f := board.Frame{
		Width:   a.width,
		Height:  a.height,
		Points:  a.surface.RenderCoordinates(paint.Cell{}, a.height),
		Titles:  []string{drawTitle, a.exitTitle()},
		Status:  fmt.Sprintf("%d cells · %s ", a.surface.Len(), a.surface.Mode()),
		Overlay: a.toast.View(),
	}
	if a.config.UI.ShowHelp {
		f.Hints = a.hints()
	}
	return f
}

// exitTitle lists the quit keys, e.g. " exit: <q> or <Esc> ".
func (a *App) exitTitle() string {
	keys := a.keymap.Quit.Keys()
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		labels = append(labels, "<"+keyLabel(k)+">")
	}
	return " exit: " + strings.Join(labels, " or ") + " "
}

func keyLabel(k string) string {
	switch k {
	case "esc":
		return "Esc"
	case "enter":
		return "Enter"
	case "space":
		return "Space"
	case "tab":
		return "Tab"
	}
	return k
}

// hints are the clickable key hints, one per non-quit action.
func (a *App) hints() []board.Hint {
	items := []struct {
		action  keymap.Action
		binding string
		label   string
	}{
		{keymap.ActionExport, keymap.PrimaryKey(a.keymap.Export), "save"},
		{keymap.ActionClear, keymap.PrimaryKey(a.keymap.Clear), "clear"},
		{keymap.ActionCopy, keymap.PrimaryKey(a.keymap.Copy), "copy"},
		{keymap.ActionHelp, keymap.PrimaryKey(a.keymap.Help), "hide help"},
	}
	hints := make([]board.Hint, 0, len(items))
	for _, it := range items {
		if it.binding == "" {
			continue
		}
		hints = append(hints, board.Hint{
			ID:    string(it.action),
			Label: "[" + it.binding + "] " + it.label,
		})
	}
	return hints
}
