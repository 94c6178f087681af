package app

import (
	"fmt"
	"runtime/debug"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/qraw/internal/config"
	"github.com/andyrewlee/qraw/internal/keymap"
	"github.com/andyrewlee/qraw/internal/logging"
	"github.com/andyrewlee/qraw/internal/messages"
	"github.com/andyrewlee/qraw/internal/paint"
)

// safeCmd wraps a command so a panic becomes an error message instead of
// taking the program down.
func (a *App) safeCmd(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				logging.Error("panic in command: %v\n%s", r, debug.Stack())
				msg = messages.Error{Err: fmt.Errorf("command panic: %v", r), Context: "command", Logged: true}
			}
		}()
		return cmd()
	}
}

func (a *App) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	if msg.IsRepeat {
		return nil
	}
	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a.quit()
	case key.Matches(msg, a.keymap.Export):
		return a.export()
	case key.Matches(msg, a.keymap.Clear):
		return a.clear()
	case key.Matches(msg, a.keymap.Copy):
		return a.copyRaster()
	case key.Matches(msg, a.keymap.Help):
		return a.toggleHelp()
	}
	return nil
}

// runAction performs the action behind a clicked hint.
func (a *App) runAction(action keymap.Action) tea.Cmd {
	switch action {
	case keymap.ActionQuit:
		return a.quit()
	case keymap.ActionExport:
		return a.export()
	case keymap.ActionClear:
		return a.clear()
	case keymap.ActionCopy:
		return a.copyRaster()
	case keymap.ActionHelp:
		return a.toggleHelp()
	}
	return nil
}

func (a *App) quit() tea.Cmd {
	a.quitting = true
	return tea.Quit
}

func (a *App) clear() tea.Cmd {
	n := a.surface.Len()
	a.surface.Clear()
	logging.Debug("Cleared %d cells", n)
	return a.toast.ShowInfo("Cleared")
}

// toggleHelp flips hint visibility and saves it. The save command only sees
// copies; a.config stays owned by the loop.
func (a *App) toggleHelp() tea.Cmd {
	a.config.UI.ShowHelp = !a.config.UI.ShowHelp
	ui := a.config.UI
	paths := a.config.Paths
	w := a.configWatcher
	return a.safeCmd(func() tea.Msg {
		if err := config.SaveUISettingsTo(paths, ui, w); err != nil {
			return messages.Error{Err: fmt.Errorf("save ui settings: %w", err), Context: "settings"}
		}
		return nil
	})
}

// handleMouseClick starts a stroke on primary press. A press on a title-row
// hint runs that hint's action instead.
func (a *App) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if msg.Button != tea.MouseLeft {
		return nil
	}
	if msg.Y == 0 && a.config.UI.ShowHelp {
		if id, ok := a.board.HintAt(msg.X, msg.Y, a.hints()); ok {
			return a.runAction(keymap.Action(id))
		}
	}
	a.surface.PointerDown(paint.Cell{Col: msg.X, Row: msg.Y})
	return nil
}

// handleMouseRelease ends a stroke. Legacy mouse encodings cannot say which
// button was released, so an unknown button counts as the primary one.
func (a *App) handleMouseRelease(msg tea.MouseReleaseMsg) {
	if msg.Button != tea.MouseLeft && msg.Button != tea.MouseNone {
		return
	}
	a.surface.PointerUp()
}

func (a *App) handleMouseMotion(msg tea.MouseMotionMsg) {
	at := paint.Cell{Col: msg.X, Row: msg.Y}
	switch msg.Button {
	case tea.MouseLeft:
		a.surface.DragPaint(at)
	case tea.MouseRight:
		a.surface.DragErase(at)
	}
}
