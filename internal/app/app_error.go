package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/qraw/internal/logging"
	"github.com/andyrewlee/qraw/internal/messages"
)

func (a *App) handleErrorMessage(msg messages.Error) tea.Cmd {
	if msg.Err == nil {
		return nil
	}
	a.err = msg.Err
	if !msg.Logged {
		logging.Error("Error in %s: %v", msg.Context, msg.Err)
	}
	if msg.Context == "reload config" {
		return a.toast.ShowWarning("Config not reloaded: " + msg.Err.Error())
	}
	return a.toast.ShowError(msg.Error())
}
