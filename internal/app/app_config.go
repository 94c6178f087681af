package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/qraw/internal/config"
	"github.com/andyrewlee/qraw/internal/keymap"
	"github.com/andyrewlee/qraw/internal/logging"
	"github.com/andyrewlee/qraw/internal/messages"
	"github.com/andyrewlee/qraw/internal/safego"
	"github.com/andyrewlee/qraw/internal/ui/common"
)

func (a *App) startConfigWatcher() {
	a.configWatcherCh = make(chan messages.ConfigChanged, 1)
	ch := a.configWatcherCh
	w, err := config.NewWatcher(a.config.Paths.ConfigPath, func() {
		select {
		case ch <- messages.ConfigChanged{}:
		default:
			// A reload is already pending.
		}
	})
	if err != nil {
		logging.Warn("Config watcher disabled: %v", err)
		a.configWatcherErr = err
		a.configWatcherCh = nil
		return
	}
	a.configWatcher = w
	ctx := a.ctx
	safego.Go("config-watcher", func() {
		_ = w.Run(ctx)
	})
}

// listenForConfigChanges blocks until the watcher reports a change. It is
// re-armed after every ConfigChanged.
func (a *App) listenForConfigChanges() tea.Cmd {
	if a.configWatcher == nil || a.configWatcherCh == nil {
		return nil
	}
	ch := a.configWatcherCh
	ctx := a.ctx
	return func() tea.Msg {
		select {
		case msg := <-ch:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}

// reloadConfig reads config.json again. On failure the current config stays
// in effect.
func (a *App) reloadConfig() tea.Cmd {
	paths := a.config.Paths
	if paths == nil {
		return nil
	}
	return a.safeCmd(func() tea.Msg {
		cfg, err := config.LoadFrom(paths)
		if err != nil {
			return messages.Error{Err: err, Context: "reload config"}
		}
		return messages.ConfigReloaded{Config: cfg}
	})
}

// applyConfig pushes keymap, glyph and theme settings into the model.
func (a *App) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	a.config = cfg
	a.keymap = keymap.New(cfg.KeyMap)
	a.theme = common.GetTheme(common.ThemeID(cfg.UI.Theme))
	a.styles = common.NewStyles(a.theme)
	a.board.SetStyles(a.styles)
	a.board.SetGlyph(cfg.Glyph)
	a.toast.SetStyles(a.styles)
}
