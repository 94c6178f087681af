package app

import (
	"context"
	"sync"

	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/qraw/internal/config"
	"github.com/andyrewlee/qraw/internal/keymap"
	"github.com/andyrewlee/qraw/internal/logging"
	"github.com/andyrewlee/qraw/internal/messages"
	"github.com/andyrewlee/qraw/internal/paint"
	"github.com/andyrewlee/qraw/internal/perf"
	"github.com/andyrewlee/qraw/internal/raster"
	"github.com/andyrewlee/qraw/internal/ui/board"
	"github.com/andyrewlee/qraw/internal/ui/common"
)

// Options adjust how the App is built.
type Options struct {
	// ExportPath overrides the configured export path, and keeps doing so
	// across config reloads.
	ExportPath string
	// WatchConfig enables hot reload of config.json.
	WatchConfig bool
}

// App is the root Bubble Tea model. It owns the paint surface; nothing
// outside Update touches it.
type App struct {
	config  *config.Config
	opts    Options
	surface *paint.Surface

	keymap keymap.KeyMap
	theme  common.Theme
	styles common.Styles
	board  *board.Renderer
	zone   *zone.Manager
	toast  *common.ToastModel

	configWatcher    *config.Watcher
	configWatcherCh  chan messages.ConfigChanged
	configWatcherErr error
	ctx              context.Context
	cancel           context.CancelFunc

	// Layout
	width, height int
	bounds        raster.Bounds

	// Lifecycle
	ready        bool
	quitting     bool
	err          error
	shutdownOnce sync.Once
}

// New creates the application model.
func New(cfg *config.Config, opts Options) *App {
	ctx, cancel := context.WithCancel(context.Background())
	z := zone.New()
	a := &App{
		config:  cfg,
		opts:    opts,
		surface: paint.NewSurface(),
		board:   board.New(z),
		zone:    z,
		toast:   common.NewToastModel(),
		ctx:     ctx,
		cancel:  cancel,
	}
	a.applyConfig(cfg)

	if opts.WatchConfig && cfg.Paths != nil {
		a.startConfigWatcher()
	}
	return a
}

// Init starts background listeners.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.listenForConfigChanges()}
	if a.configWatcherErr != nil {
		cmds = append(cmds, a.toast.ShowWarning("Config hot reload disabled"))
	}
	return tea.Batch(cmds...)
}

// Update handles all messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer perf.Time("update")()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.handleWindowSize(msg)
		return a, nil

	case tea.KeyPressMsg:
		return a, a.handleKeyPress(msg)

	case tea.MouseClickMsg:
		return a, a.handleMouseClick(msg)

	case tea.MouseMotionMsg:
		a.handleMouseMotion(msg)
		return a, nil

	case tea.MouseReleaseMsg:
		a.handleMouseRelease(msg)
		return a, nil

	case common.ToastDismissed:
		newToast, cmd := a.toast.Update(msg)
		a.toast = newToast
		return a, cmd

	case messages.ExportSaved:
		logging.Info("Exported %d cells (%d bytes) to %s", msg.Cells, msg.Bytes, msg.Path)
		return a, a.toast.ShowSuccess("Saved " + msg.Path)

	case messages.ExportFailed:
		logging.Error("Export to %s failed: %v", msg.Path, msg.Err)
		a.err = msg.Err
		return a, a.toast.ShowError("Save failed: " + msg.Err.Error())

	case messages.ClipboardCopied:
		logging.Debug("Copied %d bytes to clipboard", msg.Bytes)
		return a, a.toast.ShowSuccess("Copied to clipboard")

	case messages.ConfigChanged:
		return a, tea.Batch(a.reloadConfig(), a.listenForConfigChanges())

	case messages.ConfigReloaded:
		a.applyConfig(msg.Config)
		logging.Info("Config reloaded")
		return a, a.toast.ShowInfo("Config reloaded")

	case messages.Error:
		return a, a.handleErrorMessage(msg)
	}
	return a, nil
}

// handleWindowSize records the terminal size. The raster bounds are the
// largest addressable column and row.
func (a *App) handleWindowSize(msg tea.WindowSizeMsg) {
	a.width = msg.Width
	a.height = msg.Height
	a.bounds = raster.Bounds{
		Width:  max(msg.Width-1, 0),
		Height: max(msg.Height-1, 0),
	}
	a.ready = true
}

// Surface exposes the paint surface for tests and embedding programs.
func (a *App) Surface() *paint.Surface {
	return a.surface
}

// Bounds returns the raster bounds derived from the last window size.
func (a *App) Bounds() raster.Bounds {
	return a.bounds
}

// Quitting reports whether a quit was requested.
func (a *App) Quitting() bool {
	return a.quitting
}
