package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/term"

	"github.com/andyrewlee/qraw/internal/app"
	"github.com/andyrewlee/qraw/internal/config"
	"github.com/andyrewlee/qraw/internal/keymap"
	"github.com/andyrewlee/qraw/internal/logging"
	"github.com/andyrewlee/qraw/internal/messages"
	"github.com/andyrewlee/qraw/internal/safego"
)

// Version info set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	version  bool
	out      string
	logLevel string
	noLog    bool
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseArgs(args []string) (options, error) {
	var opts options
	fs := newFlagSet("qraw")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")
	fs.BoolVar(&opts.version, "v", false, "print version and exit")
	fs.StringVar(&opts.out, "out", "", "export path (overrides config)")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.BoolVar(&opts.noLog, "no-log", false, "disable the log file")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if _, err := logging.ParseLevel(opts.logLevel); err != nil {
		return opts, err
	}
	return opts, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: qraw [--out PATH] [--log-level LEVEL] [--no-log] [--version]\n\n")
	fmt.Fprintf(w, "Paint with the left mouse button, erase with the right.\n")
	fmt.Fprintf(w, "Keys: %s\n", keymap.New(config.KeyMapConfig{}).HelpLine())
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(os.Stdout)
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		printUsage(os.Stderr)
		return 2
	}
	if opts.version {
		fmt.Printf("qraw %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}

	if !shouldLaunchTUI(term.IsTerminal(os.Stdin.Fd()), term.IsTerminal(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "qraw needs an interactive terminal")
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}
	if err := cfg.Paths.EnsureDirectories(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", cfg.Paths.Home, err)
		return 1
	}

	if !opts.noLog {
		level, _ := logging.ParseLevel(opts.logLevel)
		if err := logging.Initialize(cfg.Paths.LogDir, level); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
		}
	}
	defer logging.Close()

	logging.Info("Starting qraw %s", version)

	a := app.New(cfg, app.Options{
		ExportPath:  opts.out,
		WatchConfig: true,
	})
	filter := newMouseEventFilter(cfg.FrameInterval)
	p := tea.NewProgram(
		a,
		tea.WithFilter(filter.filter),
		tea.WithFPS(cfg.FPS()),
	)
	safego.SetPanicHandler(func(name string, recovered any, _ []byte) {
		p.Send(messages.Error{Err: fmt.Errorf("panic: %v", recovered), Context: name, Logged: true})
	})

	_, err = p.Run()
	a.Shutdown()
	if err != nil {
		logging.Error("App exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		return 1
	}
	logging.Info("qraw shutdown complete")
	return 0
}

func shouldLaunchTUI(stdinIsTTY, stdoutIsTTY bool) bool {
	return stdinIsTTY && stdoutIsTTY
}

// mouseEventFilter drops drag samples that repeat the last cell and button
// within one frame. Each dropped sample would only re-apply an idempotent
// paint or erase.
type mouseEventFilter struct {
	interval time.Duration
	now      func() time.Time

	last       time.Time
	lastX      int
	lastY      int
	lastButton tea.MouseButton
}

func newMouseEventFilter(interval time.Duration) *mouseEventFilter {
	if interval <= 0 {
		interval = config.DefaultFrameInterval
	}
	return &mouseEventFilter{interval: interval, now: time.Now}
}

func (f *mouseEventFilter) filter(_ tea.Model, msg tea.Msg) tea.Msg {
	var motion tea.MouseMotionMsg
	switch m := msg.(type) {
	case tea.MouseMotionMsg:
		motion = m
	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseReleaseMsg:
		// The canvas may have changed; let the next sample through.
		f.last = time.Time{}
		return msg
	default:
		return msg
	}
	now := f.now()
	if motion.X != f.lastX || motion.Y != f.lastY || motion.Button != f.lastButton {
		f.lastX, f.lastY, f.lastButton = motion.X, motion.Y, motion.Button
		f.last = now
		return msg
	}
	if now.Sub(f.last) < f.interval {
		return nil
	}
	f.last = now
	return msg
}
