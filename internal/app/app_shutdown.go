package app

import (
	"github.com/andyrewlee/qraw/internal/logging"
	"github.com/andyrewlee/qraw/internal/perf"
)

// Shutdown releases resources that may outlive the Bubble Tea program.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(func() {
		if a.cancel != nil {
			a.cancel()
		}
		if a.configWatcher != nil {
			_ = a.configWatcher.Close()
		}
		if a.zone != nil {
			a.zone.Close()
		}
		for _, s := range perf.Flush() {
			logging.Info("PERF %s count=%d avg=%s p95=%s max=%s", s.Name, s.Count, s.Avg, s.P95, s.Max)
		}
	})
}
