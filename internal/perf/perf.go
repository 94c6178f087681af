// Package perf collects opt-in timing samples for the hot paths (update,
// view, export) and writes a summary to the log at a fixed interval.
// Set QRAW_PERF=1 to enable; QRAW_PERF_INTERVAL_MS changes the interval.
package perf

import (
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andyrewlee/qraw/internal/logging"
)

const (
	sampleWindow      = 128
	defaultIntervalMs = 5000
)

type stat struct {
	count   int64
	total   time.Duration
	max     time.Duration
	samples []time.Duration
	idx     int
	full    bool
}

// Summary is one name's aggregated samples since the last flush.
type Summary struct {
	Name  string
	Count int64
	Avg   time.Duration
	Max   time.Duration
	P95   time.Duration
}

var (
	enabled     atomic.Bool
	logInterval atomic.Int64
	lastLog     atomic.Int64

	mu    sync.Mutex
	stats = map[string]*stat{}
)

func init() {
	enabled.Store(envEnabled())
	logInterval.Store(int64(envInterval()))
}

// Enabled reports whether samples are being collected.
func Enabled() bool {
	return enabled.Load()
}

// Time starts a sample; call the returned func to record it.
//
//	defer perf.Time("view")()
func Time(name string) func() {
	if !enabled.Load() {
		return func() {}
	}
	start := time.Now()
	return func() { Record(name, time.Since(start)) }
}

// Record adds one duration sample under name.
func Record(name string, d time.Duration) {
	if !enabled.Load() {
		return
	}
	mu.Lock()
	s, ok := stats[name]
	if !ok {
		s = &stat{samples: make([]time.Duration, sampleWindow)}
		stats[name] = s
	}
	s.count++
	s.total += d
	if d > s.max {
		s.max = d
	}
	s.samples[s.idx] = d
	s.idx++
	if s.idx == len(s.samples) {
		s.idx = 0
		s.full = true
	}
	mu.Unlock()

	maybeLog()
}

// Flush returns the current summaries sorted by name and resets them.
func Flush() []Summary {
	mu.Lock()
	defer mu.Unlock()

	out := make([]Summary, 0, len(stats))
	for name, s := range stats {
		if s.count == 0 {
			continue
		}
		n := s.idx
		if s.full {
			n = len(s.samples)
		}
		out = append(out, Summary{
			Name:  name,
			Count: s.count,
			Avg:   time.Duration(int64(s.total) / s.count),
			Max:   s.max,
			P95:   p95(s.samples[:n]),
		})
	}
	stats = map[string]*stat{}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func maybeLog() {
	interval := time.Duration(logInterval.Load())
	if interval <= 0 {
		return
	}
	now := time.Now().UnixNano()
	last := lastLog.Load()
	if last != 0 && time.Duration(now-last) < interval {
		return
	}
	if !lastLog.CompareAndSwap(last, now) {
		return
	}
	for _, s := range Flush() {
		logging.Info("PERF %s count=%d avg=%s p95=%s max=%s", s.Name, s.Count, s.Avg, s.P95, s.Max)
	}
}

func p95(samples []time.Duration) time.Duration {
	n := len(samples)
	if n == 0 {
		return 0
	}
	window := append([]time.Duration(nil), samples...)
	sort.Slice(window, func(i, j int) bool { return window[i] < window[j] })
	pos := int(math.Ceil(0.95*float64(n))) - 1
	if pos < 0 {
		pos = 0
	}
	return window[pos]
}

func envEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("QRAW_PERF"))) {
	case "", "0", "false", "no":
		return false
	default:
		return true
	}
}

func envInterval() time.Duration {
	ms := defaultIntervalMs
	if raw := strings.TrimSpace(os.Getenv("QRAW_PERF_INTERVAL_MS")); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			ms = v
		}
	}
	return time.Duration(ms) * time.Millisecond
}
