// Package safego runs background work without letting a panic take down the
// terminal session. A crash while the TUI owns the terminal would leave it in
// raw mode, so background goroutines go through Go instead of a bare go
// statement.
package safego

import (
	"runtime/debug"
	"sync"

	"github.com/andyrewlee/qraw/internal/logging"
)

// PanicHandler receives panic details from recovered goroutines.
type PanicHandler func(name string, recovered any, stack []byte)

var (
	handlerMu sync.RWMutex
	handler   PanicHandler
)

// SetPanicHandler registers a process-wide handler for recovered panics.
// Pass nil to remove it.
func SetPanicHandler(h PanicHandler) {
	handlerMu.Lock()
	handler = h
	handlerMu.Unlock()
}

// Run calls fn and logs any panic instead of propagating it.
// Runtime-fatal errors such as concurrent map writes are not recoverable.
func Run(name string, fn func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if name == "" {
			name = "goroutine"
		}
		stack := debug.Stack()
		logging.Error("panic in %s: %v\n%s", name, r, stack)

		handlerMu.RLock()
		h := handler
		handlerMu.RUnlock()
		if h == nil {
			return
		}
		defer func() { _ = recover() }()
		h(name, r, stack)
	}()
	fn()
}

// Go runs fn on a new goroutine under Run.
func Go(name string, fn func()) {
	go Run(name, fn)
}
