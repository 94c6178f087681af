package safego

import (
	"sync"
	"testing"
	"time"
)

func TestRunCallsFunction(t *testing.T) {
	called := false
	Run("test", func() { called = true })
	if !called {
		t.Fatal("function was not called")
	}
}

func TestRunRecoversAndReports(t *testing.T) {
	var (
		gotName  string
		gotValue any
	)
	SetPanicHandler(func(name string, recovered any, stack []byte) {
		gotName = name
		gotValue = recovered
		if len(stack) == 0 {
			t.Error("expected a stack trace")
		}
	})
	defer SetPanicHandler(nil)

	Run("config-watcher", func() { panic("boom") })

	if gotName != "config-watcher" {
		t.Fatalf("expected name config-watcher, got %q", gotName)
	}
	if gotValue != "boom" {
		t.Fatalf("expected recovered value boom, got %v", gotValue)
	}
}

func TestRunDefaultsEmptyName(t *testing.T) {
	var gotName string
	SetPanicHandler(func(name string, recovered any, stack []byte) { gotName = name })
	defer SetPanicHandler(nil)

	Run("", func() { panic("x") })
	if gotName != "goroutine" {
		t.Fatalf("expected default name goroutine, got %q", gotName)
	}
}

func TestRunSurvivesPanickingHandler(t *testing.T) {
	SetPanicHandler(func(name string, recovered any, stack []byte) { panic("handler") })
	defer SetPanicHandler(nil)

	Run("test", func() { panic("original") })
}

func TestGoRecoversPanic(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	SetPanicHandler(func(name string, recovered any, stack []byte) { wg.Done() })
	defer SetPanicHandler(nil)

	Go("test-panic", func() { panic("goroutine panic") })

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for panic handler")
	}
}
