package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"feedscroll/internal/bridge"
	"feedscroll/internal/config"
	"feedscroll/internal/hotkey"
	"feedscroll/internal/input"
	"feedscroll/internal/listener"
	"feedscroll/internal/logging"
)

type fakeScroller struct {
	mu      sync.Mutex
	amounts []int
}

func (f *fakeScroller) Scroll(amount int, dir input.Direction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if dir != input.Down {
		return errors.New("unexpected direction")
	}
	f.amounts = append(f.amounts, amount)
	return nil
}

func (f *fakeScroller) calls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.amounts...)
}

type fakeSource struct {
	ch       chan hotkey.Event
	startErr error
	once     sync.Once
}

func (f *fakeSource) Start() (<-chan hotkey.Event, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	return f.ch, nil
}

func (f *fakeSource) Stop() {
	f.once.Do(func() { close(f.ch) })
}

func testConfig(t *testing.T, body string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return config.Load(path)
}

func testApp(t *testing.T, src listener.Source, scroller input.Scroller) (*App, *bytes.Buffer) {
	t.Helper()
	return testAppWithLog(t, src, scroller, logging.Options{Output: &bytes.Buffer{}})
}

func testAppWithLog(t *testing.T, src listener.Source, scroller input.Scroller, opts logging.Options) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := testConfig(t, `{"notifications": false, "poll_interval_ms": 5}`)
	logger, err := logging.New(opts)
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	var out bytes.Buffer
	a, err := newApp(cfg, logger, scroller, src, &out)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return a, &out
}

func runWithTimeout(t *testing.T, a *App, ctx context.Context) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	select {
	case err := <-done:
		return err
	case <-time.After(3 * time.Second):
		t.Fatalf("run did not return")
		return nil
	}
}

func TestRunScrollsAndStopsOnCombo(t *testing.T) {
	src := &fakeSource{ch: make(chan hotkey.Event, 8)}
	src.ch <- hotkey.Event{Kind: hotkey.Press, Key: hotkey.KeyDown}
	src.ch <- hotkey.Event{Kind: hotkey.Release, Key: hotkey.KeyDown}
	src.ch <- hotkey.Event{Kind: hotkey.Press, Key: hotkey.KeyCtrl}
	src.ch <- hotkey.Event{Kind: hotkey.Press, Key: hotkey.KeyEscape}

	scroller := &fakeScroller{}
	a, out := testApp(t, src, scroller)

	if err := runWithTimeout(t, a, context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := scroller.calls(); len(got) != 1 || got[0] != config.DefaultScrollAmount {
		t.Fatalf("scroll calls = %v", got)
	}
	if a.bridge.Reason() != bridge.ReasonCombo {
		t.Fatalf("reason = %q", a.bridge.Reason())
	}
	if !strings.Contains(out.String(), "FeedScroll is running") || !strings.Contains(out.String(), "FeedScroll stopped") {
		t.Fatalf("banner missing: %s", out.String())
	}
}

func TestRunStopsOnInterrupt(t *testing.T) {
	src := &fakeSource{ch: make(chan hotkey.Event)}
	a, _ := testApp(t, src, &fakeScroller{})

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	if err := runWithTimeout(t, a, ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	if a.bridge.State() != bridge.Stopped || a.bridge.Reason() != bridge.ReasonInterrupt {
		t.Fatalf("state=%s reason=%q", a.bridge.State(), a.bridge.Reason())
	}
}

func TestRunStopsWhenSourceCloses(t *testing.T) {
	src := &fakeSource{ch: make(chan hotkey.Event)}
	a, _ := testApp(t, src, &fakeScroller{})
	time.AfterFunc(20*time.Millisecond, src.Stop)

	if err := runWithTimeout(t, a, context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if a.bridge.Reason() != bridge.ReasonSource {
		t.Fatalf("reason = %q", a.bridge.Reason())
	}
}

func TestRunReportsStartFailure(t *testing.T) {
	startErr := &listener.StartError{Source: listener.KindHook, Err: listener.ErrNoDisplay, Hints: []string{"hint_display"}}
	src := &fakeSource{ch: make(chan hotkey.Event), startErr: startErr}
	a, out := testApp(t, src, &fakeScroller{})

	err := runWithTimeout(t, a, context.Background())
	if !errors.Is(err, listener.ErrNoDisplay) {
		t.Fatalf("expected ErrNoDisplay, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("banner must not be printed on start failure: %s", out.String())
	}

	report := StartupReport(err)
	if !strings.Contains(report, "no X11 display found") {
		t.Fatalf("report lacks hint: %s", report)
	}
}

func TestStartupReportDefaultHints(t *testing.T) {
	report := StartupReport(errors.New("boom"))
	if !strings.Contains(report, "boom") || !strings.Contains(report, "elevated privileges") {
		t.Fatalf("unexpected report: %s", report)
	}
}

func TestDebugLoggerTracesRawEvents(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
	}{
		{"debug level traces", true},
		{"info level stays quiet", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{ch: make(chan hotkey.Event, 4)}
			src.ch <- hotkey.Event{Kind: hotkey.Press, Code: 0x001E, Char: 'a', Source: "fake"}
			src.ch <- hotkey.Event{Kind: hotkey.Press, Key: hotkey.KeyCtrl}
			src.ch <- hotkey.Event{Kind: hotkey.Press, Key: hotkey.KeyEscape}

			var logs bytes.Buffer
			a, _ := testAppWithLog(t, src, &fakeScroller{}, logging.Options{Output: &logs, Debug: tt.debug})
			if err := runWithTimeout(t, a, context.Background()); err != nil {
				t.Fatalf("run: %v", err)
			}

			traced := strings.Contains(logs.String(), "source=fake")
			if traced != tt.debug {
				t.Fatalf("traced=%v, want %v; logs:\n%s", traced, tt.debug, logs.String())
			}
		})
	}
}

func TestServeUpdatesTrayBeforeReady(t *testing.T) {
	src := &fakeSource{ch: make(chan hotkey.Event, 4)}
	src.ch <- hotkey.Event{Kind: hotkey.Press, Key: hotkey.KeyCtrl}
	src.ch <- hotkey.Event{Kind: hotkey.Press, Key: hotkey.KeyEscape}

	cfg := testConfig(t, `{"notifications": false, "tray": true, "poll_interval_ms": 5}`)
	logger, err := logging.New(logging.Options{Output: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	a, err := newApp(cfg, logger, &fakeScroller{}, src, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if a.tray == nil {
		t.Fatalf("tray should be configured")
	}

	// serve без systray: трей ещё не готов и только запоминает состояние
	if err := a.serve(context.Background()); err != nil {
		t.Fatalf("serve: %v", err)
	}
	if a.bridge.Reason() != bridge.ReasonCombo {
		t.Fatalf("reason = %q", a.bridge.Reason())
	}
}
