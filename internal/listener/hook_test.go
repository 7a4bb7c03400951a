package listener

import (
	"errors"
	"testing"
	"time"

	hook "github.com/robotn/gohook"

	"feedscroll/internal/hotkey"
)

func TestTranslateHook(t *testing.T) {
	tests := []struct {
		name string
		in   hook.Event
		want hotkey.Event
		ok   bool
	}{
		{
			name: "arrow down pressed",
			in:   hook.Event{Kind: hook.KeyHold, Keycode: vcDown, Keychar: charUndefined},
			want: hotkey.Event{Kind: hotkey.Press, Key: hotkey.KeyDown, Code: vcDown, Source: "hook"},
			ok:   true,
		},
		{
			name: "right ctrl released",
			in:   hook.Event{Kind: hook.KeyUp, Keycode: vcControlR},
			want: hotkey.Event{Kind: hotkey.Release, Key: hotkey.KeyCtrl, Code: vcControlR, Source: "hook"},
			ok:   true,
		},
		{
			name: "unmapped key keeps code",
			in:   hook.Event{Kind: hook.KeyHold, Keycode: 0x001E, Keychar: 'a'},
			want: hotkey.Event{Kind: hotkey.Press, Key: hotkey.KeyUnknown, Code: 0x001E, Char: 'a', Source: "hook"},
			ok:   true,
		},
		{
			name: "typed character dropped",
			in:   hook.Event{Kind: hook.KeyDown, Keycode: 0x001E, Keychar: 'a'},
			ok:   false,
		},
		{
			name: "mouse event dropped",
			in:   hook.Event{Kind: hook.MouseDown},
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateHook(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHookSourceLifecycle(t *testing.T) {
	raw := make(chan hook.Event, 4)
	ended := 0
	src := &hookSource{
		start:     func() chan hook.Event { return raw },
		end:       func() { ended++; close(raw) },
		preflight: func() error { return nil },
	}

	out, err := src.Start()
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	raw <- hook.Event{Kind: hook.KeyDown, Keycode: vcDown}
	raw <- hook.Event{Kind: hook.KeyHold, Keycode: vcDown}

	select {
	case ev := <-out:
		if ev.Kind != hotkey.Press || ev.Key != hotkey.KeyDown {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event delivered")
	}

	src.Stop()
	src.Stop()
	if ended != 1 {
		t.Fatalf("end called %d times", ended)
	}

	select {
	case _, ok := <-out:
		if ok {
			t.Fatalf("expected closed channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("output channel not closed after stop")
	}
}

func TestHookSourcePreflightFailure(t *testing.T) {
	src := &hookSource{
		start:     func() chan hook.Event { t.Fatalf("start must not be called"); return nil },
		end:       func() {},
		preflight: func() error { return startError(KindHook, ErrNoDisplay) },
	}
	if _, err := src.Start(); !errors.Is(err, ErrNoDisplay) {
		t.Fatalf("expected ErrNoDisplay, got %v", err)
	}
}

func TestHookSourceStartPanic(t *testing.T) {
	src := &hookSource{
		start:     func() chan hook.Event { panic("libuiohook missing") },
		end:       func() {},
		preflight: func() error { return nil },
	}
	_, err := src.Start()
	if !errors.Is(err, ErrHookUnavailable) {
		t.Fatalf("expected ErrHookUnavailable, got %v", err)
	}
	if len(HintKeys(err)) == 0 {
		t.Fatalf("expected remediation hints")
	}
}
