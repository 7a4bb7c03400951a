//go:build linux

package listener

import "os"

var hookHints = []string{"hint_x11_libs", "hint_elevated"}

// hookPreflight: gohook работает через X11 RECORD и без DISPLAY не стартует.
func hookPreflight() error {
	if os.Getenv("DISPLAY") == "" {
		return startError(KindHook, ErrNoDisplay, "hint_display", "hint_evdev")
	}
	return nil
}
