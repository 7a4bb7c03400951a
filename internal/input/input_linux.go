//go:build linux

package input

import (
	"fmt"
	"os/exec"
	"strconv"
)

// Кнопки колеса в X11.
const (
	x11WheelUp   = 4
	x11WheelDown = 5
)

type xdotoolScroller struct {
	run func(name string, args ...string) error
}

func newXdotool() (Scroller, error) {
	if _, err := exec.LookPath("xdotool"); err != nil {
		return nil, fmt.Errorf("xdotool not found: %w", err)
	}
	return &xdotoolScroller{run: runCommand}, nil
}

func (s *xdotoolScroller) Scroll(amount int, dir Direction) error {
	if amount < 0 {
		return fmt.Errorf("negative scroll amount %d", amount)
	}
	if amount == 0 {
		return nil
	}
	return s.run("xdotool", xdotoolArgs(amount, dir)...)
}

func xdotoolArgs(amount int, dir Direction) []string {
	button := x11WheelDown
	if dir == Up {
		button = x11WheelUp
	}
	return []string{"click", "--repeat", strconv.Itoa(amount), strconv.Itoa(button)}
}

func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, out)
	}
	return nil
}
