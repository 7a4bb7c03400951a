//go:build linux

package listener

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/holoplot/go-evdev"

	"feedscroll/internal/hotkey"
)

var evdevKeys = map[evdev.EvCode]hotkey.Key{
	evdev.KEY_DOWN:      hotkey.KeyDown,
	evdev.KEY_ESC:       hotkey.KeyEscape,
	evdev.KEY_LEFTCTRL:  hotkey.KeyCtrl,
	evdev.KEY_RIGHTCTRL: hotkey.KeyCtrl,
}

// Значения EV_KEY.
const (
	evdevRelease = 0
	evdevPress   = 1
	evdevRepeat  = 2
)

// evdevSource читает /dev/input/event* напрямую. Работает и под Wayland,
// но требует прав на чтение устройств.
type evdevSource struct {
	open func() ([]*evdev.InputDevice, error)

	once    sync.Once
	done    chan struct{}
	devices []*evdev.InputDevice
	wg      sync.WaitGroup
}

func newEvdevSource() (Source, error) {
	return &evdevSource{open: openKeyboards}, nil
}

func (s *evdevSource) Start() (<-chan hotkey.Event, error) {
	devices, err := s.open()
	if err != nil {
		return nil, err
	}
	s.devices = devices
	s.done = make(chan struct{})

	out := make(chan hotkey.Event, 64)
	for _, dev := range devices {
		s.wg.Add(1)
		go s.read(dev, out)
	}
	go func() {
		s.wg.Wait()
		close(out)
	}()
	return out, nil
}

func (s *evdevSource) read(dev *evdev.InputDevice, out chan<- hotkey.Event) {
	defer s.wg.Done()
	for {
		e, err := dev.ReadOne()
		if err != nil {
			// закрыто в Stop или устройство отключено
			return
		}
		ev, ok := translateEvdev(e)
		if !ok {
			continue
		}
		select {
		case out <- ev:
		case <-s.done:
			return
		}
	}
}

func (s *evdevSource) Stop() {
	s.once.Do(func() {
		if s.done != nil {
			close(s.done)
		}
		for _, dev := range s.devices {
			_ = dev.Close()
		}
	})
}

// openKeyboards открывает все устройства, у которых есть клавиши выхода и прокрутки.
func openKeyboards() ([]*evdev.InputDevice, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, startError(KindEvdev, fmt.Errorf("list input devices: %w", err), "hint_input_group")
	}

	var (
		devices []*evdev.InputDevice
		denied  bool
	)
	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				denied = true
			}
			continue
		}
		if !isKeyboard(dev.CapableEvents(evdev.EV_KEY)) {
			_ = dev.Close()
			continue
		}
		devices = append(devices, dev)
	}

	if len(devices) == 0 {
		if denied {
			return nil, startError(KindEvdev, fmt.Errorf("%w: %w", ErrNoKeyboard, fs.ErrPermission), "hint_input_group", "hint_elevated")
		}
		return nil, startError(KindEvdev, ErrNoKeyboard, "hint_input_group")
	}
	return devices, nil
}

func isKeyboard(codes []evdev.EvCode) bool {
	var down, esc bool
	for _, c := range codes {
		switch c {
		case evdev.KEY_DOWN:
			down = true
		case evdev.KEY_ESC:
			esc = true
		}
	}
	return down && esc
}

// translateEvdev считает автоповтор нажатием, как это делает X11.
func translateEvdev(e *evdev.InputEvent) (hotkey.Event, bool) {
	if e == nil || e.Type != evdev.EV_KEY {
		return hotkey.Event{}, false
	}

	var kind hotkey.Kind
	switch e.Value {
	case evdevPress, evdevRepeat:
		kind = hotkey.Press
	case evdevRelease:
		kind = hotkey.Release
	default:
		return hotkey.Event{}, false
	}
	return hotkey.Event{
		Kind:   kind,
		Key:    evdevKeys[e.Code],
		Code:   uint16(e.Code),
		Source: string(KindEvdev),
	}, true
}
