package listener

import (
	"fmt"
	"sync"

	hook "github.com/robotn/gohook"

	"feedscroll/internal/hotkey"
)

// Коды виртуальных клавиш libuiohook (одинаковы на всех платформах).
const (
	vcEscape   = 0x0001
	vcControlL = 0x001D
	vcControlR = 0x0E1D
	vcDown     = 0xE050

	charUndefined = 0xFFFF
)

var hookKeys = map[uint16]hotkey.Key{
	vcEscape:   hotkey.KeyEscape,
	vcControlL: hotkey.KeyCtrl,
	vcControlR: hotkey.KeyCtrl,
	vcDown:     hotkey.KeyDown,
}

// hookSource перехватывает клавиатуру через gohook.
type hookSource struct {
	start     func() chan hook.Event
	end       func()
	preflight func() error

	once sync.Once
	done chan struct{}
}

func newHookSource() *hookSource {
	return &hookSource{
		start:     hook.Start,
		end:       hook.End,
		preflight: hookPreflight,
	}
}

func (s *hookSource) Start() (<-chan hotkey.Event, error) {
	if err := s.preflight(); err != nil {
		return nil, err
	}

	raw, err := s.safeStart()
	if err != nil {
		return nil, startError(KindHook, err, hookHints...)
	}

	s.done = make(chan struct{})
	out := make(chan hotkey.Event, 64)
	go func() {
		defer close(out)
		for e := range raw {
			ev, ok := translateHook(e)
			if !ok {
				continue
			}
			select {
			case out <- ev:
			case <-s.done:
				return
			}
		}
	}()
	return out, nil
}

func (s *hookSource) safeStart() (raw chan hook.Event, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHookUnavailable, r)
		}
	}()
	raw = s.start()
	if raw == nil {
		return nil, ErrHookUnavailable
	}
	return raw, nil
}

func (s *hookSource) Stop() {
	s.once.Do(func() {
		if s.done != nil {
			close(s.done)
		}
		s.end()
	})
}

// translateHook оставляет только нажатия (KeyHold) и отпускания (KeyUp).
// KeyDown в gohook - это событие ввода символа, оно дублирует нажатие.
func translateHook(e hook.Event) (hotkey.Event, bool) {
	var kind hotkey.Kind
	switch e.Kind {
	case hook.KeyHold:
		kind = hotkey.Press
	case hook.KeyUp:
		kind = hotkey.Release
	default:
		return hotkey.Event{}, false
	}

	char := e.Keychar
	if char == charUndefined {
		char = 0
	}
	return hotkey.Event{
		Kind:   kind,
		Key:    hookKeys[e.Keycode],
		Code:   e.Keycode,
		Char:   char,
		Source: string(KindHook),
	}, true
}
