// Package listener доставляет глобальные события клавиатуры обработчику.
package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"feedscroll/internal/hotkey"
)

// Kind - имя источника событий.
type Kind string

const (
	KindHook  Kind = "hook"
	KindEvdev Kind = "evdev"
)

// Source выдаёт события клавиатуры до вызова Stop.
type Source interface {
	// Start запускает перехват. Канал закрывается после Stop.
	Start() (<-chan hotkey.Event, error)
	// Stop прекращает перехват. Повторный вызов безопасен.
	Stop()
}

// Handler получает нажатия и отпускания.
type Handler interface {
	HandlePress(hotkey.Event)
	HandleRelease(hotkey.Event)
}

// New создаёт источник указанного типа.
func New(kind Kind) (Source, error) {
	switch kind {
	case "", KindHook:
		return newHookSource(), nil
	case KindEvdev:
		return newEvdevSource()
	default:
		return nil, fmt.Errorf("unknown event source %q", kind)
	}
}

// Listener запускает Source и раздаёт события обработчику.
type Listener struct {
	src Source
	log *slog.Logger

	mu      sync.Mutex
	started bool
	events  <-chan hotkey.Event
}

// NewListener оборачивает источник.
func NewListener(src Source, logger *slog.Logger) *Listener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Listener{src: src, log: logger}
}

// Start запускает перехват. Ошибка здесь - ошибка запуска программы.
func (l *Listener) Start() error {
	events, err := l.src.Start()
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.started = true
	l.events = events
	l.mu.Unlock()
	return nil
}

// Serve блокируется, пока источник не закроет канал или не отменится ctx.
func (l *Listener) Serve(ctx context.Context, h Handler) error {
	l.mu.Lock()
	events := l.events
	l.mu.Unlock()
	if events == nil {
		return errors.New("listener is not started")
	}
	defer l.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			l.dispatch(h, ev)
		}
	}
}

// Run - Start и Serve подряд.
func (l *Listener) Run(ctx context.Context, h Handler) error {
	if err := l.Start(); err != nil {
		return err
	}
	return l.Serve(ctx, h)
}

// Stop останавливает источник, если он был запущен.
func (l *Listener) Stop() {
	l.mu.Lock()
	started := l.started
	l.started = false
	l.mu.Unlock()
	if started {
		l.src.Stop()
	}
}

// dispatch изолирует каждый вызов обработчика: сбой нажатия не мешает
// доставке следующего отпускания.
func (l *Listener) dispatch(h Handler, ev hotkey.Event) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("Сбой обработки события", "kind", ev.Kind.String(), "code", ev.Code, "panic", r)
		}
	}()

	switch ev.Kind {
	case hotkey.Press:
		h.HandlePress(ev)
	case hotkey.Release:
		h.HandleRelease(ev)
	}
}
