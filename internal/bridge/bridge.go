// Package bridge переводит события клавиатуры в прокрутку колесом мыши.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"feedscroll/internal/hotkey"
	"feedscroll/internal/input"
)

// DefaultPollInterval - период опроса флага работы в Wait.
const DefaultPollInterval = 100 * time.Millisecond

// State - состояние моста.
type State int

const (
	Listening State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "listening"
}

// Reason - причина остановки.
type Reason string

const (
	ReasonCombo     Reason = "combo"
	ReasonInterrupt Reason = "interrupt"
	ReasonQuit      Reason = "quit"
	ReasonSource    Reason = "source"
)

// Stats - счётчики прокрутки.
type Stats struct {
	Scrolls  int
	Failures int
}

// Options настраивает Bridge.
type Options struct {
	Scroller     input.Scroller
	Amount       int
	Bindings     hotkey.Bindings
	Logger       *slog.Logger
	Debug        bool
	PollInterval time.Duration

	// OnStop вызывается один раз при переходе в Stopped.
	OnStop        func(Reason)
	// OnScrollError вызывается при каждой неудачной прокрутке.
	OnScrollError func(error)
	// OnScroll получает счётчики после каждой попытки прокрутки.
	OnScroll      func(Stats)
}

// Bridge владеет набором удерживаемых модификаторов и флагом работы.
type Bridge struct {
	mu       sync.Mutex
	scroller input.Scroller
	amount   int
	bindings hotkey.Bindings
	log      *slog.Logger
	debug    bool
	poll     time.Duration
	onStop   func(Reason)
	onError  func(error)
	onScroll func(Stats)

	// Левый и правый Ctrl отображаются в один Key, поэтому удержание
	// учитывается по сырому коду клавиши.
	modHeld map[uint16]struct{}
	stats   Stats

	running  atomic.Bool
	stopOnce sync.Once
	reason   Reason
}

// New проверяет опции и создаёт мост в состоянии Listening.
func New(opts Options) (*Bridge, error) {
	if opts.Scroller == nil {
		return nil, errors.New("scroller is required")
	}
	if opts.Amount < 0 {
		return nil, fmt.Errorf("scroll amount must be non-negative, got %d", opts.Amount)
	}
	bindings := opts.Bindings
	if bindings.Scroll == hotkey.KeyUnknown {
		bindings = hotkey.DefaultBindings()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	poll := opts.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	b := &Bridge{
		scroller: opts.Scroller,
		amount:   opts.Amount,
		bindings: bindings,
		log:      logger,
		debug:    opts.Debug,
		poll:     poll,
		onStop:   opts.OnStop,
		onError:  opts.OnScrollError,
		onScroll: opts.OnScroll,
		modHeld:  make(map[uint16]struct{}),
	}
	b.running.Store(true)
	return b, nil
}

// HandlePress обрабатывает нажатие клавиши.
func (b *Bridge) HandlePress(ev hotkey.Event) {
	defer b.recoverCallback("press", ev)
	b.trace(ev)

	if !b.Running() || ev.Key == hotkey.KeyUnknown {
		return
	}

	switch ev.Key {
	case b.bindings.Scroll:
		b.log.Info("Обнаружена клавиша прокрутки", "key", hotkey.Label(ev.Key))
		b.scroll()
	case b.bindings.Quit.Modifier:
		b.mu.Lock()
		b.modHeld[ev.Code] = struct{}{}
		b.mu.Unlock()
	case b.bindings.Quit.Key:
		b.mu.Lock()
		held := len(b.modHeld) > 0
		b.mu.Unlock()
		if held {
			b.log.Info("Комбинация выхода", "combo", b.bindings.Quit.String())
			b.Stop(ReasonCombo)
		}
	}
}

// HandleRelease обрабатывает отпускание клавиши.
func (b *Bridge) HandleRelease(ev hotkey.Event) {
	defer b.recoverCallback("release", ev)
	b.trace(ev)

	if ev.Key != hotkey.KeyUnknown && ev.Key == b.bindings.Quit.Modifier {
		b.mu.Lock()
		delete(b.modHeld, ev.Code)
		b.mu.Unlock()
	}
}

func (b *Bridge) scroll() {
	err := b.safeScroll()

	b.mu.Lock()
	if err != nil {
		b.stats.Failures++
	} else {
		b.stats.Scrolls++
	}
	stats := b.stats
	b.mu.Unlock()

	if b.onScroll != nil {
		b.onScroll(stats)
	}

	if err != nil {
		b.log.Error("Ошибка прокрутки", "amount", b.amount, "error", err)
		if b.onError != nil {
			b.onError(err)
		}
		return
	}
	b.log.Info("Прокрутка вниз", "amount", b.amount)
}

func (b *Bridge) safeScroll() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scroll panic: %v", r)
		}
	}()
	return b.scroller.Scroll(b.amount, input.Down)
}

func (b *Bridge) trace(ev hotkey.Event) {
	if !b.debug {
		return
	}
	b.log.Debug("Событие клавиатуры",
		"kind", ev.Kind.String(),
		"key", string(ev.Key),
		"code", ev.Code,
		"char", string(ev.Char),
		"source", ev.Source,
	)
}

func (b *Bridge) recoverCallback(name string, ev hotkey.Event) {
	if r := recover(); r != nil {
		b.log.Error("Сбой обработчика клавиатуры", "callback", name, "key", string(ev.Key), "panic", r)
	}
}

// Stop переводит мост в Stopped. Повторные вызовы ничего не делают.
func (b *Bridge) Stop(reason Reason) {
	b.stopOnce.Do(func() {
		b.mu.Lock()
		b.reason = reason
		b.mu.Unlock()
		b.running.Store(false)
		b.log.Info("Остановка", "reason", string(reason))
		if b.onStop != nil {
			b.onStop(reason)
		}
	})
}

// Running возвращает true, пока мост в состоянии Listening.
func (b *Bridge) Running() bool {
	return b.running.Load()
}

// State возвращает текущее состояние.
func (b *Bridge) State() State {
	if b.Running() {
		return Listening
	}
	return Stopped
}

// Reason возвращает причину остановки или пустую строку.
func (b *Bridge) Reason() Reason {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reason
}

// ModifierHeld сообщает, удерживается ли модификатор комбинации выхода.
func (b *Bridge) ModifierHeld() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.modHeld) > 0
}

// Stats возвращает копию счётчиков.
func (b *Bridge) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stats
}

// Amount возвращает шаг прокрутки.
func (b *Bridge) Amount() int {
	return b.amount
}

// Wait опрашивает флаг работы, пока мост не остановится.
// Отмена контекста считается внешним прерыванием и останавливает мост.
func (b *Bridge) Wait(ctx context.Context) error {
	ticker := time.NewTicker(b.poll)
	defer ticker.Stop()

	for b.Running() {
		select {
		case <-ctx.Done():
			b.Stop(ReasonInterrupt)
			return nil
		case <-ticker.C:
		}
	}
	return nil
}
