// Package tray предоставляет системный трей с меню.
package tray

import (
	"image/color"
	"sync"

	"github.com/getlantern/systray"

	"feedscroll/internal/i18n"
)

// State представляет состояние моста для отображения в трее.
type State int

const (
	StateListening State = iota
	StateStopped
)

// Callbacks содержит обработчики событий меню.
type Callbacks struct {
	OnNotificationsToggle func() bool
	OnQuit                func()
}

// Tray управляет иконкой в системном трее.
type Tray struct {
	callbacks     Callbacks
	notifications bool

	mu       sync.Mutex
	ready    bool
	state    State
	status   *systray.MenuItem
	scrolls  *systray.MenuItem
	notifyOn *systray.MenuItem
	quitBtn  *systray.MenuItem
}

// New создаёт новый Tray.
func New(callbacks Callbacks, notifications bool) *Tray {
	return &Tray{
		callbacks:     callbacks,
		notifications: notifications,
	}
}

// Run запускает системный трей. Блокирующая функция.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetTitle(i18n.T("app_name"))
	systray.SetTooltip(i18n.T("app_tooltip"))

	t.mu.Lock()
	defer t.mu.Unlock()

	// Статус
	t.status = systray.AddMenuItem(statusTitle(t.state), "")
	t.status.Disable()
	systray.SetIcon(icon(stateColor(t.state)))
	t.scrolls = systray.AddMenuItem(i18n.Tf("tray_scrolls", 0), "")
	t.scrolls.Disable()

	systray.AddSeparator()

	// Уведомления
	t.notifyOn = systray.AddMenuItemCheckbox(i18n.T("tray_notifications"), i18n.T("tray_notifications_hint"), t.notifications)

	systray.AddSeparator()

	// Выход
	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))
	t.ready = true

	go t.handleMenuEvents(t.notifyOn, t.quitBtn)
}

func (t *Tray) handleMenuEvents(notifyOn, quitBtn *systray.MenuItem) {
	for {
		select {
		case <-notifyOn.ClickedCh:
			if t.callbacks.OnNotificationsToggle != nil {
				if t.callbacks.OnNotificationsToggle() {
					notifyOn.Check()
				} else {
					notifyOn.Uncheck()
				}
			}

		// Выход - внешняя остановка моста; сам трей закрывает владелец через Quit
		case <-quitBtn.ClickedCh:
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			}
			return
		}
	}
}

// SetState обновляет иконку и строку статуса. До готовности трея
// состояние запоминается и применяется в onReady.
func (t *Tray) SetState(state State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = state
	if !t.ready {
		return
	}
	systray.SetIcon(icon(stateColor(state)))
	t.status.SetTitle(statusTitle(state))
}

func stateColor(state State) color.RGBA {
	if state == StateStopped {
		return colorStopped
	}
	return colorListening
}

func statusTitle(state State) string {
	if state == StateStopped {
		return i18n.T("notify_stopped")
	}
	return i18n.T("tray_ready")
}

// SetScrolls обновляет счётчик прокруток в меню.
func (t *Tray) SetScrolls(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.ready {
		return
	}
	t.scrolls.SetTitle(i18n.Tf("tray_scrolls", n))
}

func (t *Tray) onExit() {
	t.mu.Lock()
	t.ready = false
	t.mu.Unlock()
}

// Quit закрывает системный трей.
func (t *Tray) Quit() {
	systray.Quit()
}
