// Package notify предоставляет системные уведомления.
package notify

import (
	"sync"

	"github.com/gen2brain/beeep"

	"feedscroll/internal/i18n"
)

const appName = "FeedScroll"

// Notifier отправляет системные уведомления.
type Notifier struct {
	mu           sync.Mutex
	enabled      bool
	failureShown bool
	send         func(title, message, icon string) error
}

// New создаёт новый Notifier.
func New(enabled bool) *Notifier {
	return &Notifier{
		enabled: enabled,
		send: func(title, message, icon string) error {
			return beeep.Notify(title, message, icon)
		},
	}
}

// SetEnabled включает/выключает уведомления.
func (n *Notifier) SetEnabled(enabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.enabled = enabled
}

// Started сообщает о начале прослушивания.
func (n *Notifier) Started(scrollKey, quitCombo string) {
	n.notify("", i18n.Tf("notify_started", scrollKey, quitCombo))
}

// Stopped сообщает об остановке.
func (n *Notifier) Stopped() {
	n.notify("", i18n.T("notify_stopped"))
}

// ScrollFailed показывает только первую ошибку прокрутки за сеанс,
// чтобы зажатая клавиша не засыпала рабочий стол уведомлениями.
func (n *Notifier) ScrollFailed(err error) {
	n.mu.Lock()
	if n.failureShown {
		n.mu.Unlock()
		return
	}
	n.failureShown = true
	n.mu.Unlock()

	n.notify(i18n.T("notify_scroll_failed"), err.Error())
}

// Error показывает уведомление об ошибке.
func (n *Notifier) Error(msg string) {
	if len(msg) > 100 {
		msg = msg[:100] + "..."
	}
	n.notify(i18n.T("notify_error"), msg)
}

func (n *Notifier) notify(title, message string) {
	n.mu.Lock()
	enabled := n.enabled
	n.mu.Unlock()
	if !enabled {
		return
	}
	// Игнорируем ошибки уведомлений - они не критичны
	if title != "" {
		_ = n.send(appName+": "+title, message, "")
	} else {
		_ = n.send(appName, message, "")
	}
}
