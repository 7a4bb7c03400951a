package listener

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDisplay означает, что X11 недоступен для глобального перехвата.
	ErrNoDisplay = errors.New("no X11 display available for the keyboard hook")
	// ErrHookUnavailable означает, что нативный перехват не запустился.
	ErrHookUnavailable = errors.New("keyboard hook could not be started")
	// ErrNoKeyboard означает, что не найдено ни одной читаемой клавиатуры.
	ErrNoKeyboard = errors.New("no readable keyboard device found")
	// ErrUnsupported означает, что источник недоступен на этой платформе.
	ErrUnsupported = errors.New("event source is not supported on this platform")
)

// StartError описывает сбой запуска источника и подсказки по исправлению.
type StartError struct {
	Source Kind
	Err    error
	Hints  []string // ключи i18n
}

func (e *StartError) Error() string {
	return fmt.Sprintf("start %s source: %v", e.Source, e.Err)
}

func (e *StartError) Unwrap() error {
	return e.Err
}

// HintKeys возвращает ключи подсказок для ошибки запуска или nil.
func HintKeys(err error) []string {
	var se *StartError
	if errors.As(err, &se) {
		return se.Hints
	}
	return nil
}

func startError(src Kind, err error, hints ...string) error {
	return &StartError{Source: src, Err: err, Hints: hints}
}
