// Package hotkey описывает клавиши, события клавиатуры и зашитые привязки.
package hotkey

import (
	"fmt"

	"golang.design/x/hotkey/mainthread"
)

// Key - символическое имя клавиши, не зависящее от платформы.
type Key string

const (
	KeyUnknown Key = ""
	KeyDown    Key = "down"
	KeyEscape  Key = "esc"
	KeyCtrl    Key = "ctrl"
)

// Kind - тип события клавиатуры.
type Kind int

const (
	Press Kind = iota
	Release
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Release:
		return "release"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event - одно событие клавиатуры от источника.
type Event struct {
	Kind   Kind
	Key    Key    // KeyUnknown для клавиш без привязки
	Code   uint16 // код клавиши в терминах источника
	Char   rune   // 0, если символа нет
	Source string
}

// Combo - модификатор плюс клавиша.
type Combo struct {
	Modifier Key
	Key      Key
}

// String возвращает представление вида "Ctrl+Esc" для текущей платформы.
func (c Combo) String() string {
	return Label(c.Modifier) + "+" + Label(c.Key)
}

// Bindings - зашитая пара привязок.
type Bindings struct {
	Scroll Key
	Quit   Combo
}

// DefaultBindings возвращает привязки: стрелка вниз прокручивает, Ctrl+Esc завершает.
func DefaultBindings() Bindings {
	return Bindings{
		Scroll: KeyDown,
		Quit:   Combo{Modifier: KeyCtrl, Key: KeyEscape},
	}
}

// Label возвращает человекочитаемое имя клавиши.
func Label(k Key) string {
	if k == KeyCtrl {
		return modifierLabel
	}
	if l, ok := keyLabels[k]; ok {
		return l
	}
	if k == KeyUnknown {
		return "?"
	}
	return string(k)
}

var keyLabels = map[Key]string{
	KeyDown:   "↓",
	KeyEscape: "Esc",
}

// RunOnMainThread запускает функцию в главном потоке (требование для macOS).
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}
