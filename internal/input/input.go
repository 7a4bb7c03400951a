// Package input синтезирует прокрутку колесом мыши.
package input

import (
	"errors"
	"fmt"
)

// Direction - направление прокрутки.
type Direction string

const (
	Down Direction = "down"
	Up   Direction = "up"
)

// Backend - имя реализации Scroller.
type Backend string

const (
	BackendRobotgo Backend = "robotgo"
	BackendXdotool Backend = "xdotool"
)

// ErrUnsupportedBackend возвращается для бэкенда, недоступного на платформе.
var ErrUnsupportedBackend = errors.New("scroll backend is not supported on this platform")

// Scroller прокручивает колесо мыши в текущей позиции курсора.
type Scroller interface {
	// Scroll прокручивает на amount шагов в направлении dir.
	Scroll(amount int, dir Direction) error
}

// New создаёт Scroller для указанного бэкенда.
func New(backend Backend) (Scroller, error) {
	switch backend {
	case "", BackendRobotgo:
		return &robotgoScroller{}, nil
	case BackendXdotool:
		return newXdotool()
	default:
		return nil, fmt.Errorf("unknown scroll backend %q", backend)
	}
}
