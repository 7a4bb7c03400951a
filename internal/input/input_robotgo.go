package input

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

type robotgoScroller struct{}

func (s *robotgoScroller) Scroll(amount int, dir Direction) (err error) {
	if amount < 0 {
		return fmt.Errorf("negative scroll amount %d", amount)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("robotgo scroll: %v", r)
		}
	}()
	robotgo.ScrollDir(amount, string(dir))
	return nil
}
