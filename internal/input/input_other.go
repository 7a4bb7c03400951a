//go:build !linux

package input

func newXdotool() (Scroller, error) {
	return nil, ErrUnsupportedBackend
}
