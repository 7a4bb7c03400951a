//go:build !linux

package listener

func newEvdevSource() (Source, error) {
	return nil, startError(KindEvdev, ErrUnsupported, "hint_source_hook")
}
