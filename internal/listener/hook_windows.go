//go:build windows

package listener

var hookHints = []string{"hint_elevated"}

func hookPreflight() error {
	return nil
}
