//go:build darwin

package listener

var hookHints = []string{"hint_accessibility"}

func hookPreflight() error {
	return nil
}
