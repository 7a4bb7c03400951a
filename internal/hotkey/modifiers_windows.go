//go:build windows

package hotkey

// modifierLabel - подпись Ctrl для Windows
const modifierLabel = "Ctrl"
