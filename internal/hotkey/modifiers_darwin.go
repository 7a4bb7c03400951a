//go:build darwin

package hotkey

// modifierLabel - подпись Ctrl для macOS (не Cmd)
const modifierLabel = "Control"
