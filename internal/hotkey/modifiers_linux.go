//go:build linux

package hotkey

// modifierLabel - подпись Ctrl в X11/Wayland окружениях
const modifierLabel = "Ctrl"
