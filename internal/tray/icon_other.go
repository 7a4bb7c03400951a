//go:build !windows

package tray

func wrapIcon(pngData []byte) []byte {
	return pngData
}
