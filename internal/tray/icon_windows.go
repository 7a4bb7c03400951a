//go:build windows

package tray

import (
	"bytes"
	"encoding/binary"
)

// wrapIcon упаковывает PNG в контейнер ICO: на Windows systray принимает только .ico.
func wrapIcon(pngData []byte) []byte {
	var buf bytes.Buffer
	// ICONDIR
	_ = binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, 1})
	// ICONDIRENTRY: 64x64, 32 bpp, данные сразу после заголовка
	entry := struct {
		Width, Height, Colors, Reserved uint8
		Planes, BitCount                uint16
		Size, Offset                    uint32
	}{64, 64, 0, 0, 1, 32, uint32(len(pngData)), 6 + 16}
	_ = binary.Write(&buf, binary.LittleEndian, entry)
	buf.Write(pngData)
	return buf.Bytes()
}
