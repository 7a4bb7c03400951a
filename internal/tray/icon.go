package tray

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

var (
	colorListening = color.RGBA{60, 160, 90, 255}   // Зелёный
	colorStopped   = color.RGBA{128, 128, 128, 255} // Серый
)

// renderPNG рисует иконку: круг со стрелкой вниз.
func renderPNG(c color.RGBA) ([]byte, error) {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	centerX, centerY := size/2, size/2
	radius := 28.0

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x - centerX)
			dy := float64(y - centerY)
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, c)
			}
		}
	}

	// Стрелка: ствол и треугольник
	white := color.RGBA{255, 255, 255, 255}
	for y := 14; y < 36; y++ {
		for x := centerX - 4; x <= centerX+4; x++ {
			img.Set(x, y, white)
		}
	}
	for y := 36; y < 52; y++ {
		half := 52 - y
		for x := centerX - half; x <= centerX+half; x++ {
			img.Set(x, y, white)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// icon возвращает байты иконки в формате, который ожидает systray на платформе.
func icon(c color.RGBA) []byte {
	data, err := renderPNG(c)
	if err != nil {
		return nil
	}
	return wrapIcon(data)
}
