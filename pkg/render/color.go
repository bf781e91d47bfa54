// pkg/render/color.go
package render

import (
	"image/color"
	"math"
)

// FieldColors: палитра игрового поля.
type FieldColors struct {
	Background     color.RGBA // верх градиента
	BossBackground color.RGBA
	Text           color.RGBA
	TextLight      color.RGBA // на тёмном фоне босса
	TextOnPickup   color.RGBA
	Stroke         color.RGBA
	HitFlash       color.RGBA
	HitFlashInner  color.RGBA
	BarBack        color.RGBA
	BarHigh        color.RGBA
	BarMid         color.RGBA
	BarLow         color.RGBA
	BossTitle      color.RGBA
	BossPhase      color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor умножает RGB на k, альфа не меняется.
func ScaleColor(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: clampByte(float64(c.R) * k),
		G: clampByte(float64(c.G) * k),
		B: clampByte(float64(c.B) * k),
		A: c.A,
	}
}

// WithAlpha возвращает цвет с прозрачностью a (0..1) в premultiplied-виде,
// как этого ждёт color.RGBA.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	a = math.Max(0, math.Min(1, a))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// BarColor: цвет полосы здоровья по доле: зелёный, жёлтый, красный.
func (fc FieldColors) BarColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.5:
		return fc.BarHigh
	case ratio > 0.25:
		return fc.BarMid
	default:
		return fc.BarLow
	}
}

// gradientRow: цвет полосы фона на высоте y: к низу экрана темнеет на 40.
func gradientRow(top color.RGBA, y, height int) color.RGBA {
	ratio := float64(y) / float64(height)
	return color.RGBA{
		R: clampByte(float64(top.R) - 40*ratio),
		G: clampByte(float64(top.G) - 40*ratio),
		B: top.B,
		A: 255,
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
