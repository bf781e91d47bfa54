// internal/ui/shield_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	ShieldCircleRadius  = 7.0
	ShieldCircleSpacing = 4.0
)

var (
	shieldColor      = color.RGBA{0, 255, 255, 255}
	shieldLastColor  = color.RGBA{255, 80, 80, 255} // последний щит
	shieldEmptyColor = color.RGBA{0, 0, 0, 120}
)

// ShieldIndicator рисует щиты рядом кружков.
type ShieldIndicator struct {
	X, Y float32
}

func NewShieldIndicator(x, y float32) *ShieldIndicator {
	return &ShieldIndicator{X: x, Y: y}
}

// Draw рисует shields заполненных кружков из maxShields.
func (i *ShieldIndicator) Draw(screen *ebiten.Image, shields, maxShields int) {
	for j := 0; j < maxShields; j++ {
		cx, cy := i.CircleCenter(j)
		vector.DrawFilledCircle(screen, cx, cy, ShieldCircleRadius, ShieldColor(j, shields), true)
		vector.StrokeCircle(screen, cx, cy, ShieldCircleRadius, 1, borderColor, true)
	}
}

// CircleCenter: центр j-го кружка.
func (i *ShieldIndicator) CircleCenter(j int) (float32, float32) {
	return i.X + ShieldCircleRadius + float32(j)*(ShieldCircleRadius*2+ShieldCircleSpacing), i.Y + ShieldCircleRadius
}

// ShieldColor возвращает цвет j-го кружка: пустой, обычный или красный, если щит остался один.
func ShieldColor(j, shields int) color.RGBA {
	switch {
	case j >= shields:
		return shieldEmptyColor
	case shields == 1:
		return shieldLastColor
	default:
		return shieldColor
	}
}
