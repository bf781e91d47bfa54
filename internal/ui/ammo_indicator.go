// internal/ui/ammo_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// AmmoIndicator: полоса патронов и ряд прямоугольников комбо под ней.
type AmmoIndicator struct {
	X, Y float32
}

const (
	ammoBarWidth    = 118
	ammoBarHeight   = 12
	comboRectWidth  = 9
	comboRectHeight = 8
	comboRectGap    = 3
	borderWidth     = 1
)

var (
	ammoColorFill  = color.RGBA{70, 100, 120, 220}
	ammoColorEmpty = color.RGBA{200, 60, 60, 220}
	comboColorFill = color.RGBA{255, 165, 0, 230}
	borderColor    = color.White
)

func NewAmmoIndicator(x, y float32) *AmmoIndicator {
	return &AmmoIndicator{X: x, Y: y}
}

// Height: занимаемая высота.
func (i *AmmoIndicator) Height() float32 {
	return ammoBarHeight + 6 + comboRectHeight
}

// Draw рисует ammo/maxAmmo и combo из maxCombo ячеек.
func (i *AmmoIndicator) Draw(screen *ebiten.Image, ammo, maxAmmo, combo, maxCombo int) {
	vector.StrokeRect(screen, i.X, i.Y, ammoBarWidth, ammoBarHeight, borderWidth, borderColor, true)

	if fillWidth := FillWidth(ammo, maxAmmo, ammoBarWidth-borderWidth*2); fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, ammoBarHeight-borderWidth*2, ammoColorFill, true)
	} else {
		// пустой магазин подсвечиваем красным
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, ammoBarWidth-borderWidth*2, ammoBarHeight-borderWidth*2, ammoColorEmpty, true)
	}

	rectY := i.Y + ammoBarHeight + 6
	for j := 0; j < maxCombo; j++ {
		rectX := i.X + float32(j)*(comboRectWidth+comboRectGap)
		vector.StrokeRect(screen, rectX, rectY, comboRectWidth, comboRectHeight, borderWidth, borderColor, true)
		if j < combo {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, comboRectWidth-borderWidth*2, comboRectHeight-borderWidth*2, comboColorFill, true)
		}
	}
}

// FillWidth: заполненная часть полосы ширины width.
func FillWidth(current, max int, width float32) float32 {
	if max <= 0 || current <= 0 {
		return 0
	}
	ratio := float32(current) / float32(max)
	if ratio > 1 {
		ratio = 1
	}
	return width * ratio
}
