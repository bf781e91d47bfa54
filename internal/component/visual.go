// internal/component/visual.go
package component

import "image/color"

// Particle: косметическая частица, на игру не влияет.
type Particle struct {
	X, Y        float64
	VX, VY      float64
	Color       color.RGBA
	Size        float64
	Lifetime    int
	MaxLifetime int
}

// Explosion: расходящееся кольцо от бомбы.
type Explosion struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Growth    float64
}

// Active: кольцо ещё не достигло максимального радиуса.
func (e *Explosion) Active() bool {
	return e.Radius < e.MaxRadius
}

// ScreenShake: тряска экрана: длительность в кадрах и затухающая амплитуда.
type ScreenShake struct {
	Frames    int
	Intensity float64
	OffsetX   float64
	OffsetY   float64
}
