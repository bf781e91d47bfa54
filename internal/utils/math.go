// internal/utils/math.go
package utils

import "math"

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeDegrees приводит угол в градусах к диапазону [0, 360).
func NormalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

// Direction возвращает единичный вектор от (x, y) к (tx, ty), умноженный на speed.
// Если точки совпадают, направление: строго вниз.
func Direction(x, y, tx, ty, speed float64) (vx, vy float64) {
	dx := tx - x
	dy := ty - y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, speed
	}
	return dx / dist * speed, dy / dist * speed
}
