// internal/component/movement.go
package component

// Rect: осевой прямоугольник (AABB), X/Y: левый верхний угол.
type Rect struct {
	X, Y, W, H float64
}

// CenteredRect строит квадрат со стороной size вокруг точки (cx, cy).
func CenteredRect(cx, cy, size float64) Rect {
	return Rect{X: cx - size/2, Y: cy - size/2, W: size, H: size}
}

// Overlaps: пересечение с ненулевой площадью; касание краями не считается.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Inset уменьшает прямоугольник на d с каждой стороны.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}
