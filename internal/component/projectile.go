// internal/component/projectile.go
package component

import (
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/types"
	"go-dodge-tejecks/internal/utils"
)

// Laser: выстрел игрока, летит строго вверх.
type Laser struct {
	ID     types.EntityID
	X, Y   float64 // X: центр, Y: верхний край
	Speed  float64
	Double bool // выпущен двойным выстрелом (другой цвет)
}

func (l *Laser) Rect() Rect {
	return Rect{X: l.X - config.LaserWidth/2, Y: l.Y, W: config.LaserWidth, H: config.LaserHeight}
}

func (l *Laser) OffScreen() bool {
	return l.Y < -config.LaserHeight
}

// Fire: снаряд босса. Скорость вычисляется один раз при создании,
// самонаведения после выстрела нет.
type Fire struct {
	ID       types.EntityID
	X, Y     float64
	VX, VY   float64
	Lifetime int
	Angle    float64
}

// NewFire создаёт снаряд из (x, y), нацеленный в (tx, ty).
func NewFire(id types.EntityID, x, y, tx, ty, speed float64) *Fire {
	vx, vy := utils.Direction(x, y, tx, ty, speed)
	return &Fire{
		ID:       id,
		X:        x,
		Y:        y,
		VX:       vx,
		VY:       vy,
		Lifetime: config.FireLifetime,
	}
}

func (f *Fire) Rect() Rect {
	return CenteredRect(f.X, f.Y, config.FireSize*2)
}

// Dead: истекло время жизни или снаряд вылетел за границы с запасом.
func (f *Fire) Dead() bool {
	return f.Lifetime <= 0 ||
		f.X < -config.FireBoundsPad || f.X > config.ScreenWidth+config.FireBoundsPad ||
		f.Y < -config.FireBoundsPad || f.Y > config.ScreenHeight+config.FireBoundsPad
}
