// internal/component/enemy.go
package component

import (
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/defs"
	"go-dodge-tejecks/internal/types"
)

// HazardKind: дискриминант падающего объекта.
type HazardKind int

const (
	HazardEnemy HazardKind = iota
	HazardPowerUp
)

// EnemyData: поля, значимые только для врага.
type EnemyData struct {
	Size      float64
	Angle     float64 // градусы, только для отрисовки
	SpinSpeed float64
	Sprite    int
}

// PowerUpData: поля, значимые только для бонуса.
type PowerUpData struct {
	Type defs.PowerUpType
	Bob  float64 // фаза покачивания, только для отрисовки
}

// Hazard: падающий объект: враг или бонус. Враги и бонусы делят один список,
// а различаются только по Kind.
type Hazard struct {
	ID      types.EntityID
	Kind    HazardKind
	X, Y    float64 // центр
	Enemy   EnemyData
	PowerUp PowerUpData
}

// NewEnemy создаёт врага над верхним краем экрана.
func NewEnemy(id types.EntityID, x, size, spin float64, sprite int) *Hazard {
	return &Hazard{
		ID:   id,
		Kind: HazardEnemy,
		X:    x,
		Y:    config.EnemySpawnY,
		Enemy: EnemyData{
			Size:      size,
			SpinSpeed: spin,
			Sprite:    sprite,
		},
	}
}

// NewPowerUp создаёт бонус в точке (x, y).
func NewPowerUp(id types.EntityID, x, y float64, t defs.PowerUpType, bob float64) *Hazard {
	return &Hazard{
		ID:      id,
		Kind:    HazardPowerUp,
		X:       x,
		Y:       y,
		PowerUp: PowerUpData{Type: t, Bob: bob},
	}
}

// IsEnemy: удобная проверка дискриминанта.
func (h *Hazard) IsEnemy() bool { return h.Kind == HazardEnemy }

// Size: видимый размер (сторона квадрата хитбокса).
func (h *Hazard) Size() float64 {
	if h.Kind == HazardEnemy {
		return h.Enemy.Size
	}
	return config.PowerUpSize * 2
}

// Rect: хитбокс объекта.
func (h *Hazard) Rect() Rect {
	return CenteredRect(h.X, h.Y, h.Size())
}

// OffScreen: объект ушёл за нижний край.
func (h *Hazard) OffScreen() bool {
	if h.Kind == HazardEnemy {
		return h.Y > config.ScreenHeight+h.Enemy.Size
	}
	return h.Y > config.ScreenHeight
}
