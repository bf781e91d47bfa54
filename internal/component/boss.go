// internal/component/boss.go
package component

import "go-dodge-tejecks/internal/config"

// Boss: состояние босса. Фаза только растёт, здоровье только убывает.
type Boss struct {
	X, Y      float64 // центр
	TargetX   float64
	Health    int
	MaxHealth int
	Phase     int
	FireRate  int
	SpinSpeed float64
	Angle     float64
	MoveTimer int
	FireTimer int
	HitFlash  int
	Defeated  bool
}

// NewBoss создаёт босса в первой фазе посередине сверху.
func NewBoss() *Boss {
	return &Boss{
		X:         config.ScreenWidth / 2,
		Y:         config.BossStartY,
		TargetX:   config.ScreenWidth / 2,
		Health:    config.BossMaxHealth,
		MaxHealth: config.BossMaxHealth,
		Phase:     1,
		FireRate:  60,
		SpinSpeed: 1,
	}
}

func (b *Boss) Rect() Rect {
	return CenteredRect(b.X, b.Y, config.BossSize)
}
