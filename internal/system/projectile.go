// internal/system/projectile.go
package system

import (
	"go-dodge-tejecks/internal/component"
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/defs"
	"go-dodge-tejecks/internal/entity"
	"go-dodge-tejecks/internal/event"
)

// ProjectileSystem управляет автоматической стрельбой игрока.
type ProjectileSystem struct {
	ecs             *entity.ECS
	effects         *StatusEffectSystem
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, effects *StatusEffectSystem, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		effects:         effects,
		eventDispatcher: eventDispatcher,
	}
}

// Update стреляет, если есть намерение, перезарядка закончилась и есть
// патроны. Без патронов выстрел просто не происходит.
func (s *ProjectileSystem) Update(fire bool) []*component.Laser {
	fx := s.ecs.Effects
	if !fire || fx.Cooldown > 0 || !s.effects.SpendAmmo() {
		return nil
	}
	s.eventDispatcher.Emit(event.SoundLaser)
	fx.Cooldown = s.effects.ShotCooldown()

	p := s.ecs.Player
	x := p.X + config.PlayerSize/2
	y := p.Y - 10

	var shots []*component.Laser
	if s.effects.Active(defs.PowerUpDouble) {
		shots = append(shots,
			s.newLaser(x-config.DoubleShotSpread, y, true),
			s.newLaser(x+config.DoubleShotSpread, y, true),
		)
		// второй луч стоит ещё патрон, если он есть
		s.effects.SpendAmmo()
	} else {
		shots = append(shots, s.newLaser(x, y, false))
	}
	s.ecs.Lasers = append(s.ecs.Lasers, shots...)
	return shots
}

func (s *ProjectileSystem) newLaser(x, y float64, double bool) *component.Laser {
	return &component.Laser{
		ID:     s.ecs.NewEntity(),
		X:      x,
		Y:      y,
		Speed:  config.LaserSpeed,
		Double: double,
	}
}
