// internal/system/movement.go
package system

import (
	"go-dodge-tejecks/internal/component"
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/defs"
	"go-dodge-tejecks/internal/entity"
	"go-dodge-tejecks/internal/utils"
	"math"
)

// MovementSystem обновляет позиции сущностей и убирает те, что ушли с экрана.
type MovementSystem struct {
	ecs     *entity.ECS
	effects *StatusEffectSystem
}

func NewMovementSystem(ecs *entity.ECS, effects *StatusEffectSystem) *MovementSystem {
	return &MovementSystem{ecs: ecs, effects: effects}
}

// MovePlayer сдвигает игрока по намерению ввода, не выпуская за края.
func (s *MovementSystem) MovePlayer(left, right bool) {
	p := s.ecs.Player
	speed := s.effects.PlayerSpeed()
	if left && p.X > 0 {
		p.X -= speed
	}
	if right && p.X < config.ScreenWidth-config.PlayerSize {
		p.X += speed
	}
	p.X = utils.Clamp(p.X, 0, config.ScreenWidth-config.PlayerSize)
	p.Bob += 0.15
}

// Update двигает падающие объекты, лазеры и снаряды босса.
// Возвращает врагов, ушедших за нижний край: это увороты.
func (s *MovementSystem) Update(fallSpeed float64) (dodged []*component.Hazard) {
	speed := s.effects.FallSpeed(fallSpeed)
	magnet := s.effects.Active(defs.PowerUpMagnet)
	px, py := s.ecs.Player.Center()

	kept := s.ecs.Hazards[:0]
	for _, h := range s.ecs.Hazards {
		switch h.Kind {
		case component.HazardEnemy:
			h.Y += speed
			h.Enemy.Angle = utils.NormalizeDegrees(h.Enemy.Angle + h.Enemy.SpinSpeed)
		case component.HazardPowerUp:
			h.Y += speed * config.PowerUpFall
			h.PowerUp.Bob += 0.1
			if magnet && h.PowerUp.Type == defs.PowerUpCoin {
				dx, dy := px-h.X, py-h.Y
				if dist := math.Hypot(dx, dy); dist > 0 && dist < config.MagnetRadius {
					h.X += dx / dist * config.MagnetPull
					h.Y += dy / dist * config.MagnetPull
				}
			}
		}
		if h.OffScreen() {
			if h.IsEnemy() {
				dodged = append(dodged, h)
			}
			continue
		}
		kept = append(kept, h)
	}
	s.ecs.Hazards = kept

	lasers := s.ecs.Lasers[:0]
	for _, l := range s.ecs.Lasers {
		l.Y -= l.Speed
		if !l.OffScreen() {
			lasers = append(lasers, l)
		}
	}
	s.ecs.Lasers = lasers

	fires := s.ecs.Fires[:0]
	for _, f := range s.ecs.Fires {
		f.X += f.VX
		f.Y += f.VY
		f.Angle += 10
		f.Lifetime--
		if !f.Dead() {
			fires = append(fires, f)
		}
	}
	s.ecs.Fires = fires

	return dodged
}
