// internal/system/combat.go
package system

import (
	"fmt"
	"go-dodge-tejecks/internal/component"
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/defs"
	"go-dodge-tejecks/internal/entity"
	"go-dodge-tejecks/internal/event"
	"slices"
)

// CombatResult: чем закончился кадр столкновений.
type CombatResult struct {
	PlayerDied   bool
	BossDefeated bool
}

// CombatSystem разрешает столкновения и начисляет очки. Порядок в кадре:
// лазеры против босса и врагов, бонусы против игрока, опасности против игрока.
type CombatSystem struct {
	ecs     *entity.ECS
	effects *StatusEffectSystem
	score   *ScoreSystem
	visual  *VisualEffectSystem
	boss    *BossSystem
	events  *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, effects *StatusEffectSystem, score *ScoreSystem, visual *VisualEffectSystem, boss *BossSystem, events *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:     ecs,
		effects: effects,
		score:   score,
		visual:  visual,
		boss:    boss,
		events:  events,
	}
}

// Update выполняет все три прохода. Победа над боссом или смерть игрока
// прерывают кадр.
func (s *CombatSystem) Update() CombatResult {
	if s.resolveLasers() {
		return CombatResult{BossDefeated: true}
	}
	s.resolvePickups()
	if s.resolveHazards() {
		return CombatResult{PlayerDied: true}
	}
	return CombatResult{}
}

// resolveLasers: каждый лазер поражает не больше одной цели.
// Возвращает true, если босс повержен.
func (s *CombatSystem) resolveLasers() bool {
	lasers := s.ecs.Lasers
	kept := lasers[:0]
	for i, l := range lasers {
		r := l.Rect()

		if b := s.ecs.Boss; b != nil && !b.Defeated && r.Overlaps(b.Rect()) {
			if s.boss.TakeDamage(config.BossLaserDamage) {
				s.events.Emit(event.SoundBomb)
				s.visual.Shake(30, 30)
				s.visual.Burst(b.X, b.Y, config.Orange, 50)
				s.ecs.Lasers = append(kept, lasers[i+1:]...)
				return true
			}
			s.events.Emit(event.SoundHit)
			s.visual.Shake(3, 3)
			s.visual.Burst(l.X, l.Y, config.Orange, 8)
			continue
		}

		// лазеры пролетают сквозь бонусы
		idx := slices.IndexFunc(s.ecs.Hazards, func(h *component.Hazard) bool {
			return h.IsEnemy() && r.Overlaps(h.Rect())
		})
		if idx < 0 {
			kept = append(kept, l)
			continue
		}
		enemy := s.ecs.Hazards[idx]
		s.ecs.Hazards = slices.Delete(s.ecs.Hazards, idx, idx+1)
		s.score.Kill()
		s.events.Emit(event.SoundExplosion)
		s.events.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: enemy.ID})
		s.visual.Shake(3, 3)
		s.visual.Burst(enemy.X, enemy.Y, config.Orange, 15)
	}
	s.ecs.Lasers = kept
	return false
}

// resolvePickups: сначала снимаем все пойманные бонусы, потом применяем -
// бомба меняет список во время применения.
func (s *CombatSystem) resolvePickups() {
	pr := s.ecs.Player.Rect()
	var picked []*component.Hazard
	s.ecs.Hazards = slices.DeleteFunc(s.ecs.Hazards, func(h *component.Hazard) bool {
		if h.Kind == component.HazardPowerUp && pr.Overlaps(h.Rect()) {
			picked = append(picked, h)
			return true
		}
		return false
	})
	for _, h := range picked {
		s.applyPowerUp(h)
	}
}

func (s *CombatSystem) applyPowerUp(h *component.Hazard) {
	t := h.PowerUp.Type
	s.events.Emit(event.SoundPowerUp)
	switch t {
	case defs.PowerUpCoin:
		s.score.Coin()
		s.visual.Burst(h.X, h.Y, t.Def().Color, 10)
	case defs.PowerUpShield:
		s.effects.AddShield()
		s.visual.Burst(h.X, h.Y, t.Def().Color, 15)
	case defs.PowerUpSpeed, defs.PowerUpSlowMo, defs.PowerUpMagnet, defs.PowerUpRapid, defs.PowerUpDouble:
		s.effects.Apply(t)
		s.visual.Burst(h.X, h.Y, t.Def().Color, 15)
	case defs.PowerUpBomb:
		s.Bomb()
		s.visual.Burst(h.X, h.Y, t.Def().Color, 20)
	case defs.PowerUpAmmo:
		s.effects.AddAmmo(config.AmmoPickup)
		s.visual.Burst(h.X, h.Y, config.White, 10)
	default:
		panic(fmt.Sprintf("system: unhandled power-up %s", t))
	}
}

// Bomb уничтожает всех живых врагов сразу, без столкновений.
// Возвращает число уничтоженных.
func (s *CombatSystem) Bomb() int {
	s.events.Emit(event.SoundBomb)
	s.visual.Shake(20, 15)
	n := 0
	s.ecs.Hazards = slices.DeleteFunc(s.ecs.Hazards, func(h *component.Hazard) bool {
		if !h.IsEnemy() {
			return false
		}
		n++
		s.visual.Explode(h.X, h.Y)
		s.visual.Burst(h.X, h.Y, config.Red, 8)
		s.events.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: h.ID})
		return true
	})
	s.score.Bomb(n)
	return n
}

// resolveHazards: враги и снаряды босса против уменьшенного хитбокса игрока.
// Возвращает true, если удар оказался смертельным.
func (s *CombatSystem) resolveHazards() bool {
	hb := s.ecs.Player.Hitbox()

	for i := 0; i < len(s.ecs.Hazards); i++ {
		h := s.ecs.Hazards[i]
		if !h.IsEnemy() || !hb.Overlaps(h.Rect()) {
			continue
		}
		if !s.absorb(h.X, h.Y) {
			return true
		}
		s.ecs.Hazards = slices.Delete(s.ecs.Hazards, i, i+1)
		i--
	}

	for i := 0; i < len(s.ecs.Fires); i++ {
		f := s.ecs.Fires[i]
		if !hb.Overlaps(f.Rect()) {
			continue
		}
		if !s.absorb(f.X, f.Y) {
			return true
		}
		s.ecs.Fires = slices.Delete(s.ecs.Fires, i, i+1)
		i--
	}
	return false
}

// absorb пытается погасить удар щитом. false: щитов нет, игрок погиб.
func (s *CombatSystem) absorb(x, y float64) bool {
	s.events.Emit(event.SoundHit)
	if s.effects.AbsorbHit() {
		s.visual.Shake(5, 5)
		s.visual.Burst(x, y, config.Cyan, 20)
		s.events.Emit(event.ShieldLost)
		return true
	}
	px, py := s.ecs.Player.Center()
	s.visual.Shake(15, 20)
	s.visual.Burst(px, py, config.Red, 30)
	return false
}
