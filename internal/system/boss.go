// internal/system/boss.go
package system

import (
	"go-dodge-tejecks/internal/component"
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/entity"
	"go-dodge-tejecks/internal/event"
	"go-dodge-tejecks/internal/utils"
	"math"
)

// bossPhase: параметры фазы.
type bossPhase struct {
	fireRate  int
	spinSpeed float64
}

var bossPhases = map[int]bossPhase{
	1: {fireRate: 60, spinSpeed: 1},
	2: {fireRate: 40, spinSpeed: 2},
	3: {fireRate: 20, spinSpeed: 3},
}

// PhaseForHealth: >=60: 1, 30..59: 2, <30: 3.
func PhaseForHealth(health int) int {
	switch {
	case health < config.BossPhase3Health:
		return 3
	case health < config.BossPhase2Health:
		return 2
	default:
		return 1
	}
}

// BossSystem: конечный автомат босса: фазы, блуждание, стрельба.
type BossSystem struct {
	ecs    *entity.ECS
	rng    *utils.PRNGService
	events *event.Dispatcher
}

func NewBossSystem(ecs *entity.ECS, rng *utils.PRNGService, events *event.Dispatcher) *BossSystem {
	return &BossSystem{ecs: ecs, rng: rng, events: events}
}

// Update: вращение, движение к цели, смена цели каждые 90 кадров,
// таймер выстрела и затухание вспышки.
func (s *BossSystem) Update() {
	b := s.ecs.Boss
	if b == nil || b.Defeated {
		return
	}
	b.Angle = utils.NormalizeDegrees(b.Angle + b.SpinSpeed)

	if math.Abs(b.X-b.TargetX) > config.BossArrivalRadius {
		if b.X < b.TargetX {
			b.X += config.BossStep
		} else {
			b.X -= config.BossStep
		}
	}

	b.MoveTimer++
	if b.MoveTimer > config.BossRetargetEvery {
		b.MoveTimer = 0
		b.TargetX = float64(s.rng.IntRange(config.BossTargetPad, config.ScreenWidth-config.BossTargetPad))
	}

	s.updatePhase()
	b.FireTimer++
	if b.HitFlash > 0 {
		b.HitFlash--
	}
}

// ShouldFire возвращает true и сбрасывает таймер, когда он дошёл до
// порога текущей фазы.
func (s *BossSystem) ShouldFire() bool {
	b := s.ecs.Boss
	if b == nil || b.Defeated {
		return false
	}
	if b.FireTimer >= b.FireRate {
		b.FireTimer = 0
		return true
	}
	return false
}

// Fire создаёт залп по шаблону фазы, нацеленный в точку (tx, ty).
// Фаза 1: одиночный, фаза 2: два выстрела с разносом, фаза 3: веер из трёх.
func (s *BossSystem) Fire(tx, ty float64) []*component.Fire {
	b := s.ecs.Boss
	muzzleY := b.Y + config.BossMuzzleOffset
	var shots []*component.Fire
	switch b.Phase {
	case 1:
		shots = append(shots, component.NewFire(s.ecs.NewEntity(), b.X, muzzleY, tx, ty, config.FireSpeed))
	case 2:
		for _, dx := range []float64{-config.BossSpreadOffset, config.BossSpreadOffset} {
			shots = append(shots, component.NewFire(s.ecs.NewEntity(), b.X+dx, muzzleY, tx, ty, config.FireSpeed))
		}
	default:
		for _, off := range []float64{-config.BossFanStep, 0, config.BossFanStep} {
			shots = append(shots, component.NewFire(s.ecs.NewEntity(), b.X, muzzleY, tx+off, ty, config.FireFanSpeed))
		}
	}
	s.ecs.Fires = append(s.ecs.Fires, shots...)
	s.events.Emit(event.SoundExplosion) // один звук на залп
	return shots
}

// TakeDamage отнимает здоровье и сообщает, побеждён ли босс.
func (s *BossSystem) TakeDamage(amount int) bool {
	b := s.ecs.Boss
	b.Health = max(0, b.Health-amount)
	b.HitFlash = config.BossHitFlash
	s.updatePhase()
	if b.Health <= 0 {
		b.Defeated = true
	}
	return b.Defeated
}

// Фаза только растёт: здоровье не восстанавливается.
func (s *BossSystem) updatePhase() {
	b := s.ecs.Boss
	next := PhaseForHealth(b.Health)
	if next <= b.Phase {
		return
	}
	b.Phase = next
	p := bossPhases[next]
	b.FireRate = p.fireRate
	b.SpinSpeed = p.spinSpeed
	s.events.Dispatch(event.Event{Type: event.BossPhase, Data: next})
}
