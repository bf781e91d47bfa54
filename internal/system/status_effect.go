// internal/system/status_effect.go
package system

import (
	"fmt"
	"go-dodge-tejecks/internal/component"
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/defs"
	"go-dodge-tejecks/internal/entity"
)

// NewStatusEffects создаёт состояние бонусов для забега.
func NewStatusEffects(startAmmo, maxAmmo, baseCooldown int) *component.StatusEffects {
	return &component.StatusEffects{
		Timers:       make(map[defs.PowerUpType]int),
		MaxShields:   config.MaxShields,
		Ammo:         startAmmo,
		MaxAmmo:      maxAmmo,
		BaseCooldown: baseCooldown,
	}
}

// StatusEffectSystem управляет жизненным циклом эффектов: таймерами бонусов,
// щитами и патронами.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update уменьшает все активные таймеры на один кадр. Эффект с таймером 0
// просто перестаёт действовать, отдельного события истечения нет.
func (s *StatusEffectSystem) Update() {
	fx := s.ecs.Effects
	for t, left := range fx.Timers {
		if left > 0 {
			fx.Timers[t] = left - 1
		}
	}
	if fx.Cooldown > 0 {
		fx.Cooldown--
	}
}

// Apply включает или обновляет таймерный эффект. Повторный подбор
// сбрасывает таймер на полную длительность, а не складывает.
func (s *StatusEffectSystem) Apply(t defs.PowerUpType) {
	if !t.Timed() {
		panic(fmt.Sprintf("system: %s is not a timed effect", t))
	}
	s.ecs.Effects.Timers[t] = t.Duration()
}

// Active: эффект сейчас действует.
func (s *StatusEffectSystem) Active(t defs.PowerUpType) bool {
	return s.ecs.Effects.Timers[t] > 0
}

// Remaining: сколько кадров осталось эффекту.
func (s *StatusEffectSystem) Remaining(t defs.PowerUpType) int {
	return s.ecs.Effects.Timers[t]
}

// AddShield добавляет щит, насыщаясь на максимуме. Возвращает, вырос ли счётчик.
func (s *StatusEffectSystem) AddShield() bool {
	fx := s.ecs.Effects
	if fx.Shields >= fx.MaxShields {
		return false
	}
	fx.Shields++
	s.checkInvariants()
	return true
}

// AbsorbHit тратит один щит. false: щитов не было, удар смертелен.
func (s *StatusEffectSystem) AbsorbHit() bool {
	fx := s.ecs.Effects
	if fx.Shields == 0 {
		return false
	}
	fx.Shields--
	s.checkInvariants()
	return true
}

// AddAmmo пополняет патроны до максимума.
func (s *StatusEffectSystem) AddAmmo(n int) {
	fx := s.ecs.Effects
	fx.Ammo = min(fx.MaxAmmo, fx.Ammo+n)
	s.checkInvariants()
}

// SpendAmmo тратит один патрон, если он есть.
func (s *StatusEffectSystem) SpendAmmo() bool {
	fx := s.ecs.Effects
	if fx.Ammo <= 0 {
		return false
	}
	fx.Ammo--
	return true
}

// PlayerSpeed: скорость игрока с учётом ускорения.
func (s *StatusEffectSystem) PlayerSpeed() float64 {
	speed := s.ecs.Player.BaseSpeed
	if s.Active(defs.PowerUpSpeed) {
		speed *= config.SpeedBoostFactor
	}
	return speed
}

// FallSpeed: скорость падения с учётом замедления.
func (s *StatusEffectSystem) FallSpeed(base float64) float64 {
	if s.Active(defs.PowerUpSlowMo) {
		return base * config.SlowMoFactor
	}
	return base
}

// ShotCooldown: пауза между выстрелами с учётом скорострельности.
func (s *StatusEffectSystem) ShotCooldown() int {
	if s.Active(defs.PowerUpRapid) {
		return s.ecs.Effects.BaseCooldown / config.RapidFireDivisor
	}
	return s.ecs.Effects.BaseCooldown
}

// Нарушение границ: ошибка в коде, а не игровая ситуация.
func (s *StatusEffectSystem) checkInvariants() {
	fx := s.ecs.Effects
	if fx.Shields < 0 || fx.Shields > fx.MaxShields {
		panic(fmt.Sprintf("system: shields out of range: %d", fx.Shields))
	}
	if fx.Ammo < 0 || fx.Ammo > fx.MaxAmmo {
		panic(fmt.Sprintf("system: ammo out of range: %d", fx.Ammo))
	}
}
