// internal/component/status_effect.go
package component

import "go-dodge-tejecks/internal/defs"

// StatusEffects: активные бонусы игрока, щиты и оружие.
// Таймер > 0 означает, что эффект активен.
type StatusEffects struct {
	Timers       map[defs.PowerUpType]int
	Shields      int
	MaxShields   int
	Ammo         int
	MaxAmmo      int
	Cooldown     int // кадров до следующего выстрела
	BaseCooldown int
}
