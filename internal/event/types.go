// internal/event/types.go
package event

// Звуковые триггеры: без подтверждения, "выстрелил и забыл".
const (
	SoundCollect   EventType = "collect"
	SoundPowerUp   EventType = "powerup"
	SoundHit       EventType = "hit"
	SoundDodge     EventType = "dodge"
	SoundLaser     EventType = "laser"
	SoundExplosion EventType = "explosion"
	SoundBomb      EventType = "bomb"
)

// SoundEvents: все звуковые события.
var SoundEvents = []EventType{
	SoundCollect, SoundPowerUp, SoundHit, SoundDodge, SoundLaser, SoundExplosion, SoundBomb,
}

const (
	EnemyDestroyed EventType = "EnemyDestroyed" // Враг уничтожен лазером или бомбой
	ShieldLost     EventType = "ShieldLost"     // Щит поглотил удар
	BossPhase      EventType = "BossPhase"      // Босс перешёл в новую фазу, Data: номер фазы
	RunEnded       EventType = "RunEnded"       // Забег завершён, Data: Outcome
)
