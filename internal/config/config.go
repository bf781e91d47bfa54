// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 798
	ScreenHeight = 640
	FrameRate    = 60 // логических кадров в секунду

	PlayerSize        = 50.0
	PlayerStartY      = ScreenHeight - 100
	PlayerBaseSpeed   = 12.0
	PlayerHitboxInset = 5.0 // хитбокс меньше спрайта, чтобы попадания ощущались честно
	SpeedBoostFactor  = 1.5
	SlowMoFactor      = 0.4
	MagnetRadius      = 200.0
	MagnetPull        = 5.0
	MaxShields        = 5

	// Оружие (режим выживания)
	SurvivalStartAmmo = 10
	SurvivalMaxAmmo   = 30
	SurvivalCooldown  = 15
	// Оружие (режим босса)
	BossStartAmmo    = 30
	BossMaxAmmo      = 50
	BossCooldown     = 12
	RapidFireDivisor = 3
	DoubleShotSpread = 15.0
	AmmoPickup       = 10

	LaserSpeed  = 15.0
	LaserWidth  = 4.0
	LaserHeight = 20.0

	EnemySpawnY   = -50.0
	EnemyMinSize  = 25
	EnemyMaxSize  = 60
	EnemySpawnPad = 50 // отступ по X от краёв при спавне
	PowerUpSpawnY = -30.0
	PowerUpSize   = 25.0
	PowerUpFall   = 0.5 // доля от скорости падения врагов

	// Очки и комбо
	DodgePoints     = 1
	KillPoints      = 3
	BombPoints      = 2
	CoinPoints      = 5
	MaxCombo        = 10
	ComboWindow     = 60 // кадров без уворота/убийства до сброса комбо
	DodgeSoundEvery = 5

	AutoSaveInterval = 1800 // 30 секунд при 60 fps

	// Босс
	BossSize          = 150.0
	BossStartY        = 100.0
	BossMaxHealth     = 100
	BossPhase2Health  = 60
	BossPhase3Health  = 30
	BossStep          = 3.0
	BossArrivalRadius = 5.0
	BossRetargetEvery = 90
	BossTargetPad     = 100
	BossHitFlash      = 10
	BossLaserDamage   = 2
	BossVictoryBonus  = 10000
	BossMuzzleOffset  = 75.0
	BossSpreadOffset  = 30.0
	BossFanStep       = 150.0 // смещение цели крайних выстрелов веера
	BossAmbientSpeed  = 8.0

	FireSpeed     = 8.0
	FireFanSpeed  = 10.0
	FireSize      = 15.0
	FireLifetime  = 300
	FireBoundsPad = 50.0

	// Лимиты списков в режиме босса
	MaxParticles  = 100
	MaxFires      = 50
	MaxHazards    = 30
	MaxLasers     = 20
	MaxExplosions = 10

	ParticleLifetime = 30
	ParticleGravity  = 0.2
	ExplosionStart   = 10.0
	ExplosionMax     = 80.0
	ExplosionGrowth  = 8.0

	BossSpawnRate       = 0.02
	SurvivalPowerUpRate = 0.01
	BossPowerUpRate     = 0.015
	ComboParticleStreak = 10
)

// SpawnTier: ступень частоты спавна врагов в зависимости от скорости падения.
type SpawnTier struct {
	MaxFallSpeed float64
	Rate         float64
}

// SpawnTiers: шесть ступеней; последняя покрывает всё, что быстрее.
var SpawnTiers = []SpawnTier{
	{MaxFallSpeed: 3, Rate: 0.05},
	{MaxFallSpeed: 6, Rate: 0.06},
	{MaxFallSpeed: 10, Rate: 0.07},
	{MaxFallSpeed: 15, Rate: 0.08},
	{MaxFallSpeed: 25, Rate: 0.10},
	{MaxFallSpeed: 0, Rate: 0.12},
}

var (
	BackgroundColor     = color.RGBA{240, 248, 255, 255}
	BossBackgroundColor = color.RGBA{100, 30, 55, 255}
	BarBackColor        = color.RGBA{50, 50, 50, 255}
	TextLightColor      = color.RGBA{240, 240, 240, 255}
	TextDarkColor       = color.RGBA{20, 20, 30, 255}
	White               = color.RGBA{255, 255, 255, 255}
	Black               = color.RGBA{0, 0, 0, 255}
	Red                 = color.RGBA{255, 0, 0, 255}
	Green               = color.RGBA{0, 255, 0, 255}
	Yellow              = color.RGBA{255, 255, 0, 255}
	Purple              = color.RGBA{150, 0, 255, 255}
	Cyan                = color.RGBA{0, 255, 255, 255}
	Orange              = color.RGBA{255, 165, 0, 255}
	PlayerColor         = color.RGBA{70, 130, 180, 255}
	EnemyColors         = []color.RGBA{
		{220, 60, 60, 255},
		{60, 160, 90, 255},
		{200, 120, 40, 255},
		{120, 80, 200, 255},
		{40, 140, 200, 255},
		{180, 60, 140, 255},
	}
)
