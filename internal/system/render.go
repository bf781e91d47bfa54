// internal/system/render.go
package system

import (
	"go-dodge-tejecks/internal/component"
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/defs"
	"go-dodge-tejecks/internal/entity"
	"image/color"
	"math"
	"strings"
)

// SpriteKind: что именно рисовать.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteShieldAura
	SpriteEnemy
	SpritePowerUp
	SpriteLaser
	SpriteFire
	SpriteBoss
	SpriteExplosion
	SpriteParticle
)

// Sprite: одна запись списка отрисовки. X/Y: левый верхний угол,
// Rotation в градусах.
type Sprite struct {
	Kind     SpriteKind
	X, Y     float64
	W, H     float64
	Rotation float64
	Color    color.RGBA
	Tag      string // символ бонуса или имя скина
	Index    int    // номер спрайта врага
	Alpha    float64
	Flash    bool
}

// EffectTimer: оставшееся время активного бонуса.
type EffectTimer struct {
	Type      defs.PowerUpType
	Remaining int
}

// HUD: всё, что выводится текстом поверх поля.
type HUD struct {
	Level         string
	Score         int
	Total         int
	Combo         int
	Ammo, MaxAmmo int
	Shields       int
	Destroyed     int
	Effects       []EffectTimer
	BossMode      bool
	BossHealth    int
	BossMaxHealth int
	BossPhase     int
}

// Snapshot: неизменяемый снимок кадра для хоста.
type Snapshot struct {
	Sprites        []Sprite
	HUD            HUD
	ShakeX, ShakeY float64
}

// RenderSystem собирает список отрисовки. Сам ничего не рисует:
// рисует хост, который получает Snapshot.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

// Snapshot строит снимок в порядке слоёв: взрывы, бонусы, враги, снаряды,
// босс, лазеры, игрок, частицы.
func (s *RenderSystem) Snapshot(level string, total int) Snapshot {
	ecs := s.ecs
	sprites := make([]Sprite, 0, len(ecs.Hazards)+len(ecs.Lasers)+len(ecs.Fires)+len(ecs.Particles)+len(ecs.Explosions)+3)

	for _, e := range ecs.Explosions {
		sprites = append(sprites, Sprite{
			Kind:  SpriteExplosion,
			X:     e.X - e.Radius,
			Y:     e.Y - e.Radius,
			W:     e.Radius * 2,
			H:     e.Radius * 2,
			Color: config.Orange,
			Alpha: 1 - e.Radius/e.MaxRadius,
		})
	}

	for _, h := range ecs.Hazards {
		if h.Kind != component.HazardPowerUp {
			continue
		}
		def := h.PowerUp.Type.Def()
		r := h.Rect()
		sprites = append(sprites, Sprite{
			Kind:  SpritePowerUp,
			X:     r.X,
			Y:     r.Y + math.Sin(h.PowerUp.Bob)*3,
			W:     r.W,
			H:     r.H,
			Color: def.Color,
			Tag:   def.Symbol,
			Alpha: 1,
		})
	}
	for _, h := range ecs.Hazards {
		if !h.IsEnemy() {
			continue
		}
		r := h.Rect()
		sprites = append(sprites, Sprite{
			Kind:     SpriteEnemy,
			X:        r.X,
			Y:        r.Y,
			W:        r.W,
			H:        r.H,
			Rotation: h.Enemy.Angle,
			Color:    config.EnemyColors[h.Enemy.Sprite%len(config.EnemyColors)],
			Index:    h.Enemy.Sprite,
			Alpha:    1,
		})
	}

	for _, f := range ecs.Fires {
		r := f.Rect()
		sprites = append(sprites, Sprite{
			Kind:     SpriteFire,
			X:        r.X,
			Y:        r.Y,
			W:        r.W,
			H:        r.H,
			Rotation: f.Angle,
			Color:    config.Orange,
			Alpha:    1,
		})
	}

	if b := ecs.Boss; b != nil && !b.Defeated {
		r := b.Rect()
		sprites = append(sprites, Sprite{
			Kind:     SpriteBoss,
			X:        r.X,
			Y:        r.Y,
			W:        r.W,
			H:        r.H,
			Rotation: b.Angle,
			Color:    config.Purple,
			Alpha:    1,
			Flash:    b.HitFlash > 0,
		})
	}

	for _, l := range ecs.Lasers {
		r := l.Rect()
		c := config.Green
		if l.Double {
			c = defs.PowerUpDouble.Def().Color
		}
		sprites = append(sprites, Sprite{Kind: SpriteLaser, X: r.X, Y: r.Y, W: r.W, H: r.H, Color: c, Alpha: 1})
	}

	p := ecs.Player
	bobY := p.Y + math.Sin(p.Bob)*2
	if ecs.Effects.Shields > 0 {
		const pad = 10.0
		sprites = append(sprites, Sprite{
			Kind:  SpriteShieldAura,
			X:     p.X - pad,
			Y:     bobY - pad,
			W:     config.PlayerSize + 2*pad,
			H:     config.PlayerSize + 2*pad,
			Color: config.Cyan,
			Tag:   strings.Repeat("S", ecs.Effects.Shields),
			Alpha: 0.5,
		})
	}
	sprites = append(sprites, Sprite{
		Kind:  SpritePlayer,
		X:     p.X,
		Y:     bobY,
		W:     config.PlayerSize,
		H:     config.PlayerSize,
		Color: config.PlayerColor,
		Tag:   p.Skin,
		Alpha: 1,
	})

	for _, pt := range ecs.Particles {
		sprites = append(sprites, Sprite{
			Kind:  SpriteParticle,
			X:     pt.X - pt.Size/2,
			Y:     pt.Y - pt.Size/2,
			W:     pt.Size,
			H:     pt.Size,
			Color: pt.Color,
			Alpha: float64(pt.Lifetime) / float64(pt.MaxLifetime),
		})
	}

	return Snapshot{
		Sprites: sprites,
		HUD:     s.hud(level, total),
		ShakeX:  ecs.Shake.OffsetX,
		ShakeY:  ecs.Shake.OffsetY,
	}
}

func (s *RenderSystem) hud(level string, total int) HUD {
	ecs := s.ecs
	fx := ecs.Effects
	h := HUD{
		Level:     level,
		Score:     ecs.Run.Points,
		Total:     total,
		Combo:     ecs.Run.Combo,
		Ammo:      fx.Ammo,
		MaxAmmo:   fx.MaxAmmo,
		Shields:   fx.Shields,
		Destroyed: ecs.Run.Destroyed,
	}
	// обходим в порядке перечисления, чтобы строки HUD не прыгали
	for _, t := range defs.AllPowerUpTypes() {
		if left := fx.Timers[t]; left > 0 {
			h.Effects = append(h.Effects, EffectTimer{Type: t, Remaining: left})
		}
	}
	if b := ecs.Boss; b != nil {
		h.BossMode = true
		h.BossHealth = b.Health
		h.BossMaxHealth = b.MaxHealth
		h.BossPhase = b.Phase
	}
	return h
}
