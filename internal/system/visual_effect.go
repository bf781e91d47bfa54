// internal/system/visual_effect.go
package system

import (
	"go-dodge-tejecks/internal/component"
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/entity"
	"go-dodge-tejecks/internal/utils"
	"image/color"
	"math"
)

// VisualEffectSystem управляет визуальными эффектами: частицами, взрывами
// и тряской экрана. Ничто здесь не влияет на очки и столкновения.
type VisualEffectSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, rng: rng}
}

// Burst разбрасывает n частиц из точки в случайных направлениях.
func (s *VisualEffectSystem) Burst(x, y float64, c color.RGBA, n int) {
	for i := 0; i < n; i++ {
		angle := s.rng.Uniform(0, 2*math.Pi)
		speed := s.rng.Uniform(2, 6)
		s.ecs.Particles = append(s.ecs.Particles, &component.Particle{
			X:           x,
			Y:           y,
			VX:          math.Cos(angle) * speed,
			VY:          math.Sin(angle) * speed,
			Color:       c,
			Size:        float64(s.rng.IntRange(3, 8)),
			Lifetime:    config.ParticleLifetime,
			MaxLifetime: config.ParticleLifetime,
		})
	}
}

// Explode добавляет расходящееся кольцо.
func (s *VisualEffectSystem) Explode(x, y float64) {
	s.ecs.Explosions = append(s.ecs.Explosions, &component.Explosion{
		X:         x,
		Y:         y,
		Radius:    config.ExplosionStart,
		MaxRadius: config.ExplosionMax,
		Growth:    config.ExplosionGrowth,
	})
}

// Shake запускает тряску экрана.
func (s *VisualEffectSystem) Shake(intensity float64, frames int) {
	s.ecs.Shake.Intensity = intensity
	s.ecs.Shake.Frames = frames
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update() {
	alive := s.ecs.Particles[:0]
	for _, p := range s.ecs.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += config.ParticleGravity
		p.Lifetime--
		p.Size = math.Max(1, math.Floor(p.Size*0.95))
		if p.Lifetime > 0 {
			alive = append(alive, p)
		}
	}
	s.ecs.Particles = alive

	active := s.ecs.Explosions[:0]
	for _, e := range s.ecs.Explosions {
		e.Radius += e.Growth
		if e.Active() {
			active = append(active, e)
		}
	}
	s.ecs.Explosions = active

	shake := s.ecs.Shake
	if shake.Frames > 0 {
		shake.Frames--
		shake.Intensity *= 0.9
		amp := int(shake.Intensity)
		shake.OffsetX = float64(s.rng.IntRange(-amp, amp))
		shake.OffsetY = float64(s.rng.IntRange(-amp, amp))
	} else {
		shake.OffsetX, shake.OffsetY = 0, 0
	}
}
