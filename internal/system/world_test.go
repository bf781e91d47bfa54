package system

import (
	"go-dodge-tejecks/internal/component"
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/defs"
	"go-dodge-tejecks/internal/entity"
	"go-dodge-tejecks/internal/event"
	"go-dodge-tejecks/internal/utils"
	"testing"
)

// testWorld собирает мир со всеми системами и записывает звуки и события.
type testWorld struct {
	ecs        *entity.ECS
	events     *event.Dispatcher
	effects    *StatusEffectSystem
	score      *ScoreSystem
	visual     *VisualEffectSystem
	boss       *BossSystem
	combat     *CombatSystem
	movement   *MovementSystem
	projectile *ProjectileSystem
	spawn      *SpawnSystem

	sounds []event.EventType
	seen   map[event.EventType]int
}

func newTestWorld(t *testing.T, bossMode bool) *testWorld {
	t.Helper()
	fx := NewStatusEffects(config.SurvivalStartAmmo, config.SurvivalMaxAmmo, config.SurvivalCooldown)
	ecs := entity.NewECS(component.NewPlayer(defs.DefaultSkin), fx)
	if bossMode {
		ecs.Boss = component.NewBoss()
	}
	rng := utils.NewPRNGService(42)
	events := event.NewDispatcher()

	w := &testWorld{ecs: ecs, events: events, seen: make(map[event.EventType]int)}
	w.effects = NewStatusEffectSystem(ecs)
	w.score = NewScoreSystem(ecs)
	w.visual = NewVisualEffectSystem(ecs, utils.NewPRNGService(43))
	w.boss = NewBossSystem(ecs, rng, events)
	w.combat = NewCombatSystem(ecs, w.effects, w.score, w.visual, w.boss, events)
	w.movement = NewMovementSystem(ecs, w.effects)
	w.projectile = NewProjectileSystem(ecs, w.effects, events)
	w.spawn = NewSpawnSystem(ecs, rng, 0, defs.SurvivalLoot)
	w.spawn.Disabled = true

	events.SubscribeSounds(event.ListenerFunc(func(e event.Event) {
		w.sounds = append(w.sounds, e.Type)
	}))
	for _, et := range []event.EventType{event.EnemyDestroyed, event.ShieldLost, event.BossPhase} {
		events.Subscribe(et, event.ListenerFunc(func(e event.Event) { w.seen[e.Type]++ }))
	}
	return w
}

// enemyAt кладёт врага размера 40 с центром в (x, y).
func (w *testWorld) enemyAt(x, y float64) *component.Hazard {
	h := component.NewEnemy(w.ecs.NewEntity(), x, 40, 0, 0)
	h.Y = y
	w.ecs.Hazards = append(w.ecs.Hazards, h)
	return h
}

func (w *testWorld) powerUpAt(x, y float64, t defs.PowerUpType) *component.Hazard {
	h := component.NewPowerUp(w.ecs.NewEntity(), x, y, t, 0)
	w.ecs.Hazards = append(w.ecs.Hazards, h)
	return h
}

func (w *testWorld) laserAt(x, y float64) *component.Laser {
	l := &component.Laser{ID: w.ecs.NewEntity(), X: x, Y: y, Speed: config.LaserSpeed}
	w.ecs.Lasers = append(w.ecs.Lasers, l)
	return l
}

func (w *testWorld) playerCenter() (float64, float64) {
	return w.ecs.Player.Center()
}

func (w *testWorld) played(t event.EventType) int {
	n := 0
	for _, s := range w.sounds {
		if s == t {
			n++
		}
	}
	return n
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}
