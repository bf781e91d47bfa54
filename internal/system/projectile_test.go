package system

import (
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/defs"
	"go-dodge-tejecks/internal/event"
	"testing"
)

// TestAutoFireCooldown fires once, then waits out the cooldown.
func TestAutoFireCooldown(t *testing.T) {
	w := newTestWorld(t, false)

	shots := w.projectile.Update(true)
	if len(shots) != 1 {
		t.Fatalf("fired %d lasers, want 1", len(shots))
	}
	px, _ := w.playerCenter()
	if shots[0].X != px || shots[0].Y != w.ecs.Player.Y-10 {
		t.Errorf("laser at (%v,%v)", shots[0].X, shots[0].Y)
	}
	if w.ecs.Effects.Ammo != config.SurvivalStartAmmo-1 {
		t.Errorf("Ammo = %d", w.ecs.Effects.Ammo)
	}
	if w.played(event.SoundLaser) != 1 {
		t.Errorf("laser sounds = %d, want 1", w.played(event.SoundLaser))
	}

	for i := 0; i < config.SurvivalCooldown-1; i++ {
		w.effects.Update()
		if w.projectile.Update(true) != nil {
			t.Fatalf("fired during cooldown at tick %d", i+1)
		}
	}
	w.effects.Update()
	if w.projectile.Update(true) == nil {
		t.Fatal("did not fire after cooldown")
	}
}

// TestNoShotWithoutAmmoOrIntent: running dry is not an error, the shot is withheld.
func TestNoShotWithoutAmmoOrIntent(t *testing.T) {
	w := newTestWorld(t, false)

	if w.projectile.Update(false) != nil {
		t.Fatal("fired without intent")
	}
	w.ecs.Effects.Ammo = 0
	if w.projectile.Update(true) != nil {
		t.Fatal("fired without ammo")
	}
	if len(w.ecs.Lasers) != 0 || w.ecs.Effects.Ammo != 0 {
		t.Fatalf("lasers=%d ammo=%d", len(w.ecs.Lasers), w.ecs.Effects.Ammo)
	}
}

// TestDoubleShotSpendsExtraAmmo checks the spread and the optional second round.
func TestDoubleShotSpendsExtraAmmo(t *testing.T) {
	w := newTestWorld(t, false)
	w.effects.Apply(defs.PowerUpDouble)
	px, _ := w.playerCenter()

	shots := w.projectile.Update(true)
	if len(shots) != 2 {
		t.Fatalf("fired %d lasers, want 2", len(shots))
	}
	if shots[0].X != px-config.DoubleShotSpread || shots[1].X != px+config.DoubleShotSpread {
		t.Errorf("spread: %v %v", shots[0].X, shots[1].X)
	}
	if w.ecs.Effects.Ammo != config.SurvivalStartAmmo-2 {
		t.Errorf("Ammo = %d, want %d", w.ecs.Effects.Ammo, config.SurvivalStartAmmo-2)
	}

	// последний патрон: оба луча, второй бесплатно
	w.ecs.Effects.Ammo = 1
	w.ecs.Effects.Cooldown = 0
	if shots := w.projectile.Update(true); len(shots) != 2 {
		t.Fatalf("fired %d lasers on the last round", len(shots))
	}
	if w.ecs.Effects.Ammo != 0 {
		t.Errorf("Ammo = %d, want 0", w.ecs.Effects.Ammo)
	}
}
