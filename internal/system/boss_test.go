package system

import (
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/event"
	"math"
	"testing"
)

// TestPhaseForHealth checks the phase thresholds.
func TestPhaseForHealth(t *testing.T) {
	tests := []struct {
		health int
		phase  int
	}{
		{100, 1}, {60, 1}, {59, 2}, {30, 2}, {29, 3}, {1, 3}, {0, 3},
	}
	for _, tt := range tests {
		if got := PhaseForHealth(tt.health); got != tt.phase {
			t.Errorf("PhaseForHealth(%d) = %d, want %d", tt.health, got, tt.phase)
		}
	}
}

// TestBossPhaseMonotone damages the boss to death and checks the phase never drops.
func TestBossPhaseMonotone(t *testing.T) {
	w := newTestWorld(t, true)
	b := w.ecs.Boss

	prev := b.Phase
	hits := 0
	for !w.boss.TakeDamage(config.BossLaserDamage) {
		hits++
		if b.Phase < prev {
			t.Fatalf("phase dropped from %d to %d at health %d", prev, b.Phase, b.Health)
		}
		prev = b.Phase
		if b.Health < config.BossPhase2Health && b.Phase < 2 {
			t.Fatalf("health %d but phase %d", b.Health, b.Phase)
		}
		if b.Health < config.BossPhase3Health && b.Phase != 3 {
			t.Fatalf("health %d but phase %d", b.Health, b.Phase)
		}
	}
	if hits+1 != config.BossMaxHealth/config.BossLaserDamage {
		t.Errorf("boss died after %d hits", hits+1)
	}
	if b.Health != 0 || !b.Defeated {
		t.Errorf("Health=%d Defeated=%v", b.Health, b.Defeated)
	}
	if b.FireRate != 20 || b.SpinSpeed != 3 {
		t.Errorf("phase 3 parameters: rate=%d spin=%v", b.FireRate, b.SpinSpeed)
	}
	if w.seen[event.BossPhase] != 2 {
		t.Errorf("BossPhase events = %d, want 2", w.seen[event.BossPhase])
	}
}

// TestBossFireCadence checks ShouldFire against the phase fire rate.
func TestBossFireCadence(t *testing.T) {
	w := newTestWorld(t, true)

	for i := 1; i < 60; i++ {
		w.boss.Update()
		if w.boss.ShouldFire() {
			t.Fatalf("fired early on frame %d", i)
		}
	}
	w.boss.Update()
	if !w.boss.ShouldFire() {
		t.Fatal("did not fire on frame 60")
	}
	if w.ecs.Boss.FireTimer != 0 {
		t.Fatalf("FireTimer = %d after firing", w.ecs.Boss.FireTimer)
	}

	w.ecs.Boss.Health = 0
	w.boss.TakeDamage(0)
	w.ecs.Boss.FireTimer = 1000
	if w.boss.ShouldFire() {
		t.Fatal("defeated boss must not fire")
	}
}

// TestBossFirePatterns checks shot counts, muzzle offsets and fan speed per phase.
func TestBossFirePatterns(t *testing.T) {
	w := newTestWorld(t, true)
	b := w.ecs.Boss
	px, py := w.playerCenter()

	shots := w.boss.Fire(px, py)
	if len(shots) != 1 || shots[0].X != b.X || shots[0].Y != b.Y+config.BossMuzzleOffset {
		t.Fatalf("phase 1 pattern: %+v", shots)
	}

	b.Phase = 2
	shots = w.boss.Fire(px, py)
	if len(shots) != 2 || shots[0].X != b.X-config.BossSpreadOffset || shots[1].X != b.X+config.BossSpreadOffset {
		t.Fatalf("phase 2 pattern: %+v", shots)
	}

	b.Phase = 3
	shots = w.boss.Fire(px, py)
	if len(shots) != 3 {
		t.Fatalf("phase 3: %d shots", len(shots))
	}
	for _, f := range shots {
		if speed := math.Hypot(f.VX, f.VY); math.Abs(speed-config.FireFanSpeed) > 1e-9 {
			t.Errorf("fan shot speed = %v, want %v", speed, config.FireFanSpeed)
		}
	}
	if !(shots[0].VX < shots[1].VX && shots[1].VX < shots[2].VX) {
		t.Errorf("fan should spread left to right: %v %v %v", shots[0].VX, shots[1].VX, shots[2].VX)
	}
	if len(w.ecs.Fires) != 6 {
		t.Errorf("Fires = %d, want 6", len(w.ecs.Fires))
	}
	if w.played(event.SoundExplosion) != 3 {
		t.Errorf("explosion sounds = %d, want one per volley", w.played(event.SoundExplosion))
	}
}

// TestBossWanderStaysInBounds runs the boss for a while and checks its targets.
func TestBossWanderStaysInBounds(t *testing.T) {
	w := newTestWorld(t, true)
	b := w.ecs.Boss

	for i := 0; i < 2000; i++ {
		w.boss.Update()
		if b.TargetX < config.BossTargetPad || b.TargetX > config.ScreenWidth-config.BossTargetPad {
			t.Fatalf("TargetX = %v out of range", b.TargetX)
		}
		if b.Angle < 0 || b.Angle >= 360 {
			t.Fatalf("Angle = %v not normalized", b.Angle)
		}
	}
}
