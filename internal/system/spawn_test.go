package system

import (
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/defs"
	"go-dodge-tejecks/internal/utils"
	"testing"
)

// TestSpawnRateTiers checks the step function over fall speeds.
func TestSpawnRateTiers(t *testing.T) {
	tests := []struct {
		fall float64
		rate float64
	}{
		{3, 0.05}, {3.5, 0.06}, {6, 0.06}, {10, 0.07}, {15, 0.08}, {25, 0.10}, {35, 0.12}, {100, 0.12},
	}
	for _, tt := range tests {
		if got := SpawnRate(tt.fall); got != tt.rate {
			t.Errorf("SpawnRate(%v) = %v, want %v", tt.fall, got, tt.rate)
		}
	}
}

// TestSpawnedEnemiesWithinBounds checks spawn column, height and size ranges.
func TestSpawnedEnemiesWithinBounds(t *testing.T) {
	w := newTestWorld(t, false)
	s := NewSpawnSystem(w.ecs, utils.NewPRNGService(7), 1, defs.LootTable{})

	for i := 0; i < 300; i++ {
		s.Update()
	}
	if len(w.ecs.Hazards) != 300 {
		t.Fatalf("spawned %d enemies, want 300", len(w.ecs.Hazards))
	}
	for _, h := range w.ecs.Hazards {
		if !h.IsEnemy() {
			t.Fatalf("unexpected power-up with empty loot table")
		}
		if h.X < config.EnemySpawnPad || h.X > config.ScreenWidth-config.EnemySpawnPad {
			t.Errorf("X = %v out of spawn range", h.X)
		}
		if h.Y != config.EnemySpawnY {
			t.Errorf("Y = %v, want %v", h.Y, config.EnemySpawnY)
		}
		if h.Enemy.Size < config.EnemyMinSize || h.Enemy.Size > config.EnemyMaxSize {
			t.Errorf("Size = %v out of range", h.Enemy.Size)
		}
		if h.Enemy.SpinSpeed < -2 || h.Enemy.SpinSpeed > 2 {
			t.Errorf("SpinSpeed = %v out of range", h.Enemy.SpinSpeed)
		}
	}
}

// TestBossLootTable only drops boss-mode power-ups.
func TestBossLootTable(t *testing.T) {
	w := newTestWorld(t, true)
	loot := defs.BossLoot
	loot.Rate = 1
	s := NewSpawnSystem(w.ecs, utils.NewPRNGService(9), 0, loot)

	for i := 0; i < 500; i++ {
		s.Update()
	}
	allowed := map[defs.PowerUpType]bool{}
	for _, e := range defs.BossLoot.Entries {
		allowed[e.Type] = true
	}
	seen := map[defs.PowerUpType]bool{}
	for _, h := range w.ecs.Hazards {
		if h.IsEnemy() {
			t.Fatal("enemy spawned with zero enemy rate")
		}
		if !allowed[h.PowerUp.Type] {
			t.Fatalf("boss mode dropped %s", h.PowerUp.Type)
		}
		seen[h.PowerUp.Type] = true
	}
	if len(seen) != len(allowed) {
		t.Errorf("only saw %d of %d types in 500 drops", len(seen), len(allowed))
	}
}

// TestDisabledSpawner spawns nothing.
func TestDisabledSpawner(t *testing.T) {
	w := newTestWorld(t, false)
	s := NewSpawnSystem(w.ecs, utils.NewPRNGService(1), 1, defs.SurvivalLoot)
	s.Disabled = true
	for i := 0; i < 100; i++ {
		s.Update()
	}
	if len(w.ecs.Hazards) != 0 {
		t.Fatalf("disabled spawner created %d hazards", len(w.ecs.Hazards))
	}
}
