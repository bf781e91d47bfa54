package system

import (
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/defs"
	"math"
	"testing"
)

// TestPlayerStaysOnScreen clamps the player to the play area.
func TestPlayerStaysOnScreen(t *testing.T) {
	w := newTestWorld(t, false)
	p := w.ecs.Player

	for i := 0; i < 100; i++ {
		w.movement.MovePlayer(true, false)
	}
	if p.X != 0 {
		t.Fatalf("X = %v after moving left, want 0", p.X)
	}
	for i := 0; i < 100; i++ {
		w.movement.MovePlayer(false, true)
	}
	if p.X != config.ScreenWidth-config.PlayerSize {
		t.Fatalf("X = %v after moving right, want %v", p.X, config.ScreenWidth-config.PlayerSize)
	}
}

// TestSpeedBoostMovesFaster checks the speed effect on movement.
func TestSpeedBoostMovesFaster(t *testing.T) {
	w := newTestWorld(t, false)
	p := w.ecs.Player
	start := p.X

	w.effects.Apply(defs.PowerUpSpeed)
	w.movement.MovePlayer(true, false)
	if got := start - p.X; got != config.PlayerBaseSpeed*config.SpeedBoostFactor {
		t.Fatalf("moved %v, want %v", got, config.PlayerBaseSpeed*config.SpeedBoostFactor)
	}
}

// TestHazardsFallAndDodge checks fall speeds, slowmo and off-screen dodges.
func TestHazardsFallAndDodge(t *testing.T) {
	w := newTestWorld(t, false)
	enemy := w.enemyAt(100, 100)
	coin := w.powerUpAt(600, 100, defs.PowerUpCoin)

	if dodged := w.movement.Update(6); len(dodged) != 0 {
		t.Fatalf("unexpected dodge: %v", dodged)
	}
	if enemy.Y != 106 || coin.Y != 103 {
		t.Fatalf("enemy.Y=%v coin.Y=%v, want 106 and 103", enemy.Y, coin.Y)
	}

	w.effects.Apply(defs.PowerUpSlowMo)
	w.movement.Update(10)
	if math.Abs(enemy.Y-110) > 1e-9 {
		t.Fatalf("slowmo enemy.Y = %v, want 110", enemy.Y)
	}

	enemy.Y = config.ScreenHeight + enemy.Enemy.Size
	dodged := w.movement.Update(1)
	if len(dodged) != 1 || dodged[0] != enemy {
		t.Fatalf("dodged = %v, want the enemy", dodged)
	}
	for _, h := range w.ecs.Hazards {
		if h == enemy {
			t.Fatal("dodged enemy still in the hazard list")
		}
	}

	coin.Y = config.ScreenHeight + 1
	if dodged := w.movement.Update(1); len(dodged) != 0 {
		t.Fatal("missed power-up must not count as a dodge")
	}
	if len(w.ecs.Hazards) != 0 {
		t.Fatalf("Hazards = %d, want 0", len(w.ecs.Hazards))
	}
}

// TestMagnetPullsOnlyCoins checks the magnet radius and target types.
func TestMagnetPullsOnlyCoins(t *testing.T) {
	w := newTestWorld(t, false)
	px, py := w.playerCenter()
	near := w.powerUpAt(px-150, py, defs.PowerUpCoin)
	far := w.powerUpAt(px-300, py-100, defs.PowerUpCoin)
	shield := w.powerUpAt(px+150, py, defs.PowerUpShield)

	w.effects.Apply(defs.PowerUpMagnet)
	w.movement.Update(0)

	if math.Abs(near.X-(px-150+config.MagnetPull)) > 1e-9 {
		t.Errorf("near coin X = %v, want pulled by %v", near.X, config.MagnetPull)
	}
	if far.X != px-300 {
		t.Errorf("far coin moved to %v", far.X)
	}
	if shield.X != px+150 {
		t.Errorf("shield moved to %v", shield.X)
	}
}

// TestProjectilesMoveAndExpire checks laser culling and fire lifetime.
func TestProjectilesMoveAndExpire(t *testing.T) {
	w := newTestWorld(t, true)
	l := w.laserAt(100, 5)

	w.movement.Update(0)
	if l.Y != 5-config.LaserSpeed {
		t.Fatalf("laser Y = %v", l.Y)
	}
	w.movement.Update(0)
	if len(w.ecs.Lasers) != 0 {
		t.Fatal("laser above the screen was not culled")
	}

	w.boss.Fire(w.ecs.Boss.X, w.ecs.Boss.Y+200)
	f := w.ecs.Fires[0]
	f.Lifetime = 1
	w.movement.Update(0)
	if len(w.ecs.Fires) != 0 {
		t.Fatal("expired fire was not culled")
	}
}
