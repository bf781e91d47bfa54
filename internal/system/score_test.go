package system

import (
	"go-dodge-tejecks/internal/config"
	"testing"
)

// TestComboDecaysOneFrameAfterTimerEnds: the frame where the timer hits zero keeps the combo.
func TestComboDecaysOneFrameAfterTimerEnds(t *testing.T) {
	w := newTestWorld(t, false)
	w.score.Dodge()

	for i := 0; i < config.ComboWindow; i++ {
		w.score.Update()
	}
	if w.ecs.Run.ComboTimer != 0 || w.ecs.Run.Combo != 1 {
		t.Fatalf("after window: timer=%d combo=%d, want 0 and 1", w.ecs.Run.ComboTimer, w.ecs.Run.Combo)
	}
	w.score.Update()
	if w.ecs.Run.Combo != 0 {
		t.Fatalf("Combo = %d, want 0 on the next frame", w.ecs.Run.Combo)
	}
}

// TestComboCapAndDodgePoints checks that each dodge pays 1+combo and combo stops at the cap.
func TestComboCapAndDodgePoints(t *testing.T) {
	w := newTestWorld(t, false)

	want := 0
	for i := 0; i < 15; i++ {
		want += config.DodgePoints + w.score.Combo()
		w.score.Dodge()
	}
	if w.ecs.Run.Points != want {
		t.Errorf("Points = %d, want %d", w.ecs.Run.Points, want)
	}
	if w.ecs.Run.Combo != config.MaxCombo || w.ecs.Run.MaxCombo != config.MaxCombo {
		t.Errorf("Combo=%d MaxCombo=%d, want %d", w.ecs.Run.Combo, w.ecs.Run.MaxCombo, config.MaxCombo)
	}
	if w.ecs.Run.ComboTimer != config.ComboWindow {
		t.Errorf("ComboTimer = %d, want %d", w.ecs.Run.ComboTimer, config.ComboWindow)
	}
	if w.ecs.Run.DodgeStreak != 15 {
		t.Errorf("DodgeStreak = %d, want 15", w.ecs.Run.DodgeStreak)
	}
}

// TestKillCoinBombPoints checks the per-event formulas.
func TestKillCoinBombPoints(t *testing.T) {
	w := newTestWorld(t, false)
	run := w.ecs.Run

	w.score.Kill() // combo 0 -> +3, combo 1
	if run.Points != 3 || run.Combo != 1 || run.Destroyed != 1 {
		t.Fatalf("after kill: %+v", *run)
	}
	w.score.Coin() // 5*(1+1/2) = 5
	if run.Points != 8 {
		t.Fatalf("after coin at combo 1: Points = %d, want 8", run.Points)
	}
	w.score.Bump()
	w.score.Coin() // 5*(1+2/2) = 10
	if run.Points != 18 {
		t.Fatalf("after coin at combo 2: Points = %d, want 18", run.Points)
	}
	w.score.Bomb(4)
	if run.Points != 26 || run.Destroyed != 5 || run.Combo != 2 {
		t.Fatalf("after bomb: %+v", *run)
	}
}

// TestAwardRejectsNegative keeps the run score monotonic.
func TestAwardRejectsNegative(t *testing.T) {
	w := newTestWorld(t, false)
	mustPanic(t, "negative award", func() { w.score.Award(-1) })
}
