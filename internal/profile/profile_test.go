package profile

import (
	"errors"
	"go-dodge-tejecks/internal/defs"
	"testing"
	"time"
)

// TestDefault checks the clean profile state.
func TestDefault(t *testing.T) {
	r := Default()
	if r.PlayerID == "" {
		t.Fatal("expected generated player id")
	}
	if r.TotalPoints != 0 || r.HighScore != 0 {
		t.Fatalf("expected zero points, got total=%d high=%d", r.TotalPoints, r.HighScore)
	}
	if !r.Purchased[defs.DefaultSkin] || r.Equipped != defs.DefaultSkin {
		t.Fatalf("expected default skin purchased and equipped, got %+v", r)
	}
	if len(r.Purchased) != 1 {
		t.Fatalf("expected only the default skin, got %v", r.Purchased)
	}
	if r.BestScores["Easy"] != 0 {
		t.Fatal("expected best scores to start at zero")
	}
}

// TestFinishRunUpdatesHighScoreAndBest verifies death/victory finalization.
func TestFinishRunUpdatesHighScoreAndBest(t *testing.T) {
	r := Default()
	r.FinishRun("Easy", 40)
	r.FinishRun("Easy", 25)

	if r.TotalPoints != 65 {
		t.Errorf("TotalPoints = %d, want 65", r.TotalPoints)
	}
	if r.HighScore != 40 {
		t.Errorf("HighScore = %d, want 40", r.HighScore)
	}
	if r.BestScores["Easy"] != 40 {
		t.Errorf("best Easy = %d, want 40", r.BestScores["Easy"])
	}
}

// TestQuitRunKeepsHighScore verifies that quitting from pause never sets the high score.
func TestQuitRunKeepsHighScore(t *testing.T) {
	r := Default()
	r.QuitRun("Hard", 90)

	if r.TotalPoints != 90 {
		t.Errorf("TotalPoints = %d, want 90", r.TotalPoints)
	}
	if r.HighScore != 0 {
		t.Errorf("HighScore = %d, want 0", r.HighScore)
	}
	if r.BestScores["Hard"] != 90 {
		t.Errorf("best Hard = %d, want 90", r.BestScores["Hard"])
	}
}

// TestPurchaseAndEquip covers the shop flow.
func TestPurchaseAndEquip(t *testing.T) {
	r := Default()
	r.TotalPoints = 210

	if err := r.Equip("BabyTejeck"); !errors.Is(err, ErrNotPurchased) {
		t.Fatalf("expected ErrNotPurchased, got %v", err)
	}
	if err := r.Purchase("Amelia"); !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints, got %v", err)
	}
	if err := r.Purchase("BabyTejeck"); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if r.TotalPoints != 10 {
		t.Fatalf("TotalPoints = %d, want 10", r.TotalPoints)
	}
	// повторная покупка бесплатна
	if err := r.Purchase("BabyTejeck"); err != nil || r.TotalPoints != 10 {
		t.Fatalf("repeat purchase charged points: err=%v total=%d", err, r.TotalPoints)
	}
	if err := r.Equip("BabyTejeck"); err != nil {
		t.Fatalf("equip: %v", err)
	}
	if r.Equipped != "BabyTejeck" {
		t.Fatalf("Equipped = %q", r.Equipped)
	}
	if err := r.Purchase("Nobody"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
}

// TestCloneIsDeep verifies that a clone does not share maps with the original.
func TestCloneIsDeep(t *testing.T) {
	r := Default()
	c := r.Clone()
	c.BestScores["Easy"] = 100
	c.Purchased["Alv"] = true

	if r.BestScores["Easy"] != 0 || r.Purchased["Alv"] {
		t.Fatal("clone shares maps with the original")
	}
}

// TestMergeHigherTotalWins checks the remote merge rule.
func TestMergeHigherTotalWins(t *testing.T) {
	local := Default()
	local.TotalPoints = 50
	remote := local.Clone()
	remote.TotalPoints = 80

	if got := Merge(local, remote); got.TotalPoints != 80 {
		t.Errorf("Merge picked %d, want 80", got.TotalPoints)
	}
	remote.TotalPoints = 50
	remote.Equipped = "Alv"
	if got := Merge(local, remote); got.Equipped != local.Equipped {
		t.Errorf("tie should keep the local record, got %q", got.Equipped)
	}
}

// TestMergeKeepsPurchases: a purchase lowers the total but must survive a
// merge with an older record that still has the points.
func TestMergeKeepsPurchases(t *testing.T) {
	older := Default()
	older.TotalPoints = 250
	older.BestScores["Easy"] = 30
	older.UpdatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	newer := older.Clone()
	if err := newer.Purchase("BabyTejeck"); err != nil {
		t.Fatal(err)
	}
	if err := newer.Equip("BabyTejeck"); err != nil {
		t.Fatal(err)
	}
	newer.BestScores["Medium"] = 12

	for name, got := range map[string]Record{
		"local newer":  Merge(newer, older),
		"remote newer": Merge(older, newer),
	} {
		if !got.Purchased["BabyTejeck"] || got.Equipped != "BabyTejeck" {
			t.Errorf("%s: purchased=%v equipped=%q", name, got.Purchased["BabyTejeck"], got.Equipped)
		}
		if got.BestScores["Easy"] != 30 || got.BestScores["Medium"] != 12 {
			t.Errorf("%s: best scores %v", name, got.BestScores)
		}
		if got.TotalPoints != 250 {
			t.Errorf("%s: TotalPoints = %d, want the higher total", name, got.TotalPoints)
		}
		if !got.UpdatedAt.Equal(newer.UpdatedAt) {
			t.Errorf("%s: UpdatedAt = %v", name, got.UpdatedAt)
		}
	}
}

// TestMergeEquippedFromNewer: an older record cannot re-equip an old skin.
func TestMergeEquippedFromNewer(t *testing.T) {
	local := Default()
	local.TotalPoints = 500
	local.Purchased["Mei"] = true
	local.Equipped = "Mei"
	local.UpdatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	remote := local.Clone()
	remote.TotalPoints = 100
	remote.Equipped = defs.DefaultSkin
	remote.UpdatedAt = local.UpdatedAt.Add(time.Hour)

	got := Merge(local, remote)
	if got.TotalPoints != 500 || got.Equipped != defs.DefaultSkin {
		t.Fatalf("got total=%d equipped=%q", got.TotalPoints, got.Equipped)
	}
}

// TestNormalize repairs a partially filled record.
func TestNormalize(t *testing.T) {
	r := Record{Equipped: "Mei", TotalPoints: -5}
	r.Normalize()

	if r.PlayerID == "" || r.BestScores == nil || r.Purchased == nil {
		t.Fatalf("normalize left empty fields: %+v", r)
	}
	if r.Equipped != defs.DefaultSkin {
		t.Errorf("Equipped = %q, want default skin", r.Equipped)
	}
	if r.TotalPoints != 0 {
		t.Errorf("TotalPoints = %d, want 0", r.TotalPoints)
	}
}
