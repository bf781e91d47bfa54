package ui

import "testing"

// TestFillWidth clamps to the bar and treats an empty magazine as zero.
func TestFillWidth(t *testing.T) {
	tests := []struct {
		cur, max int
		want     float32
	}{
		{10, 30, 40}, {30, 30, 120}, {45, 30, 120}, {0, 30, 0}, {5, 0, 0},
	}
	for _, tt := range tests {
		if got := FillWidth(tt.cur, tt.max, 120); got != tt.want {
			t.Errorf("FillWidth(%d, %d) = %v, want %v", tt.cur, tt.max, got, tt.want)
		}
	}
}

// TestShieldColors
func TestShieldColors(t *testing.T) {
	if ShieldColor(0, 1) != shieldLastColor {
		t.Error("a single shield is drawn as the last one")
	}
	if ShieldColor(1, 3) != shieldColor || ShieldColor(3, 3) != shieldEmptyColor {
		t.Error("filled and empty slots")
	}
	i := NewShieldIndicator(10, 20)
	x0, _ := i.CircleCenter(0)
	x1, y1 := i.CircleCenter(1)
	if x1-x0 != ShieldCircleRadius*2+ShieldCircleSpacing || y1 != 20+ShieldCircleRadius {
		t.Fatalf("centers: %v %v %v", x0, x1, y1)
	}
}
