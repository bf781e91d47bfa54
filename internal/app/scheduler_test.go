package app

import (
	"context"
	"errors"
	"go-dodge-tejecks/internal/component"
	"testing"
	"time"
)

func ticks(n int) chan time.Time {
	ch := make(chan time.Time, n)
	for i := 0; i < n; i++ {
		ch <- time.Time{}
	}
	return ch
}

// TestFrameDriverStopsOnOutcome runs until the session ends.
func TestFrameDriverStopsOnOutcome(t *testing.T) {
	s, _, _ := newTestSession(t, "Easy")
	frames := 0
	d := &FrameDriver{Session: s, OnFrame: func(FrameResult) { frames++ }}

	h := s.SpawnSystem.SpawnEnemy(400)
	h.Enemy.Size = 40
	px, py := s.ECS.Player.Center()
	h.X, h.Y = px, py-60 // долетит за несколько кадров

	o, err := d.Run(context.Background(), ticks(100), func() Input { return Input{} })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if o.State != component.GameOver {
		t.Fatalf("State = %v", o.State)
	}
	if frames >= 100 || frames == 0 {
		t.Fatalf("frames = %d", frames)
	}
}

// TestFrameDriverCancelQuits finalizes the run when the context is cancelled.
func TestFrameDriverCancelQuits(t *testing.T) {
	s, rec, _ := newTestSession(t, "Easy")
	s.ScoreSystem.Award(7)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o, err := (&FrameDriver{Session: s}).Run(ctx, make(chan time.Time), func() Input { return Input{} })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if o.State != component.Quit || rec.TotalPoints != 7 {
		t.Fatalf("outcome=%+v total=%d", o, rec.TotalPoints)
	}
}

// TestFrameDriverClosedTicker reports a closed tick source.
func TestFrameDriverClosedTicker(t *testing.T) {
	s, _, _ := newTestSession(t, "Easy")
	tick := ticks(3)
	close(tick)

	_, err := (&FrameDriver{Session: s}).Run(context.Background(), tick, func() Input { return Input{} })
	if !errors.Is(err, ErrTickerClosed) {
		t.Fatalf("err = %v, want ErrTickerClosed", err)
	}
	if s.ECS.Run.Frame != 3 {
		t.Fatalf("Frame = %d, want 3 buffered ticks consumed", s.ECS.Run.Frame)
	}
}

// TestFrameDriverSamplesPause holds the session while input reports pause.
func TestFrameDriverSamplesPause(t *testing.T) {
	s, _, _ := newTestSession(t, "Easy")
	tick := ticks(10)
	close(tick)
	n := 0
	input := func() Input {
		n++
		return Input{Pause: n%2 == 0}
	}

	(&FrameDriver{Session: s}).Run(context.Background(), tick, input)
	if s.ECS.Run.Frame != 5 {
		t.Fatalf("Frame = %d, want 5 unpaused frames of 10", s.ECS.Run.Frame)
	}
}
