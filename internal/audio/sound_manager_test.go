package audio

import (
	"go-dodge-tejecks/internal/event"
	"testing"
)

// TestEverySoundEventHasTone
func TestEverySoundEventHasTone(t *testing.T) {
	for _, et := range event.SoundEvents {
		tone, ok := Tones[et]
		if !ok {
			t.Errorf("no tone for %q", et)
			continue
		}
		if tone.Freq <= 0 || tone.Duration <= 0 {
			t.Errorf("%q: bad tone %+v", et, tone)
		}
	}
}

// TestToneStreamerLength: a tone yields exactly its duration in samples.
func TestToneStreamerLength(t *testing.T) {
	tone := Tones[event.SoundDodge]
	s, err := toneStreamer(tone)
	if err != nil {
		t.Fatalf("toneStreamer: %v", err)
	}
	want := sampleRate.N(tone.Duration)
	buf := make([][2]float64, 512)
	got := 0
	for {
		n, ok := s.Stream(buf)
		got += n
		if !ok {
			break
		}
	}
	if got != want {
		t.Fatalf("samples = %d, want %d", got, want)
	}
}

// TestSoundManagerGracefulDegradation: events without a device are dropped silently.
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()
	d := event.NewDispatcher()
	d.SubscribeSounds(sm)

	for _, et := range event.SoundEvents {
		d.Emit(et)
	}
	d.Emit(event.EnemyDestroyed)
	if sm.Played() != 0 {
		t.Fatalf("Played = %d without a device", sm.Played())
	}
	sm.Cleanup()
}
