// internal/audio/sound_manager.go
package audio

import (
	"fmt"
	"sync"
	"time"

	"go-dodge-tejecks/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"
)

const sampleRate = beep.SampleRate(44100)

// Tone: синусоида фиксированной частоты и длительности.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Tones: звук для каждого звукового события.
var Tones = map[event.EventType]Tone{
	event.SoundCollect:   {880, 100 * time.Millisecond},
	event.SoundPowerUp:   {1200, 150 * time.Millisecond},
	event.SoundHit:       {200, 300 * time.Millisecond},
	event.SoundDodge:     {600, 50 * time.Millisecond},
	event.SoundLaser:     {1500, 80 * time.Millisecond},
	event.SoundExplosion: {150, 400 * time.Millisecond},
	event.SoundBomb:      {100, 500 * time.Millisecond},
}

// SoundManager проигрывает звуковые события через микшер beep.
// Без инициализации все вызовы молча ничего не делают: игра работает и без звука.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // в единицах effects.Volume (log2)
	initialized bool
	played      int
}

var _ event.Listener = (*SoundManager)(nil)

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}, volume: -1}
}

// Initialize открывает устройство вывода. Повторный вызов ничего не делает.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// OnEvent: подписчик диспетчера: звук на событие, fire-and-forget.
func (sm *SoundManager) OnEvent(e event.Event) {
	tone, ok := Tones[e.Type]
	if !ok {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s, err := toneStreamer(tone)
	if err != nil {
		log.Debug().Err(err).Str("sound", string(e.Type)).Msg("tone skipped")
		return
	}
	speaker.Lock()
	sm.mixer.Add(&effects.Volume{Streamer: s, Base: 2, Volume: sm.volume})
	speaker.Unlock()
	sm.played++
}

// Played: сколько звуков отправлено в микшер.
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// Cleanup очищает микшер и закрывает устройство.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

func toneStreamer(t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(t.Duration), sine), nil
}
