// internal/state/state.go
package state

import (
	"go-dodge-tejecks/internal/app"
	"go-dodge-tejecks/internal/defs"
	"go-dodge-tejecks/internal/event"
	"go-dodge-tejecks/internal/profile"
	"go-dodge-tejecks/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

// State: интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Host: то, что состояния получают от main: уровни, профиль, куда
// складывать сохранения, чем рисовать и чем озвучивать.
type Host struct {
	Levels      defs.Levels
	Profile     *profile.Record
	Checkpoints app.Checkpointer
	Renderer    *render.FieldRenderer
	Sound       event.Listener // nil: без звука
	Seed        int64
}

// StateMachine: структура для управления состояниями
type StateMachine struct {
	current State
	Host    *Host
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(host *Host) *StateMachine {
	return &StateMachine{Host: host}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current: активное состояние.
func (sm *StateMachine) Current() State { return sm.current }

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Abandoner: состояние с незавершённым забегом.
type Abandoner interface {
	Abandon() app.Outcome
}

// Shutdown вызывается при закрытии окна: незавершённый забег засчитывается
// как выход из паузы.
func (sm *StateMachine) Shutdown() {
	if a, ok := sm.current.(Abandoner); ok {
		o := a.Abandon()
		log.Info().Str("level", o.Level).Int("score", o.Score).Msg("run abandoned on exit")
	}
	sm.SetState(nil)
}

// checkpoint отдаёт копию профиля на сохранение.
func (h *Host) checkpoint() {
	if h.Checkpoints != nil {
		h.Checkpoints.Enqueue(h.Profile.Clone())
	}
}

// play озвучивает действие в меню.
func (h *Host) play(t event.EventType) {
	if h.Sound != nil {
		h.Sound.OnEvent(event.Event{Type: t})
	}
}
