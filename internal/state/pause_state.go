// internal/state/pause_state.go
package state

import (
	"go-dodge-tejecks/internal/app"
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает забег: кадры не идут, таймеры стоят.
type PauseState struct {
	sm   *StateMachine
	game *GameState
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{sm: sm, game: game}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.Host.play(event.SoundPowerUp)
		s.sm.SetState(s.game)
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		// выход из паузы засчитывает очки забега
		s.sm.Host.play(event.SoundPowerUp)
		s.sm.SetState(NewResultState(s.sm, s.game.session.Quit()))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	r := s.sm.Host.Renderer
	r.DrawOverlay(screen, 0.5)
	r.DrawLines(screen, []string{"PAUSED", "", "P / Esc: resume", "Q: quit to menu"}, config.ScreenHeight/2-40, config.TextLightColor)
}

func (s *PauseState) Exit() {}

func (s *PauseState) Abandon() app.Outcome { return s.game.Abandon() }
