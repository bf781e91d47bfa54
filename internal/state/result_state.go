// internal/state/result_state.go
package state

import (
	"fmt"

	"go-dodge-tejecks/internal/app"
	"go-dodge-tejecks/internal/component"
	"go-dodge-tejecks/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
)

// ResultState: экран итогов забега.
type ResultState struct {
	sm      *StateMachine
	outcome app.Outcome
}

func NewResultState(sm *StateMachine, o app.Outcome) *ResultState {
	return &ResultState{sm: sm, outcome: o}
}

func (s *ResultState) Enter() {
	log.Info().
		Str("level", s.outcome.Level).
		Str("state", s.outcome.State.String()).
		Int("score", s.outcome.Score).
		Int("max_combo", s.outcome.MaxCombo).
		Int("total", s.sm.Host.Profile.TotalPoints).
		Msg("run ended")
}

func (s *ResultState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm))
	}
}

// Lines: текст экрана итогов.
func (s *ResultState) Lines() []string {
	o := s.outcome
	title := "GAME OVER"
	switch o.State {
	case component.Victory:
		title = "VICTORY!"
	case component.Quit:
		title = "RUN ABANDONED"
	}
	lines := []string{
		title,
		"",
		fmt.Sprintf("Level: %s", o.Level),
		fmt.Sprintf("Score: %d", o.Score),
		fmt.Sprintf("Max combo: x%d", o.MaxCombo),
	}
	if o.Destroyed > 0 {
		lines = append(lines, fmt.Sprintf("Destroyed: %d", o.Destroyed))
	}
	p := s.sm.Host.Profile
	lines = append(lines,
		fmt.Sprintf("Best on level: %d", p.BestScores[o.Level]),
		fmt.Sprintf("Total points: %d", p.TotalPoints),
		"",
		"Enter: back to menu",
	)
	return lines
}

func (s *ResultState) Draw(screen *ebiten.Image) {
	r := s.sm.Host.Renderer
	r.DrawBackground(screen)
	r.DrawLines(screen, s.Lines(), 160, config.TextDarkColor)
}

func (s *ResultState) Exit() {}
