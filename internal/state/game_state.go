// internal/state/game_state.go
package state

import (
	"go-dodge-tejecks/internal/app"
	"go-dodge-tejecks/internal/defs"
	"go-dodge-tejecks/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
)

// GameState: идущий забег. Один вызов Update: один кадр симуляции.
type GameState struct {
	sm      *StateMachine
	session *app.Session
	last    system.Snapshot
}

func NewGameState(sm *StateMachine, level defs.Level) *GameState {
	h := sm.Host
	s := app.NewSession(level, h.Profile, h.Checkpoints, app.Options{Seed: h.Seed})
	if h.Sound != nil {
		s.EventDispatcher.SubscribeSounds(h.Sound)
	}
	return &GameState{sm: sm, session: s}
}

func (g *GameState) Enter() {
	log.Info().Str("level", g.session.Level.Name).Bool("boss", g.session.Level.Boss).Msg("run started")
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	res := g.session.Step(readInput())
	g.last = res.Snapshot
	if res.Outcome != nil {
		g.sm.SetState(NewResultState(g.sm, *res.Outcome))
	}
}

// readInput: клавиатура в намерения кадра. Стрельба автоматическая.
func readInput() app.Input {
	return app.Input{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:      true,
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	if g.last.Sprites == nil {
		g.last = g.session.RenderSystem.Snapshot(g.session.Level.Name, g.session.Profile().TotalPoints)
	}
	g.sm.Host.Renderer.Draw(screen, g.last)
}

func (g *GameState) Exit() {}

// Abandon засчитывает забег, если окно закрыли посреди игры.
func (g *GameState) Abandon() app.Outcome { return g.session.Quit() }
