// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-dodge-tejecks/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
)

// MenuState: выбор уровня и магазин скинов.
type MenuState struct {
	sm   *StateMachine
	menu *Menu
}

func NewMenuState(sm *StateMachine) *MenuState {
	menu := NewMenu(sm.Host.Levels, sm.Host.Profile)
	menu.Sound = sm.Host.Sound
	return &MenuState{sm: sm, menu: menu}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		m.menu.Move(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		m.menu.Move(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		m.menu.SwitchTab()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		level, changed := m.menu.Activate()
		if changed {
			log.Info().Str("skin", m.sm.Host.Profile.Equipped).Int("total", m.sm.Host.Profile.TotalPoints).Msg("shop")
			m.sm.Host.checkpoint()
		}
		if level != nil {
			m.sm.SetState(NewGameState(m.sm, *level))
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	r := m.sm.Host.Renderer
	r.DrawBackground(screen)

	title := "DODGE THE TEJECKS"
	hint := "Enter: play   Tab: shop"
	if m.menu.Tab == TabShop {
		title = "SKIN SHOP"
		hint = "Enter: buy / equip   Tab: levels"
	}
	p := m.sm.Host.Profile
	header := []string{
		title,
		fmt.Sprintf("Total points: %d   High score: %d", p.TotalPoints, p.HighScore),
		"",
	}
	r.DrawLines(screen, header, 80, config.TextDarkColor)
	r.DrawLines(screen, m.menu.Lines(), 180, config.TextDarkColor)
	r.DrawLines(screen, []string{m.menu.Message, hint}, config.ScreenHeight-80, config.TextDarkColor)
}

func (m *MenuState) Exit() {}
