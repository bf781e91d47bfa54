// internal/state/menu.go
package state

import (
	"errors"
	"fmt"

	"go-dodge-tejecks/internal/defs"
	"go-dodge-tejecks/internal/event"
	"go-dodge-tejecks/internal/profile"
)

// MenuTab: вкладка меню.
type MenuTab int

const (
	TabLevels MenuTab = iota
	TabShop
)

// Menu: логика меню без ввода и отрисовки: курсор, выбор уровня, магазин.
type Menu struct {
	Tab     MenuTab
	Cursor  int
	Message string
	Sound   event.Listener // nil: без звука

	levels  defs.Levels
	profile *profile.Record
}

func NewMenu(levels defs.Levels, rec *profile.Record) *Menu {
	return &Menu{levels: levels, profile: rec}
}

func (m *Menu) play(t event.EventType) {
	if m.Sound != nil {
		m.Sound.OnEvent(event.Event{Type: t})
	}
}

func (m *Menu) size() int {
	if m.Tab == TabShop {
		return len(defs.ShopItems)
	}
	return len(m.levels)
}

// Move сдвигает курсор по кругу.
func (m *Menu) Move(delta int) {
	n := m.size()
	if n == 0 {
		return
	}
	m.Cursor = ((m.Cursor+delta)%n + n) % n
	m.Message = ""
	m.play(event.SoundCollect)
}

// SwitchTab переключает уровни и магазин.
func (m *Menu) SwitchTab() {
	if m.Tab == TabLevels {
		m.Tab = TabShop
	} else {
		m.Tab = TabLevels
	}
	m.Cursor = 0
	m.Message = ""
	m.play(event.SoundCollect)
}

// Activate: Enter на текущей строке. Для уровня возвращает его, если он открыт.
// В магазине покупает скин или надевает уже купленный; changed сообщает,
// что профиль изменился и его надо сохранить.
func (m *Menu) Activate() (level *defs.Level, changed bool) {
	if m.Tab == TabLevels {
		l := m.levels[m.Cursor]
		if !m.levels.IsUnlocked(l.Name, m.profile.BestScores) {
			prev := m.levels[m.Cursor-1]
			m.Message = fmt.Sprintf("Score %d on %s to unlock", l.UnlockScore, prev.Name)
			m.play(event.SoundHit)
			return nil, false
		}
		m.play(event.SoundPowerUp)
		return &l, false
	}

	item := defs.ShopItems[m.Cursor]
	if m.profile.Purchased[item.Name] {
		if m.profile.Equipped == item.Name {
			return nil, false
		}
		if err := m.profile.Equip(item.Name); err != nil {
			m.Message = err.Error()
			return nil, false
		}
		m.Message = "Equipped " + item.Name
		m.play(event.SoundCollect)
		return nil, true
	}
	if err := m.profile.Purchase(item.Name); err != nil {
		if errors.Is(err, profile.ErrInsufficientPoints) {
			m.Message = fmt.Sprintf("Need %d points", item.Cost)
		} else {
			m.Message = err.Error()
		}
		m.play(event.SoundHit)
		return nil, false
	}
	m.Message = "Purchased " + item.Name
	m.play(event.SoundPowerUp)
	return nil, true
}

// Lines: строки текущей вкладки для отрисовки.
func (m *Menu) Lines() []string {
	var out []string
	if m.Tab == TabLevels {
		for i, l := range m.levels {
			line := l.Name
			if best := m.profile.BestScores[l.Name]; best > 0 {
				line += fmt.Sprintf("  best %d", best)
			}
			if !m.levels.IsUnlocked(l.Name, m.profile.BestScores) {
				line += "  [locked]"
			}
			out = append(out, cursorMark(i == m.Cursor)+line)
		}
		return out
	}
	for i, item := range defs.ShopItems {
		line := fmt.Sprintf("%s  %d", item.Name, item.Cost)
		switch {
		case m.profile.Equipped == item.Name:
			line += "  [equipped]"
		case m.profile.Purchased[item.Name]:
			line += "  [owned]"
		}
		out = append(out, cursorMark(i == m.Cursor)+line)
	}
	return out
}

func cursorMark(on bool) string {
	if on {
		return "> "
	}
	return "  "
}
