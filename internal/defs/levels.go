// internal/defs/levels.go
package defs

import (
	"errors"
	"fmt"
)

// ErrUnknownLevel возвращается при обращении к уровню, которого нет в списке.
var ErrUnknownLevel = errors.New("unknown level")

// Level описывает параметры забега, которые выбирает меню.
type Level struct {
	Name        string  `yaml:"name"`
	FallSpeed   float64 `yaml:"fall_speed"`
	Boss        bool    `yaml:"boss"`
	UnlockScore int     `yaml:"unlock_score"`
}

// Levels: упорядоченный список уровней.
type Levels []Level

// Find ищет уровень по имени.
func (ls Levels) Find(name string) (Level, int, error) {
	for i, l := range ls {
		if l.Name == name {
			return l, i, nil
		}
	}
	return Level{}, -1, fmt.Errorf("level %q: %w", name, ErrUnknownLevel)
}

// Names возвращает имена уровней в порядке открытия.
func (ls Levels) Names() []string {
	names := make([]string, len(ls))
	for i, l := range ls {
		names[i] = l.Name
	}
	return names
}

// IsUnlocked проверяет, открыт ли уровень: первый открыт всегда, остальные
// требуют лучшего результата на предыдущем уровне не ниже порога.
func (ls Levels) IsUnlocked(name string, bestScores map[string]int) bool {
	_, idx, err := ls.Find(name)
	if err != nil {
		return false
	}
	if idx == 0 {
		return true
	}
	prev := ls[idx-1]
	return bestScores[prev.Name] >= ls[idx].UnlockScore
}

func (ls Levels) validate() error {
	if len(ls) == 0 {
		return errors.New("no levels defined")
	}
	seen := make(map[string]bool, len(ls))
	for _, l := range ls {
		if l.Name == "" {
			return errors.New("level without name")
		}
		if seen[l.Name] {
			return fmt.Errorf("duplicate level %q", l.Name)
		}
		seen[l.Name] = true
		if !l.Boss && l.FallSpeed <= 0 {
			return fmt.Errorf("level %q: fall speed must be positive", l.Name)
		}
	}
	return nil
}
