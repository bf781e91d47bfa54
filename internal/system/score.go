// internal/system/score.go
package system

import (
	"fmt"
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/entity"
)

// ScoreSystem ведёт очки забега и комбо.
type ScoreSystem struct {
	ecs *entity.ECS
}

func NewScoreSystem(ecs *entity.ECS) *ScoreSystem {
	return &ScoreSystem{ecs: ecs}
}

// Update: затухание комбо. Кадр, в котором таймер дошёл до нуля, комбо ещё
// держит; сброс происходит на следующем кадре.
func (s *ScoreSystem) Update() {
	run := s.ecs.Run
	if run.ComboTimer > 0 {
		run.ComboTimer--
	} else {
		run.Combo = 0
	}
}

// Award начисляет очки. Отрицательная дельта: ошибка программиста.
func (s *ScoreSystem) Award(points int) {
	if points < 0 {
		panic(fmt.Sprintf("system: negative score delta %d", points))
	}
	s.ecs.Run.Points += points
}

// Combo: текущий множитель.
func (s *ScoreSystem) Combo() int {
	return s.ecs.Run.Combo
}

// Bump увеличивает комбо (до максимума) и перезапускает окно.
func (s *ScoreSystem) Bump() {
	run := s.ecs.Run
	run.Combo = min(run.Combo+1, config.MaxCombo)
	run.ComboTimer = config.ComboWindow
	run.MaxCombo = max(run.MaxCombo, run.Combo)
}

// Dodge: враг ушёл за нижний край. Возвращает текущую серию уворотов.
func (s *ScoreSystem) Dodge() int {
	s.Award(config.DodgePoints + s.Combo())
	s.ecs.Run.DodgeStreak++
	s.Bump()
	return s.ecs.Run.DodgeStreak
}

// Kill: враг сбит лазером.
func (s *ScoreSystem) Kill() {
	s.Award(config.KillPoints + s.Combo())
	s.ecs.Run.Destroyed++
	s.Bump()
}

// Coin: подобрана монета.
func (s *ScoreSystem) Coin() {
	s.Award(config.CoinPoints * (1 + s.Combo()/2))
}

// Bomb: бомба уничтожила n врагов. Комбо не меняется.
func (s *ScoreSystem) Bomb(n int) {
	s.Award(config.BombPoints * n)
	s.ecs.Run.Destroyed += n
}
