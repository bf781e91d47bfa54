// internal/component/game_state.go
package component

// GameState: фаза забега.
type GameState int

const (
	Running GameState = iota
	GameOver
	Victory
	Quit
)

// Terminal сообщает, что забег завершён и дальше не обновляется.
func (s GameState) Terminal() bool {
	return s != Running
}

func (s GameState) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	case Victory:
		return "victory"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// RunState: счётчики текущего забега.
type RunState struct {
	Points        int
	Combo         int
	ComboTimer    int
	MaxCombo      int
	Destroyed     int
	DodgeStreak   int
	AutoSaveTimer int
	Frame         int
}
