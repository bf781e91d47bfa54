// internal/component/player.go
package component

import "go-dodge-tejecks/internal/config"

// Player хранит положение и скин игрока. Таймеры бонусов, щиты и патроны
// живут в StatusEffects.
type Player struct {
	X, Y      float64 // левый верхний угол спрайта
	BaseSpeed float64
	Skin      string
	Bob       float64 // фаза покачивания, только для отрисовки
}

// NewPlayer ставит игрока по центру у нижнего края.
func NewPlayer(skin string) *Player {
	return &Player{
		X:         config.ScreenWidth/2 - config.PlayerSize/2,
		Y:         config.PlayerStartY,
		BaseSpeed: config.PlayerBaseSpeed,
		Skin:      skin,
	}
}

// Rect: полный спрайт; им подбираются бонусы.
func (p *Player) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: config.PlayerSize, H: config.PlayerSize}
}

// Hitbox: уменьшенный прямоугольник для столкновений с опасностями.
func (p *Player) Hitbox() Rect {
	return p.Rect().Inset(config.PlayerHitboxInset)
}

// Center: центр спрайта; в него целится босс.
func (p *Player) Center() (float64, float64) {
	return p.X + config.PlayerSize/2, p.Y + config.PlayerSize/2
}
