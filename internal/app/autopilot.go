// internal/app/autopilot.go
package app

import (
	"math"

	"go-dodge-tejecks/internal/component"
	"go-dodge-tejecks/internal/config"
)

// autopilotLookahead: на сколько пикселей над игроком смотрит автопилот.
const autopilotLookahead = 220.0

// Autopilot это простой бот для безголового прогона: уходит от ближайшей
// угрозы над головой, иначе тянется к ближайшему бонусу.
func Autopilot(s *Session) Input {
	p := s.ECS.Player
	px, _ := p.Center()
	sprite := p.Rect()
	in := Input{Fire: true}

	var threats []component.Rect
	for _, h := range s.ECS.Hazards {
		if h.IsEnemy() {
			threats = append(threats, h.Rect())
		}
	}
	for _, f := range s.ECS.Fires {
		threats = append(threats, f.Rect())
	}

	bestDist := math.Inf(1)
	var threatX float64
	found := false
	for _, r := range threats {
		bottom := r.Y + r.H
		if bottom < sprite.Y-autopilotLookahead || r.Y > sprite.Y+sprite.H {
			continue
		}
		if r.X+r.W < sprite.X-config.PlayerSize/2 || r.X > sprite.X+sprite.W+config.PlayerSize/2 {
			continue
		}
		if d := sprite.Y - bottom; d < bestDist {
			bestDist, threatX, found = d, r.X+r.W/2, true
		}
	}
	if found {
		goLeft := threatX >= px
		// у стены уходим в другую сторону
		if goLeft && sprite.X <= config.PlayerBaseSpeed {
			goLeft = false
		} else if !goLeft && sprite.X+sprite.W >= config.ScreenWidth-config.PlayerBaseSpeed {
			goLeft = true
		}
		in.MoveLeft, in.MoveRight = goLeft, !goLeft
		return in
	}

	target, ok := nearestPowerUp(s, px)
	if ok && math.Abs(target-px) > config.PlayerBaseSpeed {
		in.MoveLeft, in.MoveRight = target < px, target > px
	}
	return in
}

func nearestPowerUp(s *Session, px float64) (float64, bool) {
	best, found := math.Inf(1), false
	var x float64
	for _, h := range s.ECS.Hazards {
		if h.IsEnemy() {
			continue
		}
		r := h.Rect()
		cx := r.X + r.W/2
		if d := math.Abs(cx - px); d < best {
			best, x, found = d, cx, true
		}
	}
	return x, found
}
