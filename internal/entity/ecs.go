// internal/entity/ecs.go
package entity

import (
	"go-dodge-tejecks/internal/component"
	"go-dodge-tejecks/internal/types"
)

// ECS хранит все сущности забега. Списки упорядочены: порядок обхода
// определяет, какой враг первым поймает лазер.
type ECS struct {
	NextID     types.EntityID
	Player     *component.Player
	Effects    *component.StatusEffects
	Run        *component.RunState
	Hazards    []*component.Hazard
	Lasers     []*component.Laser
	Fires      []*component.Fire
	Particles  []*component.Particle
	Explosions []*component.Explosion
	Boss       *component.Boss // nil в режиме выживания
	Shake      *component.ScreenShake
	GameState  component.GameState
}

// NewECS создаёт пустой мир с игроком.
func NewECS(player *component.Player, effects *component.StatusEffects) *ECS {
	return &ECS{
		NextID:    1,
		Player:    player,
		Effects:   effects,
		Run:       &component.RunState{},
		Shake:     &component.ScreenShake{},
		GameState: component.Running,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// EnemyCount: число живых врагов (бонусы не считаются).
func (ecs *ECS) EnemyCount() int {
	n := 0
	for _, h := range ecs.Hazards {
		if h.IsEnemy() {
			n++
		}
	}
	return n
}

// TrimOldest оставляет в списке не больше max последних элементов.
func TrimOldest[T any](list []T, max int) []T {
	if max <= 0 || len(list) <= max {
		return list
	}
	return append(list[:0], list[len(list)-max:]...)
}
