// internal/system/spawn.go
package system

import (
	"go-dodge-tejecks/internal/component"
	"go-dodge-tejecks/internal/config"
	"go-dodge-tejecks/internal/defs"
	"go-dodge-tejecks/internal/entity"
	"go-dodge-tejecks/internal/utils"
)

// SpawnRate: вероятность появления врага за кадр. Ступенчатая функция
// от скорости падения по шести ступеням.
func SpawnRate(fallSpeed float64) float64 {
	last := config.SpawnTiers[len(config.SpawnTiers)-1]
	for _, tier := range config.SpawnTiers[:len(config.SpawnTiers)-1] {
		if fallSpeed <= tier.MaxFallSpeed {
			return tier.Rate
		}
	}
	return last.Rate
}

// SpawnSystem вероятностно создаёт врагов и бонусы над экраном.
type SpawnSystem struct {
	ecs       *entity.ECS
	rng       *utils.PRNGService
	enemyRate float64
	loot      defs.LootTable
	Disabled  bool
}

func NewSpawnSystem(ecs *entity.ECS, rng *utils.PRNGService, enemyRate float64, loot defs.LootTable) *SpawnSystem {
	return &SpawnSystem{ecs: ecs, rng: rng, enemyRate: enemyRate, loot: loot}
}

// Update бросает кости на врага и на бонус.
func (s *SpawnSystem) Update() {
	if s.Disabled {
		return
	}
	if s.rng.Chance(s.enemyRate) {
		s.SpawnEnemy(float64(s.randomX()))
	}
	if s.rng.Chance(s.loot.Rate) {
		if t, ok := s.rng.ChooseWeighted(s.loot.Entries); ok {
			s.SpawnPowerUp(float64(s.randomX()), config.PowerUpSpawnY, t)
		}
	}
}

// SpawnEnemy добавляет врага случайного размера в колонке x.
func (s *SpawnSystem) SpawnEnemy(x float64) *component.Hazard {
	h := component.NewEnemy(
		s.ecs.NewEntity(),
		x,
		float64(s.rng.IntRange(config.EnemyMinSize, config.EnemyMaxSize)),
		s.rng.Uniform(-2, 2),
		s.rng.Intn(len(config.EnemyColors)),
	)
	s.ecs.Hazards = append(s.ecs.Hazards, h)
	return h
}

// SpawnPowerUp добавляет бонус заданного типа.
func (s *SpawnSystem) SpawnPowerUp(x, y float64, t defs.PowerUpType) *component.Hazard {
	h := component.NewPowerUp(s.ecs.NewEntity(), x, y, t, s.rng.Uniform(0, 6.28))
	s.ecs.Hazards = append(s.ecs.Hazards, h)
	return h
}

func (s *SpawnSystem) randomX() int {
	return s.rng.IntRange(config.EnemySpawnPad, config.ScreenWidth-config.EnemySpawnPad)
}
