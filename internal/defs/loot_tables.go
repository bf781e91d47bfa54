// internal/defs/loot_tables.go
package defs

import "go-dodge-tejecks/internal/config"

// LootEntry представляет одну запись в таблице выпадения бонусов.
// Weight: относительный шанс выпадения.
type LootEntry struct {
	Type   PowerUpType
	Weight int
}

// LootTable: полная таблица выпадения для режима вместе с вероятностью
// появления бонуса за кадр.
type LootTable struct {
	Rate    float64
	Entries []LootEntry
}

// SurvivalLoot: бонусы обычного режима.
var SurvivalLoot = LootTable{
	Rate: config.SurvivalPowerUpRate,
	Entries: []LootEntry{
		{Type: PowerUpCoin, Weight: 40},
		{Type: PowerUpShield, Weight: 12},
		{Type: PowerUpSpeed, Weight: 12},
		{Type: PowerUpSlowMo, Weight: 8},
		{Type: PowerUpMagnet, Weight: 8},
		{Type: PowerUpBomb, Weight: 5},
		{Type: PowerUpRapid, Weight: 5},
		{Type: PowerUpDouble, Weight: 5},
		{Type: PowerUpAmmo, Weight: 5},
	},
}

// BossLoot: в бою с боссом нет монет, бомб, замедления и магнита.
var BossLoot = LootTable{
	Rate: config.BossPowerUpRate,
	Entries: []LootEntry{
		{Type: PowerUpShield, Weight: 20},
		{Type: PowerUpSpeed, Weight: 15},
		{Type: PowerUpRapid, Weight: 20},
		{Type: PowerUpDouble, Weight: 20},
		{Type: PowerUpAmmo, Weight: 25},
	},
}
