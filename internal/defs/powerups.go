// internal/defs/powerups.go
package defs

import (
	"fmt"
	"go-dodge-tejecks/internal/config"
	"image/color"
)

// PowerUpType: закрытое перечисление типов бонусов.
type PowerUpType int

const (
	PowerUpCoin PowerUpType = iota
	PowerUpShield
	PowerUpSpeed
	PowerUpSlowMo
	PowerUpMagnet
	PowerUpBomb
	PowerUpRapid
	PowerUpDouble
	PowerUpAmmo

	powerUpTypeCount // должен оставаться последним
)

// PowerUpDef: статическое описание бонуса.
type PowerUpDef struct {
	Name     string
	Color    color.RGBA
	Symbol   string
	Duration int // в кадрах; 0: мгновенный эффект
}

// PowerUpDefs индексируется PowerUpType. Длина массива проверяется компилятором.
var PowerUpDefs = [powerUpTypeCount]PowerUpDef{
	PowerUpCoin:   {Name: "coin", Color: config.Yellow, Symbol: "$", Duration: 0},
	PowerUpShield: {Name: "shield", Color: config.Cyan, Symbol: "S", Duration: 300},
	PowerUpSpeed:  {Name: "speed", Color: config.Green, Symbol: ">", Duration: 300},
	PowerUpSlowMo: {Name: "slowmo", Color: config.Purple, Symbol: "~", Duration: 200},
	PowerUpMagnet: {Name: "magnet", Color: config.Orange, Symbol: "M", Duration: 250},
	PowerUpBomb:   {Name: "bomb", Color: config.Red, Symbol: "B", Duration: 0},
	PowerUpRapid:  {Name: "rapid", Color: color.RGBA{255, 100, 100, 255}, Symbol: "R", Duration: 300},
	PowerUpDouble: {Name: "double", Color: color.RGBA{100, 100, 255, 255}, Symbol: "D", Duration: 400},
	PowerUpAmmo:   {Name: "ammo", Color: color.RGBA{200, 200, 200, 255}, Symbol: "A", Duration: 0},
}

// AllPowerUpTypes перечисляет все типы в порядке объявления.
func AllPowerUpTypes() []PowerUpType {
	out := make([]PowerUpType, 0, powerUpTypeCount)
	for t := PowerUpType(0); t < powerUpTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

// Def возвращает описание типа. Неизвестный тип: ошибка программиста.
func (t PowerUpType) Def() PowerUpDef {
	if t < 0 || t >= powerUpTypeCount {
		panic(fmt.Sprintf("defs: unknown power-up type %d", int(t)))
	}
	return PowerUpDefs[t]
}

func (t PowerUpType) String() string {
	if t < 0 || t >= powerUpTypeCount {
		return fmt.Sprintf("PowerUpType(%d)", int(t))
	}
	return PowerUpDefs[t].Name
}

// Duration: длительность эффекта в кадрах.
func (t PowerUpType) Duration() int {
	return t.Def().Duration
}

// Timed сообщает, является ли бонус таймером статуса.
// Щит: не таймер, а счётчик жизней, хотя в таблице у него осталась длительность.
func (t PowerUpType) Timed() bool {
	switch t {
	case PowerUpSpeed, PowerUpSlowMo, PowerUpMagnet, PowerUpRapid, PowerUpDouble:
		return true
	case PowerUpCoin, PowerUpShield, PowerUpBomb, PowerUpAmmo:
		return false
	}
	panic(fmt.Sprintf("defs: unknown power-up type %d", int(t)))
}
