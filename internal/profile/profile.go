// internal/profile/profile.go
package profile

import (
	"errors"
	"fmt"
	"go-dodge-tejecks/internal/defs"
	"maps"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUnknownItem        = errors.New("unknown shop item")
	ErrNotPurchased       = errors.New("item not purchased")
	ErrInsufficientPoints = errors.New("not enough points")
)

// Record: сохраняемый прогресс игрока. Хост владеет одним экземпляром и
// передаёт его явно; в хранилище уходят только копии (Clone).
type Record struct {
	PlayerID    string          `json:"playerId" msgpack:"playerId"`
	TotalPoints int             `json:"totalPoints" msgpack:"totalPoints"`
	HighScore   int             `json:"highScore" msgpack:"highScore"`
	BestScores  map[string]int  `json:"bestScores" msgpack:"bestScores"`
	Purchased   map[string]bool `json:"purchasedItems" msgpack:"purchasedItems"`
	Equipped    string          `json:"equippedItem" msgpack:"equippedItem"`
	UpdatedAt   time.Time       `json:"updatedAt" msgpack:"updatedAt"`
}

// Default возвращает чистый профиль: ноль очков, куплен и надет только стандартный скин.
func Default() Record {
	return Record{
		PlayerID:   uuid.NewString(),
		BestScores: make(map[string]int),
		Purchased:  map[string]bool{defs.DefaultSkin: true},
		Equipped:   defs.DefaultSkin,
	}
}

// Normalize чинит запись, прочитанную с диска: пустые карты, отсутствующий
// id, надетый, но не купленный скин.
func (r *Record) Normalize() {
	if r.PlayerID == "" {
		r.PlayerID = uuid.NewString()
	}
	if r.BestScores == nil {
		r.BestScores = make(map[string]int)
	}
	if r.Purchased == nil {
		r.Purchased = make(map[string]bool)
	}
	r.Purchased[defs.DefaultSkin] = true
	if !r.Purchased[r.Equipped] {
		r.Equipped = defs.DefaultSkin
	}
	r.TotalPoints = max(0, r.TotalPoints)
	r.HighScore = max(0, r.HighScore)
}

// Clone: глубокая копия.
func (r Record) Clone() Record {
	c := r
	c.BestScores = maps.Clone(r.BestScores)
	c.Purchased = maps.Clone(r.Purchased)
	if c.BestScores == nil {
		c.BestScores = make(map[string]int)
	}
	if c.Purchased == nil {
		c.Purchased = make(map[string]bool)
	}
	return c
}

// UpdateBest запоминает лучший результат уровня. Возвращает true, если рекорд побит.
func (r *Record) UpdateBest(level string, points int) bool {
	if points <= r.BestScores[level] {
		return false
	}
	r.BestScores[level] = points
	return true
}

// FinishRun: забег закончился смертью или победой: очки идут в общий
// счёт, обновляются рекорд и лучший результат уровня.
func (r *Record) FinishRun(level string, points int) {
	r.TotalPoints += points
	r.HighScore = max(r.HighScore, points)
	r.UpdateBest(level, points)
	r.UpdatedAt = time.Now().UTC()
}

// QuitRun: выход из паузы: очки засчитываются, рекорд не обновляется.
func (r *Record) QuitRun(level string, points int) {
	r.TotalPoints += points
	r.UpdateBest(level, points)
	r.UpdatedAt = time.Now().UTC()
}

// Purchase покупает скин за накопленные очки. Уже купленный скин не списывает очки.
func (r *Record) Purchase(name string) error {
	item, ok := defs.FindShopItem(name)
	if !ok {
		return fmt.Errorf("purchase %q: %w", name, ErrUnknownItem)
	}
	if r.Purchased[name] {
		return nil
	}
	if r.TotalPoints < item.Cost {
		return fmt.Errorf("purchase %q: need %d more: %w", name, item.Cost-r.TotalPoints, ErrInsufficientPoints)
	}
	r.TotalPoints -= item.Cost
	r.Purchased[name] = true
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// Equip надевает купленный скин.
func (r *Record) Equip(name string) error {
	if _, ok := defs.FindShopItem(name); !ok {
		return fmt.Errorf("equip %q: %w", name, ErrUnknownItem)
	}
	if !r.Purchased[name] {
		return fmt.Errorf("equip %q: %w", name, ErrNotPurchased)
	}
	r.Equipped = name
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// Merge сводит локальную и удалённую запись одного игрока. Очки берутся
// из записи с большим TotalPoints (при равенстве: локальная), покупки
// объединяются, рекорды берутся максимальные, надетый скин: из более
// свежей записи.
func Merge(local, remote Record) Record {
	base, other := local, remote
	if remote.TotalPoints > local.TotalPoints {
		base, other = remote, local
	}
	out := base.Clone()
	for name, ok := range other.Purchased {
		if ok {
			out.Purchased[name] = true
		}
	}
	for level, best := range other.BestScores {
		out.BestScores[level] = max(out.BestScores[level], best)
	}
	out.HighScore = max(out.HighScore, other.HighScore)

	newer := local
	if remote.UpdatedAt.After(local.UpdatedAt) {
		newer = remote
	}
	if out.Purchased[newer.Equipped] {
		out.Equipped = newer.Equipped
	}
	if other.UpdatedAt.After(out.UpdatedAt) {
		out.UpdatedAt = other.UpdatedAt
	}
	return out
}
