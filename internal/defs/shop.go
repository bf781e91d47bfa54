// internal/defs/shop.go
package defs

// ShopItem: скин игрока, который можно купить за накопленные очки.
type ShopItem struct {
	Name string
	Cost int
}

// DefaultSkin куплен и надет с самого начала.
const DefaultSkin = "EMDR Tejeck"

// ShopItems: каталог скинов в порядке показа.
var ShopItems = []ShopItem{
	{Name: DefaultSkin, Cost: 0},
	{Name: "BabyTejeck", Cost: 200},
	{Name: "Amelia", Cost: 250},
	{Name: "Evan", Cost: 300},
	{Name: "Mei", Cost: 350},
	{Name: "Alv", Cost: 400},
}

// FindShopItem ищет скин по имени.
func FindShopItem(name string) (ShopItem, bool) {
	for _, item := range ShopItems {
		if item.Name == name {
			return item, true
		}
	}
	return ShopItem{}, false
}
