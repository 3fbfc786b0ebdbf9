package models

import "time"

// ShopItem is a static catalog entry for consumables, equipment and weapons.
type ShopItem struct {
	ID          string         `json:"item_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       int64          `json:"price"`
	Type        string         `json:"type"` // consumable, equipment, special, weapon
	StatsBoost  map[string]int `json:"stats_boost"`
}

// InventoryItem is one purchased item row for a player.
type InventoryItem struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	PlayerID    string    `gorm:"index;not null" json:"player_id"`
	ItemID      string    `gorm:"not null" json:"item_id"`
	Quantity    int       `gorm:"default:1" json:"quantity"`
	PurchasedAt time.Time `json:"purchased_at"`
}

var ShopItems = []ShopItem{
	{ID: "health_potion", Name: "Poción de Vida", Description: "+50 HP", Price: 100, Type: "consumable", StatsBoost: map[string]int{"health": 50}},
	{ID: "speed_boots", Name: "Botas de Velocidad", Description: "+2 Velocidad", Price: 250, Type: "equipment", StatsBoost: map[string]int{"speed": 2}},
	{ID: "shield", Name: "Escudo", Description: "+5 Defensa", Price: 300, Type: "equipment", StatsBoost: map[string]int{"defense": 5}},
	{ID: "power_gem", Name: "Gema de Poder", Description: "+3 Ataque", Price: 200, Type: "equipment", StatsBoost: map[string]int{"attack": 3}},
	{ID: "lucky_coin", Name: "Moneda de la Suerte", Description: "x2 monedas en partida", Price: 500, Type: "special", StatsBoost: map[string]int{}},
}

var ShopWeapons = []ShopItem{
	{ID: "diamond_sword", Name: "Espada de Diamante", Description: "+10 Ataque", Price: 600, Type: "weapon", StatsBoost: map[string]int{"attack": 10}},
	{ID: "iron_axe", Name: "Hacha de Hierro", Description: "+8 Ataque, +2 Defensa", Price: 500, Type: "weapon", StatsBoost: map[string]int{"attack": 8, "defense": 2}},
	{ID: "golden_bow", Name: "Arco Dorado", Description: "+7 Ataque, +3 Velocidad", Price: 550, Type: "weapon", StatsBoost: map[string]int{"attack": 7, "speed": 3}},
	{ID: "magic_staff", Name: "Bastón Mágico", Description: "+12 Ataque especial", Price: 700, Type: "weapon", StatsBoost: map[string]int{"attack": 12}},
	{ID: "legendary_hammer", Name: "Martillo Legendario", Description: "+15 Ataque, -1 Velocidad", Price: 900, Type: "weapon", StatsBoost: map[string]int{"attack": 15, "speed": -1}},
}

// FindShopItem searches items then weapons for id, or nil.
func FindShopItem(id string) *ShopItem {
	for i := range ShopItems {
		if ShopItems[i].ID == id {
			return &ShopItems[i]
		}
	}
	for i := range ShopWeapons {
		if ShopWeapons[i].ID == id {
			return &ShopWeapons[i]
		}
	}
	return nil
}
