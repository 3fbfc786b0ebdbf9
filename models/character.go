package models

// Character is a static roster entry. The roster never mutates after
// process start, so it is shared read-only across requests.
type Character struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Desc           string `json:"desc"`
	Color          string `json:"color"`
	Health         int    `json:"health"`
	Attack         int    `json:"attack"`
	Defense        int    `json:"defense"`
	Speed          int    `json:"speed"`
	SpecialAbility string `json:"special_ability"`
	IsDLC          bool   `json:"is_dlc"`
}

var Characters = []Character{
	{ID: "meultra4111", Name: "Meultra4111", Role: "Leader", Desc: "Fuerte y balanceado. Espada de Minecraft.", Color: "#00FF94", Health: 120, Attack: 18, Defense: 12, Speed: 6, SpecialAbility: "Thunder Strike"},
	{ID: "olivo_10", Name: "Olivo_10", Role: "Striker", Desc: "Elegante con mazo. Daño pesado.", Color: "#FFFF00", Health: 150, Attack: 25, Defense: 8, Speed: 3, SpecialAbility: "Ground Slam"},
	{ID: "gato", Name: "Gato", Role: "Speedster", Desc: "Rápido, estilo Roblox.", Color: "#FFA500", Health: 80, Attack: 12, Defense: 8, Speed: 10, SpecialAbility: "Quick Dash"},
	{ID: "jhon", Name: "Jhon", Role: "Assassin", Desc: "Sigiloso, espadas negras.", Color: "#FFFFFF", Health: 90, Attack: 20, Defense: 6, Speed: 8, SpecialAbility: "Shadow Strike"},
	{ID: "riptor", Name: "Riptor", Role: "Fighter", Desc: "Combate cercano.", Color: "#FF0000", Health: 110, Attack: 16, Defense: 14, Speed: 5, SpecialAbility: "Rampage"},
	{ID: "martin", Name: "Martin", Role: "Mage", Desc: "Misterioso, ataques a distancia.", Color: "#A020F0", Health: 70, Attack: 22, Defense: 5, Speed: 4, SpecialAbility: "Magic Blast"},
	{ID: "botsito", Name: "Botsito", Role: "Tank", Desc: "Resistente, forma humanoide.", Color: "#0000FF", Health: 180, Attack: 10, Defense: 20, Speed: 2, SpecialAbility: "Iron Wall"},
	{ID: "brayan", Name: "Brayan", Role: "Beast", Desc: "Salvaje, perro alemán.", Color: "#8B4513", Health: 130, Attack: 19, Defense: 11, Speed: 7, SpecialAbility: "Beast Mode"},
	{ID: "thisand", Name: "Thisand", Role: "Boss", Desc: "Aura blanca intensa. Lanza peces.", Color: "#FFFFFF", Health: 300, Attack: 35, Defense: 25, Speed: 6, SpecialAbility: "Fish Storm", IsDLC: true},
	{ID: "notfik", Name: "Notfik", Role: "DLC Warrior", Desc: "Guerrero del DLC.", Color: "#FF00FF", Health: 140, Attack: 23, Defense: 13, Speed: 6, SpecialAbility: "Chaos Wave", IsDLC: true},
	{ID: "nooblord", Name: "Nooblord", Role: "DLC Tank", Desc: "Tank del DLC.", Color: "#00FFFF", Health: 160, Attack: 14, Defense: 18, Speed: 4, SpecialAbility: "Noob Shield", IsDLC: true},
}

// FindCharacter returns the roster entry for id, or nil.
func FindCharacter(id string) *Character {
	for i := range Characters {
		if Characters[i].ID == id {
			return &Characters[i]
		}
	}
	return nil
}
