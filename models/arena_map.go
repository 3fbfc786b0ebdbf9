package models

// ArenaMap is a static map-list entry, immutable after process start.
type ArenaMap struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Theme      string `json:"theme"`
	Difficulty string `json:"difficulty"`
}

var ArenaMaps = []ArenaMap{
	{ID: "roblox", Name: "Roblox World", Theme: "Blocky, Plastic textures", Difficulty: "Easy"},
	{ID: "minecraft", Name: "Minecraft Biome", Theme: "Voxel, Pixelated nature", Difficulty: "Medium"},
	{ID: "youtube", Name: "YouTube HQ", Theme: "Red/White, Video screens", Difficulty: "Hard"},
	{ID: "discord", Name: "Discord Server", Theme: "Blurple, Chat bubbles", Difficulty: "Expert"},
}

// FindArenaMap returns the map entry for id, or nil.
func FindArenaMap(id string) *ArenaMap {
	for i := range ArenaMaps {
		if ArenaMaps[i].ID == id {
			return &ArenaMaps[i]
		}
	}
	return nil
}
