package models

import "time"

// Achievement is a static definition: display metadata only. Each entry is
// paired 1:1 with a predicate in services.AchievementRules — the id is the
// join key. Definitions are never persisted per player; unlocks are.
type Achievement struct {
	ID          string `json:"achievement_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
}

// PlayerAchievement is one unlock row per (player, achievement) pair.
// The composite primary key makes the insert naturally idempotent.
type PlayerAchievement struct {
	PlayerID      string    `gorm:"primaryKey" json:"player_id"`
	AchievementID string    `gorm:"primaryKey" json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

// Achievements is the static definition table, loaded once and shared
// read-only across requests.
var Achievements = []Achievement{
	// Combat: cumulative kills
	{ID: "first_blood", Title: "Primera Sangre", Description: "Derrota tu primer enemigo", Category: "combat", Icon: "⚔️"},
	{ID: "kill_5", Title: "Cazador", Description: "Derrota 5 enemigos", Category: "combat", Icon: "🗡️"},
	{ID: "kill_10", Title: "Guerrero", Description: "Derrota 10 enemigos", Category: "combat", Icon: "⚔️"},
	{ID: "kill_25", Title: "Matador", Description: "Derrota 25 enemigos", Category: "combat", Icon: "🛡️"},
	{ID: "kill_50", Title: "Exterminador", Description: "Derrota 50 enemigos", Category: "combat", Icon: "💀"},
	{ID: "veteran", Title: "Veterano", Description: "Derrota 100 enemigos", Category: "combat", Icon: "🎖️"},
	{ID: "kill_250", Title: "Leyenda de Guerra", Description: "Derrota 250 enemigos", Category: "combat", Icon: "🏅"},
	{ID: "kill_500", Title: "Máquina de Combate", Description: "Derrota 500 enemigos", Category: "combat", Icon: "🤖"},

	// Victory: cumulative wins
	{ID: "first_win", Title: "Primera Victoria", Description: "Gana tu primera partida", Category: "victory", Icon: "🏆"},
	{ID: "win_5", Title: "Ganador", Description: "Gana 5 partidas", Category: "victory", Icon: "🥉"},
	{ID: "win_10", Title: "Campeón", Description: "Gana 10 partidas", Category: "victory", Icon: "🥈"},
	{ID: "win_25", Title: "Invencible", Description: "Gana 25 partidas", Category: "victory", Icon: "🥇"},

	// Progression: games played
	{ID: "games_10", Title: "Habitual", Description: "Juega 10 partidas", Category: "progression", Icon: "🎮"},
	{ID: "games_25", Title: "Dedicado", Description: "Juega 25 partidas", Category: "progression", Icon: "🕹️"},
	{ID: "games_50", Title: "Incansable", Description: "Juega 50 partidas", Category: "progression", Icon: "🔁"},

	// Combat: cumulative score
	{ID: "score_10000", Title: "Puntuador", Description: "Acumula 10000 puntos", Category: "combat", Icon: "💯"},
	{ID: "score_50000", Title: "Máximo Anotador", Description: "Acumula 50000 puntos", Category: "combat", Icon: "🌟"},

	// Special: ability and ammo usage
	{ID: "ability_10", Title: "Aprendiz de Poder", Description: "Usa 10 habilidades especiales", Category: "special", Icon: "✨"},
	{ID: "ability_50", Title: "Maestro de Poder", Description: "Usa 50 habilidades especiales", Category: "special", Icon: "🔮"},
	{ID: "ammo_100", Title: "Gatillo Fácil", Description: "Usa 100 municiones", Category: "special", Icon: "🔫"},
	{ID: "ammo_500", Title: "Lluvia de Balas", Description: "Usa 500 municiones", Category: "special", Icon: "🌧️"},

	// Special: speed clear
	{ID: "speed_demon", Title: "Demonio Veloz", Description: "Gana una partida en menos de 90 segundos", Category: "special", Icon: "⚡"},

	// Collection: roster coverage
	{ID: "roster_8", Title: "Coleccionista de Héroes", Description: "Juega con 8 personajes distintos", Category: "collection", Icon: "👥"},
	{ID: "explorer", Title: "Explorador", Description: "Juega en los 4 mapas", Category: "exploration", Icon: "🗺️"},

	// Exploration: first visit per map
	{ID: "visit_roblox", Title: "Mundo de Bloques", Description: "Juega en Roblox World", Category: "exploration", Icon: "🧱"},
	{ID: "visit_minecraft", Title: "Bioma Voxel", Description: "Juega en Minecraft Biome", Category: "exploration", Icon: "⛏️"},
	{ID: "visit_youtube", Title: "Estrella de Video", Description: "Juega en YouTube HQ", Category: "exploration", Icon: "📺"},
	{ID: "visit_discord", Title: "Servidor Activo", Description: "Juega en Discord Server", Category: "exploration", Icon: "💬"},

	// Victory: per-character win
	{ID: "champion_meultra4111", Title: "Trueno del Líder", Description: "Gana una partida con Meultra4111", Category: "victory", Icon: "⚡"},
	{ID: "champion_olivo_10", Title: "Golpe de Mazo", Description: "Gana una partida con Olivo_10", Category: "victory", Icon: "🔨"},
	{ID: "champion_gato", Title: "Velocidad Felina", Description: "Gana una partida con Gato", Category: "victory", Icon: "🐱"},
	{ID: "champion_jhon", Title: "Sombra Letal", Description: "Gana una partida con Jhon", Category: "victory", Icon: "🌑"},

	// Progression: level tiers
	{ID: "level_5", Title: "Ascenso", Description: "Alcanza nivel 5", Category: "progression", Icon: "📈"},
	{ID: "level_10", Title: "Doble Dígito", Description: "Alcanza nivel 10", Category: "progression", Icon: "🔟"},
	{ID: "level_15", Title: "Élite", Description: "Alcanza nivel 15", Category: "progression", Icon: "💎"},
	{ID: "max_level", Title: "Nivel Máximo", Description: "Alcanza nivel 20", Category: "progression", Icon: "⭐"},
	{ID: "dlc_unlock", Title: "Historia Desbloqueada", Description: "Desbloquea el DLC 'Mi Historia'", Category: "progression", Icon: "📦"},

	// Coins: balance tiers
	{ID: "coins_1000", Title: "Ahorrador", Description: "Acumula 1000 monedas", Category: "coins", Icon: "🪙"},
	{ID: "coins_2500", Title: "Adinerado", Description: "Acumula 2500 monedas", Category: "coins", Icon: "💵"},
	{ID: "rich", Title: "Rico", Description: "Acumula 5000 monedas", Category: "coins", Icon: "💰"},
}

// FindAchievement returns the definition for id, or nil.
func FindAchievement(id string) *Achievement {
	for i := range Achievements {
		if Achievements[i].ID == id {
			return &Achievements[i]
		}
	}
	return nil
}
