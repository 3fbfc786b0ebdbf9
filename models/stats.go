package models

// StringSet is a grow-only set of ids stored as a jsonb array.
// Insertion order is preserved so rule evaluation stays deterministic.
type StringSet []string

func (s StringSet) Has(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Add appends id if not already present (idempotent).
func (s StringSet) Add(id string) StringSet {
	if s.Has(id) {
		return s
	}
	return append(s, id)
}

// PlayerStats is the lifetime aggregate per player, created lazily on the
// first completed session. Every counter is monotonically non-decreasing
// and the two played-sets only grow. Mutated exclusively via
// services.MergeOutcome inside the store's locked read-modify-write.
type PlayerStats struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	PlayerID string `gorm:"uniqueIndex;not null" json:"player_id"`

	TotalKills       int64 `json:"total_kills" gorm:"default:0"`
	TotalWins        int64 `json:"total_wins" gorm:"default:0"`
	TotalGames       int64 `json:"total_games" gorm:"default:0"`
	TotalScore       int64 `json:"total_score" gorm:"default:0"`
	TotalAmmoUsed    int64 `json:"total_ammo_used" gorm:"default:0"`
	TotalAbilityUses int64 `json:"total_ability_uses" gorm:"default:0"`

	CharactersPlayed StringSet `gorm:"type:jsonb;serializer:json" json:"characters_played"`
	MapsPlayed       StringSet `gorm:"type:jsonb;serializer:json" json:"maps_played"`

	Timestamps
}
