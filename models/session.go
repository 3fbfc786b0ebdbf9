package models

import "time"

// SessionState tracks the lifecycle of a game session record.
// A session is created open, finalized exactly once to completed,
// or swept to abandoned by the janitor if it never completes.
type SessionState string

const (
	SessionOpen      SessionState = "open"
	SessionCompleted SessionState = "completed"
	SessionAbandoned SessionState = "abandoned"
)

// GameSession records a single arena match attempt for one player.
// Outcome fields and the derived reward are zero until completion.
type GameSession struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"session_id"`
	PlayerID    string `gorm:"index;not null" json:"player_id"`
	CharacterID string `gorm:"not null" json:"character_id"`
	MapID       string `gorm:"not null" json:"map_id"`

	// Match outcome
	Score           int64 `json:"score" gorm:"default:0"`
	EnemiesDefeated int64 `json:"enemies_defeated" gorm:"default:0"`
	Victory         bool  `json:"victory" gorm:"default:false"`
	Duration        int   `json:"duration" gorm:"default:0"` // seconds
	AmmoUsed        int64 `json:"ammo_used" gorm:"default:0"`
	AbilityUses     int64 `json:"ability_uses" gorm:"default:0"`

	// Reward grant (filled in at completion)
	XPEarned    int64 `json:"xp_earned" gorm:"default:0"`
	CoinsEarned int64 `json:"coins_earned" gorm:"default:0"`

	State       SessionState `gorm:"type:varchar(16);default:'open';index" json:"state"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`

	Timestamps
}
