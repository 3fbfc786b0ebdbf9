package models

import (
	"time"

	"gorm.io/gorm"
)

// Player is the progression aggregate: identity + level/XP/coins.
// XP and level are only ever mutated through the leveling ladder
// (services.ApplyExperience); coins through credits/debits that are
// never allowed to go negative.
type Player struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"player_id"`
	Username string `gorm:"not null" json:"username"`
	Handle   string `gorm:"index" json:"handle"` // url-safe slug of Username

	Level       int   `json:"level" gorm:"default:1"`
	XP          int64 `json:"xp" gorm:"default:0"`
	Coins       int64 `json:"coins" gorm:"default:1000"`
	UnlockedDLC bool  `json:"unlocked_dlc" gorm:"default:false"` // permanent once set

	Timestamps
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
