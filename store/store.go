package store

import (
	"errors"
	"time"

	"battle-arena-system/models"
)

var (
	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means concurrent-update contention persisted past the
	// bounded retry budget; callers surface it as a transient failure.
	ErrConflict = errors.New("store conflict")
)

// Store is the persistence boundary the engine consumes. The mutator
// methods (UpdatePlayer, UpdateSession, MutateStats) run the callback
// inside a per-record read-modify-write unit: concurrent updates to the
// same record are serialized so lifetime counters are never lost to a
// race. A callback error aborts the write and is returned unwrapped.
type Store interface {
	GetPlayer(id string) (*models.Player, error)
	CreatePlayer(p *models.Player) error
	UpdatePlayer(id string, fn func(*models.Player) error) (*models.Player, error)

	GetSession(id string) (*models.GameSession, error)
	CreateSession(s *models.GameSession) error
	UpdateSession(id string, fn func(*models.GameSession) error) (*models.GameSession, error)
	SessionsByPlayer(playerID string, limit int) ([]models.GameSession, error)
	// AbandonStaleSessions marks open sessions created before the cutoff
	// as abandoned and reports how many were swept.
	AbandonStaleSessions(before time.Time) (int64, error)

	// MutateStats lazily initializes the per-player stats record before
	// running the callback on it.
	MutateStats(playerID string, fn func(*models.PlayerStats) error) (*models.PlayerStats, error)

	UnlockedAchievements(playerID string) (map[string]bool, error)
	ListUnlocks(playerID string) ([]models.PlayerAchievement, error)
	// InsertUnlock inserts the (player, achievement) pair if absent and
	// reports whether it was newly inserted. Inserting an existing pair
	// is a no-op, not an error.
	InsertUnlock(playerID, achievementID string) (bool, error)

	AddInventoryItem(item *models.InventoryItem) error
	InventoryByPlayer(playerID string) ([]models.InventoryItem, error)
}
