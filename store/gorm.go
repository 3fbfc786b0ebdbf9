package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"battle-arena-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxTxAttempts bounds internal retries of a contended read-modify-write.
const maxTxAttempts = 3

// GormStore is the Postgres-backed Store. Read-modify-write mutators run
// in a transaction with a FOR UPDATE row lock so concurrent completions
// for the same player serialize instead of losing updates.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// retryable reports whether the error is transient contention worth
// re-running the whole read-modify-write cycle for.
func retryable(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "deadlock detected") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "duplicate key value")
}

func (g *GormStore) withRetry(op func() error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = op()
		if err == nil || !retryable(err) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrConflict, err)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (g *GormStore) GetPlayer(id string) (*models.Player, error) {
	var p models.Player
	if err := g.DB.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (g *GormStore) CreatePlayer(p *models.Player) error {
	return g.DB.Create(p).Error
}

func (g *GormStore) UpdatePlayer(id string, fn func(*models.Player) error) (*models.Player, error) {
	var out models.Player
	err := g.withRetry(func() error {
		return g.DB.Transaction(func(tx *gorm.DB) error {
			var p models.Player
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", id).First(&p).Error; err != nil {
				return notFound(err)
			}
			if err := fn(&p); err != nil {
				return err
			}
			if err := tx.Save(&p).Error; err != nil {
				return err
			}
			out = p
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GormStore) GetSession(id string) (*models.GameSession, error) {
	var s models.GameSession
	if err := g.DB.Where("id = ?", id).First(&s).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (g *GormStore) CreateSession(s *models.GameSession) error {
	return g.DB.Create(s).Error
}

func (g *GormStore) UpdateSession(id string, fn func(*models.GameSession) error) (*models.GameSession, error) {
	var out models.GameSession
	err := g.withRetry(func() error {
		return g.DB.Transaction(func(tx *gorm.DB) error {
			var s models.GameSession
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", id).First(&s).Error; err != nil {
				return notFound(err)
			}
			if err := fn(&s); err != nil {
				return err
			}
			if err := tx.Save(&s).Error; err != nil {
				return err
			}
			out = s
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GormStore) SessionsByPlayer(playerID string, limit int) ([]models.GameSession, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var sessions []models.GameSession
	err := g.DB.Where("player_id = ?", playerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

func (g *GormStore) AbandonStaleSessions(before time.Time) (int64, error) {
	res := g.DB.Model(&models.GameSession{}).
		Where("state = ? AND created_at < ?", models.SessionOpen, before).
		Update("state", models.SessionAbandoned)
	return res.RowsAffected, res.Error
}

func (g *GormStore) MutateStats(playerID string, fn func(*models.PlayerStats) error) (*models.PlayerStats, error) {
	var out models.PlayerStats
	err := g.withRetry(func() error {
		return g.DB.Transaction(func(tx *gorm.DB) error {
			var st models.PlayerStats
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("player_id = ?", playerID).First(&st).Error
			created := false
			if errors.Is(err, gorm.ErrRecordNotFound) {
				st = models.PlayerStats{ID: uuid.NewString(), PlayerID: playerID}
				created = true
			} else if err != nil {
				return err
			}
			if err := fn(&st); err != nil {
				return err
			}
			if created {
				// Unique index on player_id turns a create race into a
				// duplicate-key error, which withRetry re-runs against
				// the now-existing row.
				if err := tx.Create(&st).Error; err != nil {
					return err
				}
			} else if err := tx.Save(&st).Error; err != nil {
				return err
			}
			out = st
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GormStore) UnlockedAchievements(playerID string) (map[string]bool, error) {
	rows, err := g.ListUnlocks(playerID)
	if err != nil {
		return nil, err
	}
	unlocked := make(map[string]bool, len(rows))
	for _, r := range rows {
		unlocked[r.AchievementID] = true
	}
	return unlocked, nil
}

func (g *GormStore) ListUnlocks(playerID string) ([]models.PlayerAchievement, error) {
	var rows []models.PlayerAchievement
	err := g.DB.Where("player_id = ?", playerID).Find(&rows).Error
	return rows, err
}

func (g *GormStore) InsertUnlock(playerID, achievementID string) (bool, error) {
	row := models.PlayerAchievement{
		PlayerID:      playerID,
		AchievementID: achievementID,
		UnlockedAt:    time.Now().UTC(),
	}
	res := g.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (g *GormStore) AddInventoryItem(item *models.InventoryItem) error {
	return g.DB.Create(item).Error
}

func (g *GormStore) InventoryByPlayer(playerID string) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := g.DB.Where("player_id = ?", playerID).
		Order("purchased_at DESC").
		Find(&items).Error
	return items, err
}
