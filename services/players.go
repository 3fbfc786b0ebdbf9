package services

import (
	"errors"
	"fmt"

	"battle-arena-system/models"
	"battle-arena-system/store"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ErrInsufficientCoins rejects a debit that would take the balance
// negative. Surfaced as a client error; nothing is written.
var ErrInsufficientCoins = errors.New("insufficient coins")

// StartingCoins is the balance every new player begins with.
const StartingCoins = 1000

type PlayerService struct {
	Store store.Store
}

func NewPlayerService(st store.Store) *PlayerService {
	return &PlayerService{Store: st}
}

func (s *PlayerService) Create(username string) (*models.Player, error) {
	p := &models.Player{
		ID:       uuid.NewString(),
		Username: username,
		Handle:   slug.Make(username),
		Level:    1,
		XP:       0,
		Coins:    StartingCoins,
	}
	if err := s.Store.CreatePlayer(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlayerService) Get(id string) (*models.Player, error) {
	return s.Store.GetPlayer(id)
}

// AddXP runs the leveling ladder over an XP grant and persists the
// result as one read-modify-write on the player aggregate.
func (s *PlayerService) AddXP(playerID string, delta int64, reason string) (*models.Player, error) {
	if delta < 0 {
		delta = 0
	}
	p, err := s.Store.UpdatePlayer(playerID, func(p *models.Player) error {
		res := ApplyExperience(p.Level, p.XP, delta, p.UnlockedDLC)
		p.Level = res.Level
		p.XP = res.XP
		if res.TierUnlocked {
			p.UnlockedDLC = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fmt.Printf("🎮 XP Awarded: %s → +%d XP, Lvl=%d (reason: %s)\n", playerID, delta, p.Level, reason)
	return p, nil
}

// AdjustCoins credits (positive) or debits (negative) the balance.
// A debit below zero is rejected before any write.
func (s *PlayerService) AdjustCoins(playerID string, amount int64) (*models.Player, error) {
	return s.Store.UpdatePlayer(playerID, func(p *models.Player) error {
		if p.Coins+amount < 0 {
			return ErrInsufficientCoins
		}
		p.Coins += amount
		return nil
	})
}
