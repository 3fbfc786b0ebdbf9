package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"battle-arena-system/models"
	"battle-arena-system/store"

	"github.com/google/uuid"
)

// ErrSessionFinalized rejects completing a session that is no longer
// open. Completion transitions open→completed exactly once; a repeated
// call is an error, not a fresh reward grant.
var ErrSessionFinalized = errors.New("session already finalized")

// MatchOutcome carries the raw result fields the caller reports for a
// completed match.
type MatchOutcome struct {
	Score           int64 `json:"score"`
	EnemiesDefeated int64 `json:"enemies_defeated"`
	Victory         bool  `json:"victory"`
	Duration        int   `json:"duration"`
	AmmoUsed        int64 `json:"ammo_used"`
	AbilityUses     int64 `json:"ability_uses"`
}

// RewardSummary is the completion response: the grant plus what it
// changed on the player.
type RewardSummary struct {
	XPEarned             int64    `json:"xp_earned"`
	CoinsEarned          int64    `json:"coins_earned"`
	Level                int      `json:"level"`
	LeveledUp            bool     `json:"leveled_up"`
	DLCUnlocked          bool     `json:"dlc_unlocked"`
	AchievementsUnlocked []string `json:"achievements_unlocked"`
}

// SessionService orchestrates session lifecycle and the completion
// pipeline: reward → ladder → stat merge → rule evaluation → unlocks.
type SessionService struct {
	Store store.Store
}

func NewSessionService(st store.Store) *SessionService {
	return &SessionService{Store: st}
}

// Create opens a new session for a player. The character and map must
// exist in the static catalogs.
func (s *SessionService) Create(playerID, characterID, mapID string) (*models.GameSession, error) {
	if _, err := s.Store.GetPlayer(playerID); err != nil {
		return nil, err
	}
	if models.FindCharacter(characterID) == nil {
		return nil, fmt.Errorf("character %s: %w", characterID, store.ErrNotFound)
	}
	if models.FindArenaMap(mapID) == nil {
		return nil, fmt.Errorf("map %s: %w", mapID, store.ErrNotFound)
	}
	sess := &models.GameSession{
		ID:          uuid.NewString(),
		PlayerID:    playerID,
		CharacterID: characterID,
		MapID:       mapID,
		State:       models.SessionOpen,
	}
	if err := s.Store.CreateSession(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// ByPlayer lists a player's sessions, newest first.
func (s *SessionService) ByPlayer(playerID string, limit int) ([]models.GameSession, error) {
	return s.Store.SessionsByPlayer(playerID, limit)
}

// Complete finalizes an open session and runs the whole progression
// pipeline. Steps are strictly ordered; nothing is written before the
// session record transitions to completed, and a per-id unlock failure
// never aborts the remaining unlocks.
func (s *SessionService) Complete(sessionID string, outcome MatchOutcome) (*RewardSummary, error) {
	// 1. Look up the session; reject repeats before any write.
	sess, err := s.Store.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.State != models.SessionOpen {
		return nil, ErrSessionFinalized
	}

	// 2. Compute the reward grant.
	xp, coins := ComputeReward(outcome.EnemiesDefeated, outcome.Victory)

	// 3. Finalize the session record. The state check repeats inside the
	// locked read-modify-write so a racing duplicate request loses.
	sess, err = s.Store.UpdateSession(sessionID, func(g *models.GameSession) error {
		if g.State != models.SessionOpen {
			return ErrSessionFinalized
		}
		g.Score = outcome.Score
		g.EnemiesDefeated = outcome.EnemiesDefeated
		g.Victory = outcome.Victory
		g.Duration = outcome.Duration
		g.AmmoUsed = outcome.AmmoUsed
		g.AbilityUses = outcome.AbilityUses
		g.XPEarned = xp
		g.CoinsEarned = coins
		g.State = models.SessionCompleted
		now := time.Now().UTC()
		g.CompletedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. Apply the reward to the owning player: ladder + coin credit.
	var levelRes LevelResult
	player, err := s.Store.UpdatePlayer(sess.PlayerID, func(p *models.Player) error {
		levelRes = ApplyExperience(p.Level, p.XP, xp, p.UnlockedDLC)
		p.Level = levelRes.Level
		p.XP = levelRes.XP
		if levelRes.TierUnlocked {
			p.UnlockedDLC = true
		}
		p.Coins += coins
		return nil
	})
	if err != nil {
		return nil, err
	}
	fmt.Printf("🎮 Session %s completed: %s → +%d XP, +%d coins, Lvl=%d\n",
		sessionID, player.ID, xp, coins, player.Level)

	// 5. Fold the outcome into lifetime stats (lazily created).
	stats, err := s.Store.MutateStats(sess.PlayerID, func(st *models.PlayerStats) error {
		MergeOutcome(st, sess)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 6-7. Evaluate the rule table against the freshly persisted state.
	unlocked, err := s.Store.UnlockedAchievements(sess.PlayerID)
	if err != nil {
		return nil, err
	}
	newly := EvaluateAchievements(RuleContext{
		Stats:       stats,
		Level:       player.Level,
		Coins:       player.Coins,
		DLCUnlocked: player.UnlockedDLC,
		Session:     sess,
	}, unlocked)

	// 8. Persist unlocks independently; each insert is idempotent per
	// (player, achievement) pair.
	granted := make([]string, 0, len(newly))
	for _, id := range newly {
		inserted, err := s.Store.InsertUnlock(sess.PlayerID, id)
		if err != nil {
			log.Printf("[Session] unlock %s for %s failed: %v", id, sess.PlayerID, err)
			continue
		}
		if inserted {
			fmt.Printf("🏆 Achievement unlocked: %s → %s\n", id, sess.PlayerID)
			granted = append(granted, id)
		}
	}

	// 9. Summary.
	return &RewardSummary{
		XPEarned:             xp,
		CoinsEarned:          coins,
		Level:                player.Level,
		LeveledUp:            levelRes.LeveledUp,
		DLCUnlocked:          levelRes.TierUnlocked,
		AchievementsUnlocked: granted,
	}, nil
}
