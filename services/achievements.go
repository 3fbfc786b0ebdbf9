package services

import (
	"fmt"
	"time"

	"battle-arena-system/models"
	"battle-arena-system/store"
)

// RuleContext is the fully-materialized snapshot a predicate sees:
// the already-updated lifetime stats and player progression, plus the
// outcome of the session that triggered evaluation.
type RuleContext struct {
	Stats       *models.PlayerStats
	Level       int
	Coins       int64
	DLCUnlocked bool
	Session     *models.GameSession
}

// AchievementRule pairs one achievement id with its pure predicate.
type AchievementRule struct {
	ID    string
	Check func(rc RuleContext) bool
}

func killsAtLeast(id string, n int64) AchievementRule {
	return AchievementRule{ID: id, Check: func(rc RuleContext) bool { return rc.Stats.TotalKills >= n }}
}

func winsAtLeast(id string, n int64) AchievementRule {
	return AchievementRule{ID: id, Check: func(rc RuleContext) bool { return rc.Stats.TotalWins >= n }}
}

func gamesAtLeast(id string, n int64) AchievementRule {
	return AchievementRule{ID: id, Check: func(rc RuleContext) bool { return rc.Stats.TotalGames >= n }}
}

func scoreAtLeast(id string, n int64) AchievementRule {
	return AchievementRule{ID: id, Check: func(rc RuleContext) bool { return rc.Stats.TotalScore >= n }}
}

func abilitiesAtLeast(id string, n int64) AchievementRule {
	return AchievementRule{ID: id, Check: func(rc RuleContext) bool { return rc.Stats.TotalAbilityUses >= n }}
}

func ammoAtLeast(id string, n int64) AchievementRule {
	return AchievementRule{ID: id, Check: func(rc RuleContext) bool { return rc.Stats.TotalAmmoUsed >= n }}
}

func levelAtLeast(id string, n int) AchievementRule {
	return AchievementRule{ID: id, Check: func(rc RuleContext) bool { return rc.Level >= n }}
}

func coinsAtLeast(id string, n int64) AchievementRule {
	return AchievementRule{ID: id, Check: func(rc RuleContext) bool { return rc.Coins >= n }}
}

func mapVisited(id, mapID string) AchievementRule {
	return AchievementRule{ID: id, Check: func(rc RuleContext) bool { return rc.Stats.MapsPlayed.Has(mapID) }}
}

func victoryWith(id, characterID string) AchievementRule {
	return AchievementRule{ID: id, Check: func(rc RuleContext) bool {
		return rc.Session.Victory && rc.Session.CharacterID == characterID
	}}
}

// AchievementRules is the static ordered rule table, 1:1 with
// models.Achievements. Every predicate re-evaluates from scratch on each
// pass; the snapshot is small enough that incremental tracking would buy
// nothing.
var AchievementRules = []AchievementRule{
	killsAtLeast("first_blood", 1),
	killsAtLeast("kill_5", 5),
	killsAtLeast("kill_10", 10),
	killsAtLeast("kill_25", 25),
	killsAtLeast("kill_50", 50),
	killsAtLeast("veteran", 100),
	killsAtLeast("kill_250", 250),
	killsAtLeast("kill_500", 500),

	winsAtLeast("first_win", 1),
	winsAtLeast("win_5", 5),
	winsAtLeast("win_10", 10),
	winsAtLeast("win_25", 25),

	gamesAtLeast("games_10", 10),
	gamesAtLeast("games_25", 25),
	gamesAtLeast("games_50", 50),

	scoreAtLeast("score_10000", 10000),
	scoreAtLeast("score_50000", 50000),

	abilitiesAtLeast("ability_10", 10),
	abilitiesAtLeast("ability_50", 50),
	ammoAtLeast("ammo_100", 100),
	ammoAtLeast("ammo_500", 500),

	{ID: "speed_demon", Check: func(rc RuleContext) bool {
		return rc.Session.Victory && rc.Session.Duration < 90
	}},

	{ID: "roster_8", Check: func(rc RuleContext) bool {
		return len(rc.Stats.CharactersPlayed) >= 8
	}},
	{ID: "explorer", Check: func(rc RuleContext) bool {
		return len(rc.Stats.MapsPlayed) >= 4
	}},

	mapVisited("visit_roblox", "roblox"),
	mapVisited("visit_minecraft", "minecraft"),
	mapVisited("visit_youtube", "youtube"),
	mapVisited("visit_discord", "discord"),

	victoryWith("champion_meultra4111", "meultra4111"),
	victoryWith("champion_olivo_10", "olivo_10"),
	victoryWith("champion_gato", "gato"),
	victoryWith("champion_jhon", "jhon"),

	levelAtLeast("level_5", 5),
	levelAtLeast("level_10", 10),
	levelAtLeast("level_15", 15),
	levelAtLeast("max_level", 20),
	{ID: "dlc_unlock", Check: func(rc RuleContext) bool { return rc.DLCUnlocked }},

	coinsAtLeast("coins_1000", 1000),
	coinsAtLeast("coins_2500", 2500),
	coinsAtLeast("rich", 5000),
}

// EvaluateAchievements runs one pass over the rule table and returns the
// ids newly satisfied by the snapshot, in table order, excluding ids the
// player already holds. Pure: performs no writes.
func EvaluateAchievements(rc RuleContext, alreadyUnlocked map[string]bool) []string {
	var newly []string
	for _, rule := range AchievementRules {
		if alreadyUnlocked[rule.ID] {
			continue
		}
		if rule.Check(rc) {
			newly = append(newly, rule.ID)
		}
	}
	return newly
}

// PlayerAchievementView is one definition annotated with the player's
// unlock state.
type PlayerAchievementView struct {
	models.Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

type AchievementService struct {
	Store store.Store
}

func NewAchievementService(st store.Store) *AchievementService {
	return &AchievementService{Store: st}
}

// Definitions returns the full static table.
func (s *AchievementService) Definitions() []models.Achievement {
	return models.Achievements
}

// ForPlayer returns every definition with the player's unlock flag set.
func (s *AchievementService) ForPlayer(playerID string) ([]PlayerAchievementView, error) {
	rows, err := s.Store.ListUnlocks(playerID)
	if err != nil {
		return nil, err
	}
	unlockedAt := make(map[string]time.Time, len(rows))
	for _, r := range rows {
		unlockedAt[r.AchievementID] = r.UnlockedAt
	}

	views := make([]PlayerAchievementView, 0, len(models.Achievements))
	for _, def := range models.Achievements {
		view := PlayerAchievementView{Achievement: def}
		if at, ok := unlockedAt[def.ID]; ok {
			view.Unlocked = true
			view.UnlockedAt = &at
		}
		views = append(views, view)
	}
	return views, nil
}

// Unlock records an unlock for the player. A repeat unlock is a no-op
// reported via the bool, never an error.
func (s *AchievementService) Unlock(playerID, achievementID string) (bool, error) {
	if models.FindAchievement(achievementID) == nil {
		return false, fmt.Errorf("achievement %s: %w", achievementID, store.ErrNotFound)
	}
	inserted, err := s.Store.InsertUnlock(playerID, achievementID)
	if err != nil {
		return false, err
	}
	if inserted {
		fmt.Printf("🏆 Achievement unlocked: %s → %s\n", achievementID, playerID)
	}
	return inserted, nil
}
