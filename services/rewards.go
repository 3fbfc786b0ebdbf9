package services

// Reward weights for a completed session. A loss still pays the base
// coin reward so no match is zero-progress.
const (
	XPPerKill      = 10
	XPVictoryBonus = 50

	CoinsPerKill      = 5
	CoinsVictoryBonus = 100
	CoinsLossBase     = 25
)

// LevelThreshold is the XP needed to leave the given level.
func LevelThreshold(level int) int64 {
	if level < 1 {
		level = 1
	}
	return int64(level) * 100
}

// DLCUnlockLevel gates the DLC roster tier.
const DLCUnlockLevel = 10

// ComputeReward converts a raw match outcome into the (xp, coins) grant.
// Pure and total: no error conditions.
func ComputeReward(enemiesDefeated int64, victory bool) (xp, coins int64) {
	xp = enemiesDefeated * XPPerKill
	coins = enemiesDefeated * CoinsPerKill
	if victory {
		xp += XPVictoryBonus
		coins += CoinsVictoryBonus
	} else {
		coins += CoinsLossBase
	}
	return xp, coins
}

// LevelResult is the outcome of one ladder application.
type LevelResult struct {
	Level        int
	XP           int64
	LeveledUp    bool
	TierUnlocked bool // true exactly once, when the DLC tier first opens
}

// ApplyExperience folds an XP grant into (level, xp). A single grant
// never crosses more than one threshold: an oversized surplus carries
// into the new level instead of cascading. See DESIGN.md before turning
// this into a multi-level loop.
func ApplyExperience(level int, xp, delta int64, dlcUnlocked bool) LevelResult {
	if level < 1 {
		level = 1
	}
	res := LevelResult{Level: level, XP: xp + delta}
	if res.XP >= LevelThreshold(level) {
		res.XP -= LevelThreshold(level)
		res.Level++
		res.LeveledUp = true
	}
	if res.Level >= DLCUnlockLevel && !dlcUnlocked {
		res.TierUnlocked = true
	}
	return res
}
