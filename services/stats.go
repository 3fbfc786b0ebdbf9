package services

import "battle-arena-system/models"

// MergeOutcome folds a completed session into the player's lifetime
// stats. Every scalar counter only grows, a victory adds exactly one
// win, and the played-sets insert idempotently. This is the only code
// allowed to mutate a PlayerStats aggregate; callers run it inside the
// store's locked read-modify-write.
func MergeOutcome(st *models.PlayerStats, s *models.GameSession) {
	st.TotalKills += s.EnemiesDefeated
	st.TotalGames++
	st.TotalScore += s.Score
	st.TotalAmmoUsed += s.AmmoUsed
	st.TotalAbilityUses += s.AbilityUses
	if s.Victory {
		st.TotalWins++
	}
	st.CharactersPlayed = st.CharactersPlayed.Add(s.CharacterID)
	st.MapsPlayed = st.MapsPlayed.Add(s.MapID)
}
