package services

import (
	"testing"

	"battle-arena-system/models"
)

func outcomeSession(victory bool) *models.GameSession {
	return &models.GameSession{
		ID:              "s1",
		PlayerID:        "p1",
		CharacterID:     "gato",
		MapID:           "roblox",
		Score:           1200,
		EnemiesDefeated: 7,
		Victory:         victory,
		Duration:        150,
		AmmoUsed:        40,
		AbilityUses:     3,
	}
}

func TestMergeOutcomeFromEmpty(t *testing.T) {
	st := &models.PlayerStats{PlayerID: "p1"}
	MergeOutcome(st, outcomeSession(true))

	if st.TotalKills != 7 || st.TotalWins != 1 || st.TotalGames != 1 {
		t.Errorf("counters = kills %d wins %d games %d", st.TotalKills, st.TotalWins, st.TotalGames)
	}
	if st.TotalScore != 1200 || st.TotalAmmoUsed != 40 || st.TotalAbilityUses != 3 {
		t.Errorf("score/ammo/ability = %d/%d/%d", st.TotalScore, st.TotalAmmoUsed, st.TotalAbilityUses)
	}
	if !st.CharactersPlayed.Has("gato") || !st.MapsPlayed.Has("roblox") {
		t.Error("played sets missing this match's entries")
	}
}

func TestMergeOutcomeLossAddsNoWin(t *testing.T) {
	st := &models.PlayerStats{PlayerID: "p1"}
	MergeOutcome(st, outcomeSession(false))
	if st.TotalWins != 0 {
		t.Errorf("wins = %d, want 0", st.TotalWins)
	}
	if st.TotalGames != 1 {
		t.Errorf("games = %d, want 1", st.TotalGames)
	}
}

// Running the same outcome twice must only ever grow counters and must
// not duplicate played-set entries.
func TestMergeOutcomeMonotonicAndSetIdempotent(t *testing.T) {
	st := &models.PlayerStats{PlayerID: "p1"}
	s := outcomeSession(true)
	MergeOutcome(st, s)
	first := *st
	MergeOutcome(st, s)

	if st.TotalKills < first.TotalKills || st.TotalWins < first.TotalWins ||
		st.TotalGames < first.TotalGames || st.TotalScore < first.TotalScore ||
		st.TotalAmmoUsed < first.TotalAmmoUsed || st.TotalAbilityUses < first.TotalAbilityUses {
		t.Error("a counter decreased across merges")
	}
	if len(st.CharactersPlayed) != 1 || len(st.MapsPlayed) != 1 {
		t.Errorf("played sets grew on repeat entry: chars %d maps %d",
			len(st.CharactersPlayed), len(st.MapsPlayed))
	}
}

func TestStringSetAdd(t *testing.T) {
	var s models.StringSet
	s = s.Add("a")
	s = s.Add("b")
	s = s.Add("a")
	if len(s) != 2 {
		t.Fatalf("len = %d, want 2", len(s))
	}
	if !s.Has("a") || !s.Has("b") || s.Has("c") {
		t.Error("membership checks wrong")
	}
}
