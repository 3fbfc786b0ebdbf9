package services

import (
	"testing"

	"battle-arena-system/models"
)

func baseContext() RuleContext {
	return RuleContext{
		Stats:   &models.PlayerStats{PlayerID: "p1"},
		Level:   1,
		Coins:   0,
		Session: &models.GameSession{PlayerID: "p1", CharacterID: "riptor", MapID: "youtube"},
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Every rule must pair 1:1 with a definition in the static table.
func TestRuleTableMatchesDefinitions(t *testing.T) {
	if len(AchievementRules) != len(models.Achievements) {
		t.Fatalf("rules %d != definitions %d", len(AchievementRules), len(models.Achievements))
	}
	seen := make(map[string]bool)
	for _, rule := range AchievementRules {
		if seen[rule.ID] {
			t.Errorf("duplicate rule id %s", rule.ID)
		}
		seen[rule.ID] = true
		if models.FindAchievement(rule.ID) == nil {
			t.Errorf("rule %s has no definition", rule.ID)
		}
	}
}

func TestKillTierThresholds(t *testing.T) {
	tests := []struct {
		kills int64
		want  []string
		not   []string
	}{
		{0, nil, []string{"first_blood"}},
		{1, []string{"first_blood"}, []string{"kill_5"}},
		{10, []string{"first_blood", "kill_5", "kill_10"}, []string{"kill_25"}},
		{500, []string{"veteran", "kill_250", "kill_500"}, nil},
	}
	for _, tt := range tests {
		rc := baseContext()
		rc.Stats.TotalKills = tt.kills
		got := EvaluateAchievements(rc, nil)
		for _, id := range tt.want {
			if !contains(got, id) {
				t.Errorf("kills=%d: missing %s", tt.kills, id)
			}
		}
		for _, id := range tt.not {
			if contains(got, id) {
				t.Errorf("kills=%d: unexpected %s", tt.kills, id)
			}
		}
	}
}

func TestSpeedClearBoundary(t *testing.T) {
	rc := baseContext()
	rc.Session.Victory = true
	rc.Session.Duration = 90
	if contains(EvaluateAchievements(rc, nil), "speed_demon") {
		t.Error("duration 90 must not satisfy speed clear")
	}

	rc.Session.Duration = 89
	if !contains(EvaluateAchievements(rc, nil), "speed_demon") {
		t.Error("victory at duration 89 must satisfy speed clear")
	}

	rc.Session.Victory = false
	if contains(EvaluateAchievements(rc, nil), "speed_demon") {
		t.Error("loss must not satisfy speed clear regardless of duration")
	}
}

func TestRosterCoverageAtExactlyEight(t *testing.T) {
	rc := baseContext()
	chars := []string{"meultra4111", "olivo_10", "gato", "jhon", "riptor", "martin", "botsito"}
	for _, id := range chars {
		rc.Stats.CharactersPlayed = rc.Stats.CharactersPlayed.Add(id)
	}
	if contains(EvaluateAchievements(rc, nil), "roster_8") {
		t.Error("7 distinct characters must not satisfy roster coverage")
	}
	rc.Stats.CharactersPlayed = rc.Stats.CharactersPlayed.Add("brayan")
	if !contains(EvaluateAchievements(rc, nil), "roster_8") {
		t.Error("8 distinct characters must satisfy roster coverage")
	}
}

func TestMapAchievements(t *testing.T) {
	rc := baseContext()
	rc.Stats.MapsPlayed = models.StringSet{"youtube"}
	got := EvaluateAchievements(rc, nil)
	if !contains(got, "visit_youtube") {
		t.Error("missing first-visit achievement for played map")
	}
	if contains(got, "visit_roblox") || contains(got, "explorer") {
		t.Error("unplayed maps must not unlock")
	}

	rc.Stats.MapsPlayed = models.StringSet{"roblox", "minecraft", "youtube", "discord"}
	if !contains(EvaluateAchievements(rc, nil), "explorer") {
		t.Error("all four maps must satisfy explorer")
	}
}

func TestCharacterWinAchievements(t *testing.T) {
	rc := baseContext()
	rc.Session.CharacterID = "gato"
	rc.Session.Victory = true
	got := EvaluateAchievements(rc, nil)
	if !contains(got, "champion_gato") {
		t.Error("victory with gato must unlock champion_gato")
	}
	if contains(got, "champion_jhon") {
		t.Error("other character-win achievements must not fire")
	}

	rc.Session.Victory = false
	if contains(EvaluateAchievements(rc, nil), "champion_gato") {
		t.Error("loss must not unlock a character-win achievement")
	}
}

func TestLevelAndCoinAndDLCTiers(t *testing.T) {
	rc := baseContext()
	rc.Level = 15
	rc.Coins = 2500
	rc.DLCUnlocked = true
	got := EvaluateAchievements(rc, nil)
	for _, id := range []string{"level_5", "level_10", "level_15", "dlc_unlock", "coins_1000", "coins_2500"} {
		if !contains(got, id) {
			t.Errorf("missing %s", id)
		}
	}
	for _, id := range []string{"max_level", "rich"} {
		if contains(got, id) {
			t.Errorf("unexpected %s", id)
		}
	}
}

func TestAlreadyUnlockedAreExcluded(t *testing.T) {
	rc := baseContext()
	rc.Stats.TotalKills = 10
	already := map[string]bool{"first_blood": true, "kill_5": true}
	got := EvaluateAchievements(rc, already)
	if contains(got, "first_blood") || contains(got, "kill_5") {
		t.Error("already unlocked ids must be subtracted")
	}
	if !contains(got, "kill_10") {
		t.Error("kill_10 should still be newly satisfied")
	}
}
