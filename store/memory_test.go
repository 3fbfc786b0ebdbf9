package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"battle-arena-system/models"
)

func TestMemoryStorePlayerRoundTrip(t *testing.T) {
	st := NewMemoryStore()
	if _, err := st.GetPlayer("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	p := &models.Player{ID: "p1", Username: "one", Level: 1, Coins: 1000}
	if err := st.CreatePlayer(p); err != nil {
		t.Fatal(err)
	}

	got, err := st.GetPlayer("p1")
	if err != nil {
		t.Fatal(err)
	}
	// Mutating the returned copy must not leak into the store.
	got.Coins = 0
	again, _ := st.GetPlayer("p1")
	if again.Coins != 1000 {
		t.Error("store handed out a shared reference")
	}
}

func TestMemoryStoreUpdateCallbackErrorAborts(t *testing.T) {
	st := NewMemoryStore()
	_ = st.CreatePlayer(&models.Player{ID: "p1", Coins: 500})

	boom := errors.New("boom")
	_, err := st.UpdatePlayer("p1", func(p *models.Player) error {
		p.Coins = 0
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	p, _ := st.GetPlayer("p1")
	if p.Coins != 500 {
		t.Error("failed callback must not persist its mutation")
	}
}

// Concurrent completions for the same player must never lose a counter
// increment.
func TestMemoryStoreMutateStatsConcurrent(t *testing.T) {
	st := NewMemoryStore()
	const n = 100

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.MutateStats("p1", func(s *models.PlayerStats) error {
				s.TotalKills++
				s.TotalGames++
				return nil
			})
			if err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	stats, err := st.MutateStats("p1", func(*models.PlayerStats) error { return nil })
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalKills != n || stats.TotalGames != n {
		t.Errorf("kills/games = %d/%d, want %d/%d", stats.TotalKills, stats.TotalGames, n, n)
	}
}

func TestMemoryStoreInsertUnlockIdempotent(t *testing.T) {
	st := NewMemoryStore()

	inserted, err := st.InsertUnlock("p1", "first_blood")
	if err != nil || !inserted {
		t.Fatalf("first insert = (%v, %v), want (true, nil)", inserted, err)
	}
	inserted, err = st.InsertUnlock("p1", "first_blood")
	if err != nil || inserted {
		t.Fatalf("second insert = (%v, %v), want (false, nil)", inserted, err)
	}

	unlocked, _ := st.UnlockedAchievements("p1")
	if len(unlocked) != 1 || !unlocked["first_blood"] {
		t.Errorf("unlocked = %v", unlocked)
	}
}

func TestMemoryStoreInsertUnlockConcurrent(t *testing.T) {
	st := NewMemoryStore()
	const n = 50

	var wg sync.WaitGroup
	var mu sync.Mutex
	var newly int
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inserted, err := st.InsertUnlock("p1", "explorer")
			if err != nil {
				t.Error(err)
				return
			}
			if inserted {
				mu.Lock()
				newly++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if newly != 1 {
		t.Errorf("newly inserted = %d, want exactly 1", newly)
	}
}

func TestMemoryStoreAbandonStaleSessions(t *testing.T) {
	st := NewMemoryStore()
	old := time.Now().Add(-48 * time.Hour)
	_ = st.CreateSession(&models.GameSession{
		ID: "stale", PlayerID: "p1", State: models.SessionOpen,
		Timestamps: models.Timestamps{CreatedAt: old},
	})
	_ = st.CreateSession(&models.GameSession{
		ID: "fresh", PlayerID: "p1", State: models.SessionOpen,
	})
	_ = st.CreateSession(&models.GameSession{
		ID: "done", PlayerID: "p1", State: models.SessionCompleted,
		Timestamps: models.Timestamps{CreatedAt: old},
	})

	swept, err := st.AbandonStaleSessions(time.Now().Add(-24 * time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if swept != 1 {
		t.Fatalf("swept = %d, want 1", swept)
	}

	stale, _ := st.GetSession("stale")
	if stale.State != models.SessionAbandoned {
		t.Errorf("stale state = %s, want abandoned", stale.State)
	}
	done, _ := st.GetSession("done")
	if done.State != models.SessionCompleted {
		t.Errorf("completed session must not be swept, got %s", done.State)
	}
}

func TestMemoryStoreSessionsByPlayerNewestFirst(t *testing.T) {
	st := NewMemoryStore()
	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"a", "b", "c"} {
		_ = st.CreateSession(&models.GameSession{
			ID: id, PlayerID: "p1", State: models.SessionOpen,
			Timestamps: models.Timestamps{CreatedAt: base.Add(time.Duration(i) * time.Minute)},
		})
	}
	_ = st.CreateSession(&models.GameSession{ID: "other", PlayerID: "p2", State: models.SessionOpen})

	sessions, err := st.SessionsByPlayer("p1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 2 {
		t.Fatalf("len = %d, want 2", len(sessions))
	}
	if sessions[0].ID != "c" || sessions[1].ID != "b" {
		t.Errorf("order = %s,%s, want c,b", sessions[0].ID, sessions[1].ID)
	}
}
