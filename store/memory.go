package store

import (
	"sort"
	"sync"
	"time"

	"battle-arena-system/models"
)

// MemoryStore is a mutex-guarded in-memory Store used by tests and local
// development. The single lock serializes every read-modify-write, which
// trivially satisfies the per-aggregate atomicity the engine requires.
type MemoryStore struct {
	mu        sync.Mutex
	players   map[string]models.Player
	sessions  map[string]models.GameSession
	stats     map[string]models.PlayerStats // keyed by player id
	unlocks   map[string]map[string]time.Time
	inventory map[string][]models.InventoryItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		players:   make(map[string]models.Player),
		sessions:  make(map[string]models.GameSession),
		stats:     make(map[string]models.PlayerStats),
		unlocks:   make(map[string]map[string]time.Time),
		inventory: make(map[string][]models.InventoryItem),
	}
}

func (m *MemoryStore) GetPlayer(id string) (*models.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.players[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *MemoryStore) CreatePlayer(p *models.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.players[p.ID] = *p
	return nil
}

func (m *MemoryStore) UpdatePlayer(id string, fn func(*models.Player) error) (*models.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.players[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := fn(&p); err != nil {
		return nil, err
	}
	m.players[id] = p
	return &p, nil
}

func (m *MemoryStore) GetSession(id string) (*models.GameSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) CreateSession(s *models.GameSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	m.sessions[s.ID] = *s
	return nil
}

func (m *MemoryStore) UpdateSession(id string, fn func(*models.GameSession) error) (*models.GameSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := fn(&s); err != nil {
		return nil, err
	}
	m.sessions[id] = s
	return &s, nil
}

func (m *MemoryStore) SessionsByPlayer(playerID string, limit int) ([]models.GameSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var sessions []models.GameSession
	for _, s := range m.sessions {
		if s.PlayerID == playerID {
			sessions = append(sessions, s)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	if len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

func (m *MemoryStore) AbandonStaleSessions(before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var swept int64
	for id, s := range m.sessions {
		if s.State == models.SessionOpen && s.CreatedAt.Before(before) {
			s.State = models.SessionAbandoned
			m.sessions[id] = s
			swept++
		}
	}
	return swept, nil
}

func (m *MemoryStore) MutateStats(playerID string, fn func(*models.PlayerStats) error) (*models.PlayerStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.stats[playerID]
	if !ok {
		st = models.PlayerStats{ID: playerID + "-stats", PlayerID: playerID}
	}
	if err := fn(&st); err != nil {
		return nil, err
	}
	m.stats[playerID] = st
	return &st, nil
}

func (m *MemoryStore) UnlockedAchievements(playerID string) (map[string]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	unlocked := make(map[string]bool, len(m.unlocks[playerID]))
	for id := range m.unlocks[playerID] {
		unlocked[id] = true
	}
	return unlocked, nil
}

func (m *MemoryStore) ListUnlocks(playerID string) ([]models.PlayerAchievement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []models.PlayerAchievement
	for id, at := range m.unlocks[playerID] {
		rows = append(rows, models.PlayerAchievement{PlayerID: playerID, AchievementID: id, UnlockedAt: at})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].AchievementID < rows[j].AchievementID })
	return rows, nil
}

func (m *MemoryStore) InsertUnlock(playerID, achievementID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unlocks[playerID] == nil {
		m.unlocks[playerID] = make(map[string]time.Time)
	}
	if _, exists := m.unlocks[playerID][achievementID]; exists {
		return false, nil
	}
	m.unlocks[playerID][achievementID] = time.Now().UTC()
	return true, nil
}

func (m *MemoryStore) AddInventoryItem(item *models.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inventory[item.PlayerID] = append(m.inventory[item.PlayerID], *item)
	return nil
}

func (m *MemoryStore) InventoryByPlayer(playerID string) ([]models.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]models.InventoryItem, len(m.inventory[playerID]))
	copy(items, m.inventory[playerID])
	return items, nil
}
