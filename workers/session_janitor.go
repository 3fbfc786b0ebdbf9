package workers

import (
	"log"
	"time"

	"battle-arena-system/store"

	"github.com/go-co-op/gocron/v2"
)

// SessionJanitor periodically marks open sessions that never completed
// as abandoned, so they can no longer be finalized.
type SessionJanitor struct {
	Store  store.Store
	MaxAge time.Duration
	Every  time.Duration
}

func NewSessionJanitor(st store.Store) *SessionJanitor {
	return &SessionJanitor{
		Store:  st,
		MaxAge: 24 * time.Hour,
		Every:  10 * time.Minute,
	}
}

// Start schedules the sweep. The returned scheduler should be shut down
// on process exit.
func (j *SessionJanitor) Start() gocron.Scheduler {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(j.Every),
		gocron.NewTask(j.Sweep),
	)
	return sched
}

func (j *SessionJanitor) Sweep() {
	cutoff := time.Now().Add(-j.MaxAge)
	swept, err := j.Store.AbandonStaleSessions(cutoff)
	if err != nil {
		log.Printf("[Janitor] sweep failed: %v", err)
		return
	}
	if swept > 0 {
		log.Printf("🧹 Abandoned %d stale open sessions", swept)
	}
}
