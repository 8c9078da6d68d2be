package history

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"focustree/internal/core/model"
)

// StorageKey is the store key under which the session list is persisted.
const StorageKey = "sessions"

// Store persists JSON-serializable values by key.
type Store interface {
	Get(key string, into any) (bool, error)
	Set(key string, value any) error
}

// Log is the append-only record of completed focus sessions, newest first.
// Persistence failures are logged; the in-memory list stays authoritative.
type Log struct {
	mu       sync.Mutex
	store    Store
	sessions []model.Session
	now      func() time.Time
}

// New creates an empty log backed by the given store.
func New(store Store) *Log {
	return &Log{
		store: store,
		now:   time.Now,
	}
}

// Load replaces the in-memory list with the persisted one. Completion
// timestamps are rehydrated from their serialized form by the store.
func (historyLog *Log) Load() error {
	historyLog.mu.Lock()
	defer historyLog.mu.Unlock()

	var sessions []model.Session
	found, err := historyLog.store.Get(StorageKey, &sessions)
	if err != nil {
		return err
	}
	if !found {
		historyLog.sessions = nil
		return nil
	}
	historyLog.sessions = sessions
	return nil
}

// Append records a freshly completed session of the given duration and
// persists the updated list. The created session is returned.
func (historyLog *Log) Append(durationMinutes int) model.Session {
	historyLog.mu.Lock()
	defer historyLog.mu.Unlock()

	session := model.Session{
		ID:              uuid.NewString(),
		DurationMinutes: durationMinutes,
		CompletedAt:     historyLog.now(),
	}
	historyLog.sessions = append([]model.Session{session}, historyLog.sessions...)
	historyLog.persistLocked()
	return session
}

// Remove deletes the session with the given id. Unknown ids are ignored.
func (historyLog *Log) Remove(id string) {
	historyLog.mu.Lock()
	defer historyLog.mu.Unlock()

	for i, session := range historyLog.sessions {
		if session.ID == id {
			historyLog.sessions = append(historyLog.sessions[:i], historyLog.sessions[i+1:]...)
			historyLog.persistLocked()
			return
		}
	}
}

// Sessions returns a copy of the log, newest first.
func (historyLog *Log) Sessions() []model.Session {
	historyLog.mu.Lock()
	defer historyLog.mu.Unlock()
	return append([]model.Session(nil), historyLog.sessions...)
}

// TotalSessions returns the number of sessions over the full log.
func (historyLog *Log) TotalSessions() int {
	historyLog.mu.Lock()
	defer historyLog.mu.Unlock()
	return len(historyLog.sessions)
}

// TotalMinutes returns the summed duration over the full log.
func (historyLog *Log) TotalMinutes() int {
	historyLog.mu.Lock()
	defer historyLog.mu.Unlock()

	total := 0
	for _, session := range historyLog.sessions {
		total += session.DurationMinutes
	}
	return total
}

// TodaySessions returns the number of sessions completed on the current
// local calendar day.
func (historyLog *Log) TodaySessions() int {
	historyLog.mu.Lock()
	defer historyLog.mu.Unlock()

	today := historyLog.now()
	count := 0
	for _, session := range historyLog.sessions {
		if model.SameDay(session.CompletedAt, today) {
			count++
		}
	}
	return count
}

// TodayMinutes returns the summed duration of today's sessions.
func (historyLog *Log) TodayMinutes() int {
	historyLog.mu.Lock()
	defer historyLog.mu.Unlock()

	today := historyLog.now()
	total := 0
	for _, session := range historyLog.sessions {
		if model.SameDay(session.CompletedAt, today) {
			total += session.DurationMinutes
		}
	}
	return total
}

func (historyLog *Log) persistLocked() {
	if historyLog.store == nil {
		return
	}
	if err := historyLog.store.Set(StorageKey, historyLog.sessions); err != nil {
		log.Printf("persist sessions: %v", err)
	}
}
