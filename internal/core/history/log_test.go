package history

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focustree/internal/core/model"
)

// memoryStore is an in-memory Store for tests.
type memoryStore struct {
	sessions []model.Session
	sets     int
	failSet  bool
}

func (store *memoryStore) Get(key string, into any) (bool, error) {
	if key != StorageKey || store.sessions == nil {
		return false, nil
	}
	*(into.(*[]model.Session)) = append([]model.Session(nil), store.sessions...)
	return true, nil
}

func (store *memoryStore) Set(key string, value any) error {
	store.sets++
	if store.failSet {
		return errors.New("disk full")
	}
	store.sessions = append([]model.Session(nil), value.([]model.Session)...)
	return nil
}

func newTestLog(t *testing.T) (*Log, *memoryStore) {
	t.Helper()
	store := &memoryStore{}
	historyLog := New(store)
	require.NoError(t, historyLog.Load())
	return historyLog, store
}

func TestAppendOrdersNewestFirst(t *testing.T) {
	historyLog, store := newTestLog(t)

	first := historyLog.Append(25)
	second := historyLog.Append(10)

	sessions := historyLog.Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, second.ID, sessions[0].ID)
	assert.Equal(t, first.ID, sessions[1].ID)
	assert.Equal(t, 35, historyLog.TotalMinutes())
	assert.Equal(t, 2, historyLog.TotalSessions())
	assert.Equal(t, 2, store.sets)

	historyLog.Remove(first.ID)
	sessions = historyLog.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, second.ID, sessions[0].ID)
	assert.Equal(t, 10, historyLog.TotalMinutes())
}

func TestAppendGeneratesUniqueIDs(t *testing.T) {
	historyLog, _ := newTestLog(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		session := historyLog.Append(5)
		assert.False(t, seen[session.ID], "duplicate session id %s", session.ID)
		seen[session.ID] = true
	}
}

func TestRemoveMissingIDIsNoOp(t *testing.T) {
	historyLog, store := newTestLog(t)
	historyLog.Append(25)
	before := store.sets

	historyLog.Remove("no-such-id")
	assert.Equal(t, 1, historyLog.TotalSessions())
	assert.Equal(t, before, store.sets, "no persist on no-op remove")
}

func TestTodayTotalsUseLocalCalendarDay(t *testing.T) {
	historyLog, _ := newTestLog(t)

	now := time.Date(2024, 1, 3, 10, 0, 0, 0, time.Local)
	historyLog.now = func() time.Time { return now }
	historyLog.Append(25)

	// Just before midnight still counts for the same calendar day.
	historyLog.now = func() time.Time { return time.Date(2024, 1, 3, 23, 59, 0, 0, time.Local) }
	historyLog.Append(10)

	// Yesterday does not, even though it is within 24 hours.
	historyLog.now = func() time.Time { return time.Date(2024, 1, 2, 23, 0, 0, 0, time.Local) }
	historyLog.Append(15)

	historyLog.now = func() time.Time { return now }
	assert.Equal(t, 2, historyLog.TodaySessions())
	assert.Equal(t, 35, historyLog.TodayMinutes())
	assert.Equal(t, 3, historyLog.TotalSessions())
}

func TestPersistFailureKeepsMemoryAuthoritative(t *testing.T) {
	store := &memoryStore{failSet: true}
	historyLog := New(store)

	historyLog.Append(25)
	assert.Equal(t, 1, historyLog.TotalSessions())
	assert.Equal(t, 25, historyLog.TotalMinutes())
}

func TestLoadRoundTrip(t *testing.T) {
	store := &memoryStore{}
	historyLog := New(store)
	created := historyLog.Append(25)

	reloaded := New(store)
	require.NoError(t, reloaded.Load())
	sessions := reloaded.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, created.ID, sessions[0].ID)
	assert.Equal(t, 25, sessions[0].DurationMinutes)
	assert.True(t, created.CompletedAt.Equal(sessions[0].CompletedAt))
}

func TestExportCSV(t *testing.T) {
	historyLog, _ := newTestLog(t)
	historyLog.now = func() time.Time {
		return time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	}
	historyLog.Append(25)

	data, err := historyLog.ExportCSV()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date,Duration (minutes),Completed At", lines[0])
	assert.Contains(t, lines[1], "1/1/2024")
	assert.Contains(t, lines[1], "25")
	assert.Contains(t, lines[1], "10:00:00 AM")
}

func TestExportCSVEmptyLog(t *testing.T) {
	historyLog, _ := newTestLog(t)
	data, err := historyLog.ExportCSV()
	require.NoError(t, err)
	assert.Equal(t, "Date,Duration (minutes),Completed At\n", string(data))
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2024, 3, 7, 15, 0, 0, 0, time.Local)
	assert.Equal(t, "focus-tree-history-2024-03-07.csv", ExportFileName(now))
}
