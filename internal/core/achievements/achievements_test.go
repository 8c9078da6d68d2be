package achievements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func find(t *testing.T, list []Achievement, id string) Achievement {
	t.Helper()
	for _, achievement := range list {
		if achievement.ID == id {
			return achievement
		}
	}
	t.Fatalf("achievement %s not found", id)
	return Achievement{}
}

func TestEvaluateUnlocksByMetric(t *testing.T) {
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name          string
		totalSessions int
		totalMinutes  int
		unlockedIDs   []string
	}{
		{name: "nothing", totalSessions: 0, totalMinutes: 0, unlockedIDs: nil},
		{name: "first_session", totalSessions: 1, totalMinutes: 25, unlockedIDs: []string{"first-session"}},
		{
			name:          "sessions_and_minutes",
			totalSessions: 5,
			totalMinutes:  125,
			unlockedIDs:   []string{"first-session", "5-sessions", "100-minutes"},
		},
		{
			name:          "everything",
			totalSessions: 50,
			totalMinutes:  1000,
			unlockedIDs: []string{
				"first-session", "5-sessions", "10-sessions", "25-sessions",
				"50-sessions", "100-minutes", "500-minutes", "1000-minutes",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, newly := Evaluate(Catalog(), tt.totalSessions, tt.totalMinutes, now)
			require.Len(t, newly, len(tt.unlockedIDs))
			for _, id := range tt.unlockedIDs {
				achievement := find(t, updated, id)
				assert.True(t, achievement.Unlocked, "%s should be unlocked", id)
				require.NotNil(t, achievement.UnlockedAt)
				assert.True(t, achievement.UnlockedAt.Equal(now))
			}
			unlockedCount := 0
			for _, achievement := range updated {
				if achievement.Unlocked {
					unlockedCount++
				}
			}
			assert.Equal(t, len(tt.unlockedIDs), unlockedCount)
		})
	}
}

func TestEvaluateIsMonotonic(t *testing.T) {
	firstUnlock := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	state, newly := Evaluate(Catalog(), 5, 125, firstUnlock)
	require.Len(t, newly, 3)

	// Totals regress after a deletion: nothing may re-lock, and the original
	// unlock timestamps must survive.
	later := firstUnlock.Add(48 * time.Hour)
	state, newly = Evaluate(state, 0, 0, later)
	assert.Empty(t, newly)

	achievement := find(t, state, "5-sessions")
	assert.True(t, achievement.Unlocked)
	require.NotNil(t, achievement.UnlockedAt)
	assert.True(t, achievement.UnlockedAt.Equal(firstUnlock))
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	prior := Catalog()
	Evaluate(prior, 100, 10000, time.Now())
	for _, achievement := range prior {
		assert.False(t, achievement.Unlocked)
	}
}

func TestProgress(t *testing.T) {
	catalog := Catalog()
	century := find(t, catalog, "100-minutes")
	fiveSessions := find(t, catalog, "5-sessions")

	assert.InDelta(t, 0.5, Progress(century, 0, 50), 0.001)
	assert.InDelta(t, 1.0, Progress(century, 0, 250), 0.001, "progress is capped at 1")
	assert.InDelta(t, 0.6, Progress(fiveSessions, 3, 0), 0.001)
	assert.InDelta(t, 0.0, Progress(fiveSessions, 0, 9999), 0.001, "minutes do not count toward session badges")
}

func TestMergeOverlaysStoredState(t *testing.T) {
	unlockedAt := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)
	stored := []Achievement{
		{ID: "first-session", Unlocked: true, UnlockedAt: &unlockedAt},
		{ID: "removed-from-catalog", Unlocked: true, UnlockedAt: &unlockedAt},
		{ID: "5-sessions", Unlocked: false},
	}

	merged := Merge(Catalog(), stored)
	require.Len(t, merged, len(Catalog()))

	first := find(t, merged, "first-session")
	assert.True(t, first.Unlocked)
	assert.Equal(t, "First Steps", first.Title, "metadata comes from the catalog")

	assert.False(t, find(t, merged, "5-sessions").Unlocked)
	for _, achievement := range merged {
		assert.NotEqual(t, "removed-from-catalog", achievement.ID)
	}
}
