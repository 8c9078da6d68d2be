package goals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focustree/internal/core/model"
)

type memoryStore struct {
	goal  *model.DailyGoal
	fail  bool
	wrote int
}

func (store *memoryStore) Get(key string, into any) (bool, error) {
	if store.goal == nil {
		return false, nil
	}
	*(into.(*model.DailyGoal)) = *store.goal
	return true, nil
}

func (store *memoryStore) Set(key string, value any) error {
	store.wrote++
	goal := value.(model.DailyGoal)
	store.goal = &goal
	return nil
}

func TestDefaultGoal(t *testing.T) {
	tracker := New(&memoryStore{})
	assert.Equal(t, model.DailyGoal{TargetSessions: 4, TargetMinutes: 100}, tracker.Goal())
}

func TestSetValidation(t *testing.T) {
	tests := []struct {
		name     string
		sessions int
		minutes  int
		wantErr  bool
	}{
		{name: "valid", sessions: 6, minutes: 150},
		{name: "zero_sessions", sessions: 0, minutes: 100, wantErr: true},
		{name: "zero_minutes", sessions: 4, minutes: 0, wantErr: true},
		{name: "negative", sessions: -1, minutes: -5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryStore{}
			tracker := New(store)
			err := tracker.Set(tt.sessions, tt.minutes)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGoal)
				assert.Equal(t, model.DefaultDailyGoal(), tracker.Goal(), "invalid input leaves state unchanged")
				assert.Zero(t, store.wrote)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.DailyGoal{TargetSessions: tt.sessions, TargetMinutes: tt.minutes}, tracker.Goal())
			assert.Equal(t, 1, store.wrote)
		})
	}
}

func TestLoadStoredGoal(t *testing.T) {
	store := &memoryStore{goal: &model.DailyGoal{TargetSessions: 8, TargetMinutes: 200}}
	tracker := New(store)
	require.NoError(t, tracker.Load())
	assert.Equal(t, model.DailyGoal{TargetSessions: 8, TargetMinutes: 200}, tracker.Goal())
}

func TestLoadIgnoresInvalidStoredGoal(t *testing.T) {
	store := &memoryStore{goal: &model.DailyGoal{TargetSessions: 0, TargetMinutes: -3}}
	tracker := New(store)
	require.NoError(t, tracker.Load())
	assert.Equal(t, model.DefaultDailyGoal(), tracker.Goal())
}

func TestProgress(t *testing.T) {
	assert.InDelta(t, 0.5, Progress(2, 4), 0.001)
	assert.InDelta(t, 1.0, Progress(6, 4), 0.001, "progress is capped")
	assert.InDelta(t, 0.0, Progress(0, 4), 0.001)
}
