package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focustree/internal/core/model"
)

func TestStoreGetMissingKey(t *testing.T) {
	store, err := OpenDir(t.TempDir())
	require.NoError(t, err)

	var sessions []model.Session
	found, err := store.Get("sessions", &sessions)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, sessions)
}

func TestStoreSetGetRoundTrip(t *testing.T) {
	store, err := OpenDir(t.TempDir())
	require.NoError(t, err)

	completedAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	written := []model.Session{
		{ID: "abc", DurationMinutes: 25, CompletedAt: completedAt},
	}
	require.NoError(t, store.Set("sessions", written))

	var loaded []model.Session
	found, err := store.Get("sessions", &loaded)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, loaded, 1)
	assert.Equal(t, "abc", loaded[0].ID)
	assert.Equal(t, 25, loaded[0].DurationMinutes)
	assert.True(t, completedAt.Equal(loaded[0].CompletedAt), "timestamps must rehydrate")
}

func TestStoreSetOverwrites(t *testing.T) {
	store, err := OpenDir(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("goals", model.DailyGoal{TargetSessions: 4, TargetMinutes: 100}))
	require.NoError(t, store.Set("goals", model.DailyGoal{TargetSessions: 6, TargetMinutes: 150}))

	var goal model.DailyGoal
	found, err := store.Get("goals", &goal)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, model.DailyGoal{TargetSessions: 6, TargetMinutes: 150}, goal)
}

func TestStoreCorruptFileBackedUp(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenDir(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "sessions.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	var sessions []model.Session
	found, err := store.Get("sessions", &sessions)
	assert.False(t, found)
	assert.Error(t, err)

	_, statErr := os.Stat(path + ".corrupt")
	assert.NoError(t, statErr, "corrupt file should be backed up")
}

func TestSettingsApplyValidation(t *testing.T) {
	tests := []struct {
		name     string
		fileData yamlSettings
		want     model.Settings
	}{
		{
			name:     "all_valid",
			fileData: yamlSettings{FocusMinutes: 45, TreeTheme: "autumn", AmbientSound: "rain", Autostart: true},
			want:     model.Settings{FocusMinutes: 45, TreeTheme: model.ThemeAutumn, Ambient: model.AmbientRain, Autostart: true},
		},
		{
			name:     "out_of_range_minutes_keeps_default",
			fileData: yamlSettings{FocusMinutes: 500, TreeTheme: "spring"},
			want:     model.Settings{FocusMinutes: 25, TreeTheme: model.ThemeSpring, Ambient: model.AmbientNone},
		},
		{
			name:     "unknown_theme_and_sound_keep_defaults",
			fileData: yamlSettings{FocusMinutes: 15, TreeTheme: "neon", AmbientSound: "dubstep"},
			want:     model.Settings{FocusMinutes: 15, TreeTheme: model.ThemeDefault, Ambient: model.AmbientNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := model.DefaultSettings()
			applyYamlSettings(&settings, tt.fileData)
			assert.Equal(t, tt.want, settings)
		})
	}
}
