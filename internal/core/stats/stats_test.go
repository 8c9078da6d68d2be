package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focustree/internal/core/model"
)

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 10, 30, 0, 0, time.Local)
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name        string
		completions []time.Time
		today       time.Time
		want        int
	}{
		{
			name:        "no_sessions",
			completions: nil,
			today:       day(2024, 1, 3),
			want:        0,
		},
		{
			name:        "three_consecutive_days_ending_today",
			completions: []time.Time{day(2024, 1, 3), day(2024, 1, 2), day(2024, 1, 1)},
			today:       day(2024, 1, 3),
			want:        3,
		},
		{
			name:        "no_session_today_breaks_streak",
			completions: []time.Time{day(2024, 1, 3), day(2024, 1, 2), day(2024, 1, 1)},
			today:       day(2024, 1, 4),
			want:        0,
		},
		{
			name:        "gap_stops_counting",
			completions: []time.Time{day(2024, 1, 5), day(2024, 1, 4), day(2024, 1, 2), day(2024, 1, 1)},
			today:       day(2024, 1, 5),
			want:        2,
		},
		{
			name: "multiple_sessions_per_day_count_once",
			completions: []time.Time{
				day(2024, 1, 2), day(2024, 1, 2).Add(2 * time.Hour),
				day(2024, 1, 1), day(2024, 1, 1).Add(5 * time.Hour),
			},
			today: day(2024, 1, 2),
			want:  2,
		},
		{
			name:        "only_today",
			completions: []time.Time{day(2024, 1, 3)},
			today:       day(2024, 1, 3),
			want:        1,
		},
		{
			name:        "streak_across_month_boundary",
			completions: []time.Time{day(2024, 2, 1), day(2024, 1, 31), day(2024, 1, 30)},
			today:       day(2024, 2, 1),
			want:        3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.completions, tt.today))
		})
	}
}

func TestDailyMinutes(t *testing.T) {
	today := day(2024, 1, 7)
	sessions := []model.Session{
		{ID: "a", DurationMinutes: 25, CompletedAt: day(2024, 1, 7)},
		{ID: "b", DurationMinutes: 10, CompletedAt: day(2024, 1, 7)},
		{ID: "c", DurationMinutes: 15, CompletedAt: day(2024, 1, 5)},
		{ID: "d", DurationMinutes: 30, CompletedAt: day(2023, 12, 31)}, // outside window
	}

	totals := DailyMinutes(sessions, today, 7)
	require.Len(t, totals, 7)

	assert.Equal(t, 35, totals[6].Minutes, "today is the last bucket")
	assert.Equal(t, 15, totals[4].Minutes)
	assert.Equal(t, 0, totals[0].Minutes)
	assert.True(t, model.SameDay(totals[0].Day, day(2024, 1, 1)))
	assert.Equal(t, "Sun", totals[6].Label)
}

func TestDailyMinutesSameWeekdayOutsideWindowIgnored(t *testing.T) {
	today := day(2024, 1, 8)
	sessions := []model.Session{
		{ID: "a", DurationMinutes: 25, CompletedAt: day(2024, 1, 8)},
		// Same weekday (Monday) one week earlier must not leak into today's bucket.
		{ID: "b", DurationMinutes: 50, CompletedAt: day(2024, 1, 1)},
	}

	totals := DailyMinutes(sessions, today, 7)
	require.Len(t, totals, 7)
	assert.Equal(t, 25, totals[6].Minutes)
}

func TestDurationDistribution(t *testing.T) {
	sessions := []model.Session{
		{DurationMinutes: 25}, {DurationMinutes: 25}, {DurationMinutes: 25},
		{DurationMinutes: 10}, {DurationMinutes: 10},
		{DurationMinutes: 5},
	}

	distribution := DurationDistribution(sessions, 5)
	require.Len(t, distribution, 3)
	assert.Equal(t, DurationCount{Minutes: 25, Label: "25 min", Count: 3}, distribution[0])
	assert.Equal(t, DurationCount{Minutes: 10, Label: "10 min", Count: 2}, distribution[1])
	assert.Equal(t, DurationCount{Minutes: 5, Label: "5 min", Count: 1}, distribution[2])
}

func TestDurationDistributionTopLimit(t *testing.T) {
	var sessions []model.Session
	for minutes := 1; minutes <= 8; minutes++ {
		sessions = append(sessions, model.Session{DurationMinutes: minutes})
	}
	assert.Len(t, DurationDistribution(sessions, 5), 5)
}

func TestAverageMinutes(t *testing.T) {
	assert.Equal(t, 0, AverageMinutes(nil))
	assert.Equal(t, 25, AverageMinutes([]model.Session{{DurationMinutes: 25}}))
	assert.Equal(t, 18, AverageMinutes([]model.Session{
		{DurationMinutes: 25}, {DurationMinutes: 10},
	}))
}
