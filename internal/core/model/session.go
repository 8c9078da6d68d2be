package model

import "time"

// Session is one completed focus interval. Sessions are created only when a
// focus countdown runs to zero, never on manual reset.
type Session struct {
	ID              string    `json:"id"`
	DurationMinutes int       `json:"durationMinutes"`
	CompletedAt     time.Time `json:"completedAt"`
}

// DailyGoal holds the user-configured targets for a single day.
type DailyGoal struct {
	TargetSessions int `json:"targetSessions"`
	TargetMinutes  int `json:"targetMinutes"`
}

// DefaultDailyGoal returns the out-of-the-box daily targets.
func DefaultDailyGoal() DailyGoal {
	return DailyGoal{
		TargetSessions: 4,
		TargetMinutes:  100,
	}
}

// SameDay reports whether two times fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
