// Package achievements derives milestone badges from cumulative session totals.
// Evaluation is a pure function over the prior unlock state: unlocks are
// monotonic, so deleting sessions never re-locks a badge.
package achievements

import "time"

// StorageKey is the store key under which unlock state is persisted.
const StorageKey = "achievements"

// Metric selects which cumulative total an achievement measures.
type Metric string

const (
	MetricSessionCount Metric = "sessions"
	MetricTotalMinutes Metric = "minutes"
)

// Achievement is a named milestone with its unlock state.
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Requirement int        `json:"requirement"`
	Metric      Metric     `json:"metric"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

// Catalog returns the static achievement definitions, all locked.
func Catalog() []Achievement {
	return []Achievement{
		{ID: "first-session", Title: "First Steps", Description: "Complete your first session", Icon: "🌱", Requirement: 1, Metric: MetricSessionCount},
		{ID: "5-sessions", Title: "Getting Started", Description: "Complete 5 sessions", Icon: "🌿", Requirement: 5, Metric: MetricSessionCount},
		{ID: "10-sessions", Title: "Consistent", Description: "Complete 10 sessions", Icon: "🌳", Requirement: 10, Metric: MetricSessionCount},
		{ID: "25-sessions", Title: "Dedicated", Description: "Complete 25 sessions", Icon: "🎋", Requirement: 25, Metric: MetricSessionCount},
		{ID: "50-sessions", Title: "Master", Description: "Complete 50 sessions", Icon: "🌲", Requirement: 50, Metric: MetricSessionCount},
		{ID: "100-minutes", Title: "Century", Description: "Focus for 100 minutes", Icon: "⏱️", Requirement: 100, Metric: MetricTotalMinutes},
		{ID: "500-minutes", Title: "Marathon", Description: "Focus for 500 minutes", Icon: "⏰", Requirement: 500, Metric: MetricTotalMinutes},
		{ID: "1000-minutes", Title: "Legend", Description: "Focus for 1000 minutes", Icon: "🏆", Requirement: 1000, Metric: MetricTotalMinutes},
	}
}

// Merge overlays persisted unlock state onto the catalog. Entries unknown to
// the catalog are dropped; catalog entries missing from the stored state stay
// locked. Display metadata always comes from the catalog.
func Merge(catalog, stored []Achievement) []Achievement {
	unlocked := make(map[string]Achievement, len(stored))
	for _, achievement := range stored {
		if achievement.Unlocked {
			unlocked[achievement.ID] = achievement
		}
	}

	merged := append([]Achievement(nil), catalog...)
	for i := range merged {
		if prior, ok := unlocked[merged[i].ID]; ok {
			merged[i].Unlocked = true
			merged[i].UnlockedAt = prior.UnlockedAt
		}
	}
	return merged
}

// Evaluate applies the current totals to the prior unlock state and returns
// the updated state along with any newly unlocked achievements. Unlocked
// entries are never altered, regardless of the totals.
func Evaluate(prior []Achievement, totalSessions, totalMinutes int, now time.Time) ([]Achievement, []Achievement) {
	updated := append([]Achievement(nil), prior...)
	var newlyUnlocked []Achievement

	for i := range updated {
		if updated[i].Unlocked {
			continue
		}
		if metricValue(updated[i].Metric, totalSessions, totalMinutes) >= updated[i].Requirement {
			unlockedAt := now
			updated[i].Unlocked = true
			updated[i].UnlockedAt = &unlockedAt
			newlyUnlocked = append(newlyUnlocked, updated[i])
		}
	}
	return updated, newlyUnlocked
}

// Progress reports how far the totals are toward the requirement, in [0, 1].
func Progress(achievement Achievement, totalSessions, totalMinutes int) float64 {
	if achievement.Requirement <= 0 {
		return 1
	}
	progress := float64(metricValue(achievement.Metric, totalSessions, totalMinutes)) / float64(achievement.Requirement)
	if progress > 1 {
		return 1
	}
	if progress < 0 {
		return 0
	}
	return progress
}

func metricValue(metric Metric, totalSessions, totalMinutes int) int {
	if metric == MetricTotalMinutes {
		return totalMinutes
	}
	return totalSessions
}
