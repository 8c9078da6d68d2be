package goals

import (
	"errors"
	"sync"

	"focustree/internal/core/history"
	"focustree/internal/core/model"
)

// StorageKey is the store key under which the daily goal is persisted.
const StorageKey = "goals"

// ErrInvalidGoal indicates a non-positive goal target.
var ErrInvalidGoal = errors.New("goal targets must be positive")

// Tracker holds the user's daily targets and compares them to today's totals.
type Tracker struct {
	mu    sync.Mutex
	store history.Store
	goal  model.DailyGoal
}

// New creates a tracker with the default goal, backed by the given store.
func New(store history.Store) *Tracker {
	return &Tracker{
		store: store,
		goal:  model.DefaultDailyGoal(),
	}
}

// Load replaces the in-memory goal with the persisted one, if any.
func (tracker *Tracker) Load() error {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()

	var stored model.DailyGoal
	found, err := tracker.store.Get(StorageKey, &stored)
	if err != nil {
		return err
	}
	if found && stored.TargetSessions > 0 && stored.TargetMinutes > 0 {
		tracker.goal = stored
	}
	return nil
}

// Goal returns the current daily targets.
func (tracker *Tracker) Goal() model.DailyGoal {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.goal
}

// Set validates and persists new daily targets.
func (tracker *Tracker) Set(targetSessions, targetMinutes int) error {
	if targetSessions <= 0 || targetMinutes <= 0 {
		return ErrInvalidGoal
	}

	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	tracker.goal = model.DailyGoal{
		TargetSessions: targetSessions,
		TargetMinutes:  targetMinutes,
	}
	return tracker.store.Set(StorageKey, tracker.goal)
}

// Progress reports completion toward a target in [0, 1].
func Progress(current, target int) float64 {
	if target <= 0 {
		return 1
	}
	progress := float64(current) / float64(target)
	if progress > 1 {
		return 1
	}
	if progress < 0 {
		return 0
	}
	return progress
}
