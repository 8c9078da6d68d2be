package timer

import "time"

// State represents the current Timer lifecycle phase.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

// Mode distinguishes focus countdowns from break countdowns.
type Mode string

const (
	ModeFocus Mode = "focus"
	ModeBreak Mode = "break"
)

// EventType defines the type of Timer event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventCompleted   EventType = "completed"
)

// Event represents a Timer update for observers.
type Event struct {
	Type      EventType
	State     State
	Mode      Mode
	Remaining int
	Progress  float64
	Minutes   int
	At        time.Time
}
