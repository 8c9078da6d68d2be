package timer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Duration limits for focus sessions, in minutes.
const (
	MinMinutes = 1
	MaxMinutes = 180
)

// ErrInvalidDuration indicates a custom duration outside the allowed range.
var ErrInvalidDuration = errors.New("duration must be between 1 and 180 minutes")

// Snapshot is a point-in-time copy of the timer state.
type Snapshot struct {
	State            State
	Mode             Mode
	TotalSeconds     int
	RemainingSeconds int
	Progress         float64
}

// Timer is the countdown state machine. It owns no goroutine: an external
// scheduler calls Tick once per elapsed second, and Tick is a no-op unless the
// timer is running, so pausing or resetting stops tick handling synchronously.
type Timer struct {
	mu               sync.Mutex
	state            State
	mode             Mode
	totalSeconds     int
	remainingSeconds int
	events           []chan Event
	closed           bool
}

// New creates an idle focus timer with the given duration in minutes.
func New(minutes int) *Timer {
	if minutes < MinMinutes || minutes > MaxMinutes {
		minutes = 25
	}
	return &Timer{
		state:            StateIdle,
		mode:             ModeFocus,
		totalSeconds:     minutes * 60,
		remainingSeconds: minutes * 60,
	}
}

// ParseCustomDuration validates free-text minute input for a focus session.
func ParseCustomDuration(text string) (int, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", text, ErrInvalidDuration)
	}
	if minutes < MinMinutes || minutes > MaxMinutes {
		return 0, ErrInvalidDuration
	}
	return minutes, nil
}

// Subscribe registers a new observer channel.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	timer.events = append(timer.events, ch)
	timer.mu.Unlock()
	return ch
}

// Close shuts down all observer channels. The timer must not be used after.
func (timer *Timer) Close() {
	timer.mu.Lock()
	if timer.closed {
		timer.mu.Unlock()
		return
	}
	timer.closed = true
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// SelectDuration re-initializes the countdown for a new focus duration.
// It is a no-op while running or mid-session, and reverts silently when the
// value is out of range; free-text input goes through ParseCustomDuration.
func (timer *Timer) SelectDuration(minutes int) {
	timer.mu.Lock()
	if timer.state == StateRunning || timer.state == StateCompleted {
		timer.mu.Unlock()
		return
	}
	if timer.remainingSeconds != timer.totalSeconds {
		timer.mu.Unlock()
		return
	}
	if minutes < MinMinutes || minutes > MaxMinutes {
		timer.mu.Unlock()
		return
	}
	timer.totalSeconds = minutes * 60
	timer.remainingSeconds = timer.totalSeconds
	timer.emitLocked(timer.progressEventLocked())
	timer.mu.Unlock()
}

// Start transitions an idle or paused timer to running. A completed countdown
// is refilled first. Start has no effect while already running.
func (timer *Timer) Start() {
	timer.mu.Lock()
	if timer.state == StateRunning {
		timer.mu.Unlock()
		return
	}
	if timer.remainingSeconds == 0 {
		timer.remainingSeconds = timer.totalSeconds
	}
	timer.state = StateRunning
	timer.emitLocked(timer.stateEventLocked())
	timer.mu.Unlock()
}

// Pause freezes a running countdown. No effect in any other state.
func (timer *Timer) Pause() {
	timer.mu.Lock()
	if timer.state != StateRunning {
		timer.mu.Unlock()
		return
	}
	timer.state = StatePaused
	timer.emitLocked(timer.stateEventLocked())
	timer.mu.Unlock()
}

// Reset returns the timer to idle with a full countdown and focus mode.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	timer.state = StateIdle
	timer.mode = ModeFocus
	timer.remainingSeconds = timer.totalSeconds
	timer.emitLocked(timer.stateEventLocked())
	timer.mu.Unlock()
}

// StartBreak switches to break mode for the given number of minutes and
// starts the countdown immediately.
func (timer *Timer) StartBreak(minutes int) {
	if minutes <= 0 {
		return
	}
	timer.mu.Lock()
	timer.mode = ModeBreak
	timer.totalSeconds = minutes * 60
	timer.remainingSeconds = timer.totalSeconds
	timer.state = StateRunning
	timer.emitLocked(timer.stateEventLocked())
	timer.mu.Unlock()
}

// Tick advances the countdown by one second. It must be called once per
// elapsed second while running and is a no-op otherwise. When the countdown
// reaches zero the timer emits exactly one completion event carrying the
// originally selected duration in minutes.
func (timer *Timer) Tick() {
	timer.mu.Lock()
	if timer.state != StateRunning {
		timer.mu.Unlock()
		return
	}

	timer.remainingSeconds--
	if timer.remainingSeconds < 0 {
		timer.remainingSeconds = 0
	}
	timer.emitLocked(timer.progressEventLocked())

	if timer.remainingSeconds == 0 {
		completedMode := timer.mode
		timer.state = StateCompleted
		if timer.mode == ModeBreak {
			timer.mode = ModeFocus
		}
		timer.emitLocked(Event{
			Type:     EventCompleted,
			State:    StateCompleted,
			Mode:     completedMode,
			Progress: 100,
			Minutes:  timer.totalSeconds / 60,
			At:       time.Now(),
		})
	}
	timer.mu.Unlock()
}

// Snapshot returns a copy of the current timer state.
func (timer *Timer) Snapshot() Snapshot {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return Snapshot{
		State:            timer.state,
		Mode:             timer.mode,
		TotalSeconds:     timer.totalSeconds,
		RemainingSeconds: timer.remainingSeconds,
		Progress:         timer.progressLocked(),
	}
}

func (timer *Timer) progressLocked() float64 {
	if timer.totalSeconds <= 0 {
		return 0
	}
	progress := float64(timer.totalSeconds-timer.remainingSeconds) / float64(timer.totalSeconds) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

func (timer *Timer) stateEventLocked() Event {
	return Event{
		Type:      EventStateChange,
		State:     timer.state,
		Mode:      timer.mode,
		Remaining: timer.remainingSeconds,
		Progress:  timer.progressLocked(),
		At:        time.Now(),
	}
}

func (timer *Timer) progressEventLocked() Event {
	return Event{
		Type:      EventProgress,
		State:     timer.state,
		Mode:      timer.mode,
		Remaining: timer.remainingSeconds,
		Progress:  timer.progressLocked(),
		At:        time.Now(),
	}
}

func (timer *Timer) emitLocked(event Event) {
	for _, ch := range timer.events {
		select {
		case ch <- event:
		default:
		}
	}
}
