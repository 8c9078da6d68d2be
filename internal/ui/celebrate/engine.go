// Package celebrate runs the confetti burst shown when a focus session
// completes. The engine steps particle physics on its own goroutine and hands
// each frame to a render callback; the caller decides how frames reach the UI
// thread.
package celebrate

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Range defines a float range with random sampling.
type Range struct {
	Min float64
	Max float64
}

// Random returns a random value within the range.
func (value Range) Random(rng *rand.Rand) float64 {
	if value.Max <= value.Min {
		return value.Min
	}
	return value.Min + rng.Float64()*(value.Max-value.Min)
}

// Config contains burst timing and physics values.
type Config struct {
	FrameInterval time.Duration
	Duration      time.Duration
	ParticleCount int

	Speed   Range
	Gravity float64
	Size    Range
}

// Particle is one confetti piece in field coordinates, with the origin at the
// burst center.
type Particle struct {
	X, Y       float64
	VelocityX  float64
	VelocityY  float64
	Size       float64
	ColorIndex int
}

// Engine manages the particle burst lifecycle.
type Engine struct {
	mu     sync.Mutex
	config Config
	render func([]Particle)
	cancel context.CancelFunc
	rng    *rand.Rand
}

// New creates a new burst engine. The render callback receives a fresh frame
// on every step and nil when the burst ends.
func New(config Config, render func([]Particle)) *Engine {
	return &Engine{
		config: config,
		render: render,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start launches a burst, replacing any burst still in flight.
func (engine *Engine) Start(parent context.Context) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	particles := engine.spawn()
	engine.mu.Unlock()

	go engine.run(runCtx, particles)
}

// Stop terminates any active burst.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) spawn() []Particle {
	particles := make([]Particle, engine.config.ParticleCount)
	for i := range particles {
		angle := engine.rng.Float64() * 2 * math.Pi
		speed := engine.config.Speed.Random(engine.rng)
		particles[i] = Particle{
			VelocityX:  math.Cos(angle) * speed,
			VelocityY:  math.Sin(angle)*speed - engine.config.Speed.Max/2,
			Size:       engine.config.Size.Random(engine.rng),
			ColorIndex: engine.rng.Intn(colorCount),
		}
	}
	return particles
}

func (engine *Engine) run(ctx context.Context, particles []Particle) {
	deadline := time.Now().Add(engine.config.Duration)
	step := engine.config.FrameInterval.Seconds()

	for time.Now().Before(deadline) {
		if !sleepWithContext(ctx, engine.config.FrameInterval) {
			return
		}
		for i := range particles {
			particles[i].X += particles[i].VelocityX * step
			particles[i].Y += particles[i].VelocityY * step
			particles[i].VelocityY += engine.config.Gravity * step
		}
		engine.render(append([]Particle(nil), particles...))
	}
	engine.render(nil)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
