package celebrate

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	fixed := Range{Min: 5, Max: 5}
	assert.Equal(t, 5.0, fixed.Random(rng))

	spread := Range{Min: 10, Max: 20}
	for i := 0; i < 100; i++ {
		value := spread.Random(rng)
		assert.GreaterOrEqual(t, value, 10.0)
		assert.Less(t, value, 20.0)
	}
}

func TestSpawnCount(t *testing.T) {
	engine := New(DefaultConfig(), func([]Particle) {})
	particles := engine.spawn()
	assert.Len(t, particles, DefaultConfig().ParticleCount)
	for _, particle := range particles {
		assert.GreaterOrEqual(t, particle.ColorIndex, 0)
		assert.Less(t, particle.ColorIndex, len(Colors))
	}
}

func TestBurstRendersFramesAndEnds(t *testing.T) {
	config := DefaultConfig()
	config.FrameInterval = 5 * time.Millisecond
	config.Duration = 40 * time.Millisecond

	var mu sync.Mutex
	frames := 0
	done := make(chan struct{})
	engine := New(config, func(particles []Particle) {
		mu.Lock()
		defer mu.Unlock()
		if particles == nil {
			close(done)
			return
		}
		frames++
	})

	engine.Start(context.Background())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("burst never finished")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Greater(t, frames, 0)
}

func TestStopCancelsBurst(t *testing.T) {
	config := DefaultConfig()
	config.FrameInterval = 5 * time.Millisecond
	config.Duration = 10 * time.Second

	ended := false
	var mu sync.Mutex
	engine := New(config, func(particles []Particle) {
		mu.Lock()
		defer mu.Unlock()
		if particles == nil {
			ended = true
		}
	})

	engine.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	engine.Stop()
	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.False(t, ended, "cancelled burst must not emit the final frame")
}
