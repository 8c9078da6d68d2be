// Package audio synthesises the timer's sound cues and ambient loops in
// process; there are no bundled sound files.
package audio

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"focustree/internal/core/model"
)

// Player owns the audio device and plays one-shot cues plus a single looping
// ambient sound. All methods are safe on a nil receiver, which is how the
// application runs when no audio device is available.
type Player struct {
	context     *oto.Context
	mu          sync.Mutex
	ambient     *oto.Player
	ambientKind model.AmbientSound
}

// NewPlayer opens the audio device and waits for it to become ready.
func NewPlayer() (*Player, error) {
	options := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}
	context, ready, err := oto.NewContext(options)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready
	return &Player{context: context}, nil
}

// PlayCompletion plays the session-complete chord (C5, E5, G5 staggered).
func (player *Player) PlayCompletion() {
	if player == nil {
		return
	}
	player.playBuffer(chordBuffer(
		[]float64{523.25, 659.25, 783.99},
		150*time.Millisecond,
		500*time.Millisecond,
		0.3,
	))
}

// PlayTick plays the short countdown tick used in the final seconds.
func (player *Player) PlayTick() {
	if player == nil {
		return
	}
	player.playBuffer(toneBuffer(800, 100*time.Millisecond, 0.2))
}

// PlayBreak plays the break-over tone.
func (player *Player) PlayBreak() {
	if player == nil {
		return
	}
	player.playBuffer(toneBuffer(400, 300*time.Millisecond, 0.2))
}

// StartAmbient starts the looping background sound. Calling it again with the
// kind already playing is a no-op; any other kind replaces the active loop.
// AmbientNone stops playback.
func (player *Player) StartAmbient(kind model.AmbientSound) {
	if player == nil {
		return
	}
	player.mu.Lock()
	if kind == player.ambientKind && player.ambient != nil {
		player.mu.Unlock()
		return
	}
	player.mu.Unlock()

	player.StopAmbient()
	if kind == model.AmbientNone || !model.ValidAmbient(kind) {
		return
	}

	player.mu.Lock()
	player.ambient = player.context.NewPlayer(newAmbientReader(kind))
	player.ambientKind = kind
	player.ambient.Play()
	player.mu.Unlock()
}

// StopAmbient stops the looping background sound if one is active.
func (player *Player) StopAmbient() {
	if player == nil {
		return
	}
	player.mu.Lock()
	ambient := player.ambient
	player.ambient = nil
	player.ambientKind = model.AmbientNone
	player.mu.Unlock()

	if ambient != nil {
		_ = ambient.Close()
	}
}

// Close stops all playback and releases the device.
func (player *Player) Close() {
	if player == nil {
		return
	}
	player.StopAmbient()
	_ = player.context.Suspend()
}

func (player *Player) playBuffer(buffer []byte) {
	cue := player.context.NewPlayer(bytes.NewReader(buffer))
	cue.Play()

	// Samples are mono int16, so the buffer length fixes the play time.
	playTime := time.Duration(len(buffer)/2) * time.Second / sampleRate
	time.AfterFunc(playTime+100*time.Millisecond, func() {
		_ = cue.Close()
	})
}
