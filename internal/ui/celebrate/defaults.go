package celebrate

import (
	"image/color"
	"time"
)

// Colors are the confetti palette, indexed by Particle.ColorIndex.
var Colors = []color.NRGBA{
	{R: 0x4a, G: 0xa5, B: 0x4a, A: 0xff},
	{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff},
	{R: 0xea, G: 0x58, B: 0x0c, A: 0xff},
	{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
	{R: 0xa8, G: 0x55, B: 0xf7, A: 0xff},
}

const colorCount = 5

// DefaultConfig returns the standard burst parameters.
func DefaultConfig() Config {
	return Config{
		FrameInterval: 40 * time.Millisecond,
		Duration:      2 * time.Second,
		ParticleCount: 24,
		Speed:         Range{Min: 60, Max: 160},
		Gravity:       180,
		Size:          Range{Min: 4, Max: 9},
	}
}
