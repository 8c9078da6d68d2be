package audio

import (
	"math"
	"math/rand"
	"time"

	"focustree/internal/core/model"
)

const sampleRate = 44100

// toneBuffer renders a sine tone as mono 16-bit PCM, with the gain decaying
// exponentially toward near-silence over the tone's length.
func toneBuffer(frequency float64, duration time.Duration, gain float64) []byte {
	samples := int(float64(sampleRate) * duration.Seconds())
	buffer := make([]byte, samples*2)
	writeTone(buffer, 0, frequency, samples, gain)
	return buffer
}

// chordBuffer renders several staggered decaying tones into one buffer.
func chordBuffer(frequencies []float64, stagger, noteLength time.Duration, gain float64) []byte {
	staggerSamples := int(float64(sampleRate) * stagger.Seconds())
	noteSamples := int(float64(sampleRate) * noteLength.Seconds())
	totalSamples := staggerSamples*(len(frequencies)-1) + noteSamples

	buffer := make([]byte, totalSamples*2)
	for i, frequency := range frequencies {
		writeTone(buffer, i*staggerSamples, frequency, noteSamples, gain)
	}
	return buffer
}

func writeTone(buffer []byte, offset int, frequency float64, samples int, gain float64) {
	const floor = 0.01
	for i := 0; i < samples; i++ {
		progress := float64(i) / float64(samples)
		amplitude := gain * math.Pow(floor/gain, progress)
		value := amplitude * math.Sin(2*math.Pi*frequency*float64(i)/sampleRate)
		mixSample(buffer, offset+i, value)
	}
}

func mixSample(buffer []byte, index int, value float64) {
	position := index * 2
	if position+1 >= len(buffer) {
		return
	}
	existing := int16(buffer[position]) | int16(buffer[position+1])<<8
	mixed := float64(existing)/math.MaxInt16 + value
	if mixed > 1 {
		mixed = 1
	}
	if mixed < -1 {
		mixed = -1
	}
	sample := int16(mixed * math.MaxInt16)
	buffer[position] = byte(sample)
	buffer[position+1] = byte(sample >> 8)
}

// ambientReader is an endless PCM source for the looping background sounds:
// white noise for rain, a slowly frequency-modulated low sine for forest and
// ocean. It keeps oscillator phase across reads so the loop stays seamless.
type ambientReader struct {
	kind     model.AmbientSound
	phase    float64
	lfoPhase float64
	rng      *rand.Rand
}

func newAmbientReader(kind model.AmbientSound) *ambientReader {
	return &ambientReader{
		kind: kind,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (reader *ambientReader) Read(p []byte) (int, error) {
	const gain = 0.05
	const lfoFrequency = 0.5
	const lfoDepth = 50.0

	baseFrequency := 200.0
	if reader.kind == model.AmbientOcean {
		baseFrequency = 100.0
	}

	samples := len(p) / 2
	for i := 0; i < samples; i++ {
		var value float64
		if reader.kind == model.AmbientRain {
			value = gain * (reader.rng.Float64()*2 - 1)
		} else {
			frequency := baseFrequency + lfoDepth*math.Sin(reader.lfoPhase)
			reader.lfoPhase += 2 * math.Pi * lfoFrequency / sampleRate
			reader.phase += 2 * math.Pi * frequency / sampleRate
			value = gain * math.Sin(reader.phase)
		}

		sample := int16(value * math.MaxInt16)
		p[i*2] = byte(sample)
		p[i*2+1] = byte(sample >> 8)
	}
	return samples * 2, nil
}
