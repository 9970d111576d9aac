// Package sound plays the shot result cues. The clips are synthesized at
// start-up, there are no audio assets.
package sound

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/seaboard/battleship/internal/model"
)

// Output format: 16-bit little-endian stereo.
const (
	SampleRate     = 44100
	channels       = 2
	bytesPerSample = 2
	frameBytes     = channels * bytesPerSample
	volume         = 12000
)

// tone is a swept sine with optional noise, faded out over its length.
type tone struct {
	from, to float64 // Hz
	length   time.Duration
	noise    float64 // 0 pure tone, 1 pure noise
}

var cues = map[model.Sound][]tone{
	model.SoundMiss: {
		{from: 900, to: 300, length: 350 * time.Millisecond, noise: 0.8},
	},
	model.SoundHit: {
		{from: 120, to: 40, length: 450 * time.Millisecond, noise: 0.5},
	},
	model.SoundSunk: {
		{from: 110, to: 35, length: 400 * time.Millisecond, noise: 0.6},
		{from: 440, to: 110, length: 600 * time.Millisecond, noise: 0.1},
	},
	model.SoundWin: {
		{from: 523, to: 523, length: 150 * time.Millisecond},
		{from: 659, to: 659, length: 150 * time.Millisecond},
		{from: 784, to: 784, length: 150 * time.Millisecond},
		{from: 1047, to: 1047, length: 400 * time.Millisecond},
	},
}

// Synth renders the PCM clip for s. Unknown cues give an empty clip.
func Synth(s model.Sound, rng *rand.Rand) []byte {
	var out []byte
	for _, t := range cues[s] {
		out = append(out, t.render(rng)...)
	}
	return out
}

func (t tone) render(rng *rand.Rand) []byte {
	n := int(t.length.Seconds() * SampleRate)
	buf := make([]byte, n*frameBytes)
	phase := 0.0
	for i := range n {
		pos := float64(i) / float64(n)
		freq := t.from + (t.to-t.from)*pos
		phase += 2 * math.Pi * freq / SampleRate

		v := math.Sin(phase) * (1 - t.noise)
		if t.noise > 0 {
			v += (rng.Float64()*2 - 1) * t.noise
		}
		// short attack, linear release
		env := min(1, float64(i)/200) * (1 - pos)
		sample := int16(v * env * volume)

		for ch := range channels {
			base := i*frameBytes + ch*bytesPerSample
			buf[base] = byte(sample)
			buf[base+1] = byte(sample >> 8)
		}
	}
	return buf
}
