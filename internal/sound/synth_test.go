package sound

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/seaboard/battleship/internal/model"
)

func TestSynthLengths(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, s := range []model.Sound{model.SoundMiss, model.SoundHit, model.SoundSunk, model.SoundWin} {
		var total time.Duration
		for _, tn := range cues[s] {
			total += tn.length
		}
		clip := Synth(s, rng)
		want := 0
		for _, tn := range cues[s] {
			want += int(tn.length.Seconds()*SampleRate) * frameBytes
		}
		if len(clip) != want {
			t.Fatalf("%s: expected %d bytes for %v, got %d", s, want, total, len(clip))
		}
		if len(clip)%frameBytes != 0 {
			t.Fatalf("%s: clip is not whole frames", s)
		}
	}
}

func TestSynthChannelsMatch(t *testing.T) {
	clip := Synth(model.SoundWin, rand.New(rand.NewPCG(3, 4)))
	for i := 0; i+frameBytes <= len(clip); i += frameBytes {
		if !bytes.Equal(clip[i:i+2], clip[i+2:i+4]) {
			t.Fatalf("frame %d: left and right differ", i/frameBytes)
		}
	}
}

func TestSynthFadesOut(t *testing.T) {
	clip := Synth(model.SoundHit, rand.New(rand.NewPCG(5, 6)))
	last := clip[len(clip)-frameBytes:]
	sample := int16(uint16(last[0]) | uint16(last[1])<<8)
	if sample > 100 || sample < -100 {
		t.Fatalf("expected near silence at the end, got %d", sample)
	}
}

func TestSynthUnknownCue(t *testing.T) {
	if clip := Synth(model.Sound(99), rand.New(rand.NewPCG(1, 1))); len(clip) != 0 {
		t.Fatalf("expected empty clip, got %d bytes", len(clip))
	}
}

func TestSynthDeterministic(t *testing.T) {
	a := Synth(model.SoundMiss, rand.New(rand.NewPCG(7, 8)))
	b := Synth(model.SoundMiss, rand.New(rand.NewPCG(7, 8)))
	if !bytes.Equal(a, b) {
		t.Fatal("same seed produced different clips")
	}
}
