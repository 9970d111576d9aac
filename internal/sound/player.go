package sound

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/seaboard/battleship/internal/model"
)

// Player plays one cue at a time on an ebiten audio context.
type Player struct {
	ctx   *audio.Context
	clips map[model.Sound][]byte
	curr  *audio.Player
	log   *log.Logger
}

// New synthesizes every cue and opens the audio context. Only one context
// may exist per process.
func New(logger *log.Logger, rng *rand.Rand) *Player {
	p := &Player{
		ctx:   audio.NewContext(SampleRate),
		clips: make(map[model.Sound][]byte, len(cues)),
		log:   logger,
	}
	for s := range cues {
		p.clips[s] = Synth(s, rng)
	}
	return p
}

// Play stops the current cue and starts s.
func (p *Player) Play(s model.Sound) {
	clip, ok := p.clips[s]
	if !ok {
		p.log.Warn("unknown sound cue", "cue", s)
		return
	}
	p.Stop()
	p.curr = p.ctx.NewPlayerFromBytes(clip)
	p.curr.Play()
	p.log.Debug("sound", "cue", s)
}

// Stop silences the current cue.
func (p *Player) Stop() {
	if p.curr == nil {
		return
	}
	p.curr.Pause()
	if err := p.curr.Close(); err != nil {
		p.log.Warn("close sound player", "err", err)
	}
	p.curr = nil
}
