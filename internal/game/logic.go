// Package game owns the Battleship state machine: ship placement, firing,
// the computer opponent and the animation timers that move play along.
package game

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/seaboard/battleship/internal/input"
	"github.com/seaboard/battleship/internal/menu"
	"github.com/seaboard/battleship/internal/model"
	"github.com/seaboard/battleship/internal/scene"
	"github.com/seaboard/battleship/internal/timer"
)

// Timer intervals.
const (
	AnimationSpeed = 55 * time.Millisecond
	AISpeed        = 100 * time.Millisecond
	DemoDelay      = 20 * time.Millisecond

	// AutoplaceTries is the number of random draws per ship before giving up.
	AutoplaceTries = 5000
)

var (
	ErrAutoplaceExhausted = errors.New("autoplace exhausted")
	ErrBoardFull          = errors.New("board is full")
)

// View is the camera and redraw surface the logic animates.
type View interface {
	Refresh()
	Rotation(axis int, l scene.Layer) float64
	Translation(axis int, l scene.Layer) float64
	SetRotate(axis int, v float64, mode scene.Mode)
	SetTranslate(axis int, v float64, mode scene.Mode)
	ReadyRocket()
	Size() (int, int)
}

// Projectile is the rocket flown during FIREING.
type Projectile interface {
	Move() bool
	Reset()
	Stopped() bool
}

// Scheduler runs repeating callbacks until they return false.
type Scheduler interface {
	Start(delay time.Duration, fn func() bool) timer.ID
	StopAll()
}

// SoundPlayer plays turn result cues.
type SoundPlayer interface {
	Play(s model.Sound)
	Stop()
}

// Config wires a Logic to its collaborators. Sound, Quit and Rand may be
// nil.
type Config struct {
	Model  *model.Model
	View   View
	Rocket Projectile
	Timers Scheduler
	Sound  SoundPlayer
	Logger *log.Logger
	Rand   *rand.Rand
	Quit   func()
}

type boardMotion struct {
	rrate, rend [3]float64
	trate, tend [3]float64
}

type mouseState struct {
	x, y    float64
	buttons input.MouseButton
	mod     input.Modifiers
}

// Logic is the game controller. All methods must be called from the
// goroutine that advances the scheduler.
type Logic struct {
	model  *model.Model
	menu   *menu.Menu
	view   View
	rocket Projectile
	timers Scheduler
	sound  SoundPlayer
	log    *log.Logger
	rng    *rand.Rand
	quit   func()

	motion   boardMotion
	cancel   bool
	ai       [2]aiMove
	mouse    mouseState
	saved    model.GameState
	deferred func()

	battle *BattleLog
	games  int
	err    error
}

// New builds a Logic and shows the title menu. The model must be fresh or
// reset.
func New(cfg Config) *Logic {
	l := &Logic{
		model:  cfg.Model,
		view:   cfg.View,
		rocket: cfg.Rocket,
		timers: cfg.Timers,
		sound:  cfg.Sound,
		log:    cfg.Logger,
		rng:    cfg.Rand,
		quit:   cfg.Quit,
		battle: NewBattleLog(200),
	}
	if l.log == nil {
		l.log = log.Default()
	}
	if l.rng == nil {
		l.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if l.sound == nil {
		l.sound = nopSound{}
	}
	l.menu = menu.New(l.model, menuHandler{l})
	l.init()
	return l
}

type nopSound struct{}

func (nopSound) Play(model.Sound) {}
func (nopSound) Stop()            {}

// Model returns the game data.
func (l *Logic) Model() *model.Model { return l.model }

// Menu returns the menu controller.
func (l *Logic) Menu() *menu.Menu { return l.menu }

// BattleLog returns the shot history of the current game.
func (l *Logic) BattleLog() *BattleLog { return l.battle }

// Games returns how many games have finished.
func (l *Logic) Games() int { return l.games }

// Err returns the fatal error that stopped the game, if any.
func (l *Logic) Err() error { return l.err }

func (l *Logic) init() {
	l.model.Reset()
	l.motion = boardMotion{}
	l.cancel = false
	l.saved = model.StatePlaceShips
	l.deferred = nil
	l.mouse = mouseState{}
	for i := range l.ai {
		l.ai[i] = aiMove{mod: l.rng.IntN(2)}
	}
	l.battle.Clear()
	l.menu.Close()

	if l.model.Demo {
		l.Demo()
	} else {
		l.menu.Load(l.menu.Main)
	}
}

// NewGame leaves the title menu and starts placement.
func (l *Logic) NewGame() {
	if l.model.State != model.StateInit {
		l.log.Warn("new game outside the title menu", "state", l.model.State)
		return
	}
	l.nextState()
}

// OnePlayer starts a human against hard AI game.
func (l *Logic) OnePlayer() {
	p1, p2 := &l.model.Players[0], &l.model.Players[1]
	p1.AI, p1.AutoPlace, p1.Fog = model.Human, false, false
	p2.AI, p2.AutoPlace, p2.Fog = model.HardAI, true, true
	l.NewGame()
}

// TwoPlayer starts a hot-seat game between two humans.
func (l *Logic) TwoPlayer() {
	for i := range l.model.Players {
		p := &l.model.Players[i]
		p.AI, p.AutoPlace, p.Fog = model.Human, false, true
	}
	l.NewGame()
}

// Demo starts a game between two random AIs that restarts when it ends.
func (l *Logic) Demo() {
	l.model.Demo = true
	for i := range l.model.Players {
		p := &l.model.Players[i]
		p.AI = model.AIType(l.rng.IntN(3) + 1)
		p.AutoPlace, p.Fog = true, false
	}
	l.NewGame()
}

// Restart abandons the current game and returns to the title menu (or a
// fresh demo game).
func (l *Logic) Restart() {
	l.timers.StopAll()
	l.sound.Stop()
	l.init()
	l.view.Refresh()
}

// Quit asks the host to exit.
func (l *Logic) Quit() {
	l.log.Info("quit requested")
	if l.quit != nil {
		l.quit()
	}
}

// fail records a fatal error and stops all animation.
func (l *Logic) fail(err error) {
	if l.err != nil {
		return
	}
	l.err = err
	l.timers.StopAll()
	l.log.Error("game stopped", "err", err, "state", l.model.State)
}

// menuClosed resumes play after ESC closes the options menu.
func (l *Logic) menuClosed() {
	if l.model.State != model.StatePlaying {
		return
	}
	// Players switched to human forget what their AI knew.
	for i := range l.model.Players {
		if !l.model.Players[i].AI.IsAI() {
			l.ai[i].chosen = false
			l.ai[i].hits = l.ai[i].hits[:0]
		}
	}
	if l.model.Current().AI.IsAI() {
		l.startAI()
	}
}

type menuHandler struct{ l *Logic }

func (h menuHandler) NewGame()    { h.l.NewGame() }
func (h menuHandler) OnePlayer()  { h.l.OnePlayer() }
func (h menuHandler) TwoPlayer()  { h.l.TwoPlayer() }
func (h menuHandler) Demo()       { h.l.Demo() }
func (h menuHandler) Quit()       { h.l.Quit() }
func (h menuHandler) Restart()    { h.l.Restart() }
func (h menuHandler) MenuClosed() { h.l.menuClosed() }
