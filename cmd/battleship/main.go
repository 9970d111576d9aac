package main

import (
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/seaboard/battleship/internal/config"
	"github.com/seaboard/battleship/internal/effects"
	"github.com/seaboard/battleship/internal/game"
	"github.com/seaboard/battleship/internal/input"
	"github.com/seaboard/battleship/internal/model"
	"github.com/seaboard/battleship/internal/rocket"
	"github.com/seaboard/battleship/internal/scene"
	"github.com/seaboard/battleship/internal/sound"
	"github.com/seaboard/battleship/internal/timer"
	"github.com/seaboard/battleship/internal/view"
)

const (
	title  = model.Name
	cellPx = 16

	// Held arrows repeat after repeatDelay ticks, every repeatEvery ticks.
	repeatDelay = 24
	repeatEvery = 4
)

var virtualKeys = []struct {
	key    ebiten.Key
	vk     input.Key
	repeat bool
}{
	{ebiten.KeyArrowLeft, input.KeyLeft, true},
	{ebiten.KeyArrowRight, input.KeyRight, true},
	{ebiten.KeyArrowUp, input.KeyUp, true},
	{ebiten.KeyArrowDown, input.KeyDown, true},
	{ebiten.KeyEnter, input.KeyEnter, false},
	{ebiten.KeyNumpadEnter, input.KeyEnter, false},
	{ebiten.KeyEscape, input.KeyEsc, false},
	{ebiten.KeyBackspace, input.KeyBackspace, true},
}

var cameraKeys = []struct {
	key ebiten.Key
	r   rune
}{
	{ebiten.KeyX, 'x'},
	{ebiten.KeyY, 'y'},
	{ebiten.KeyZ, 'z'},
}

var mouseButtons = []struct {
	button ebiten.MouseButton
	mb     input.MouseButton
}{
	{ebiten.MouseButtonLeft, input.MouseLeft},
	{ebiten.MouseButtonMiddle, input.MouseMiddle},
	{ebiten.MouseButtonRight, input.MouseRight},
}

// Game is the Ebitengine game struct. It owns the window, input mapping and
// the timer clock. All gameplay state lives in logic.
type Game struct {
	logic  *game.Logic
	view   *view.View
	timers *timer.Scheduler
	log    *log.Logger

	mx, my   int
	quitting bool
}

func NewGame(cfg *config.Config, logger *log.Logger, seed uint64) *Game {
	md := model.New()
	cfg.Apply(md)

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r := rocket.New()
	g := &Game{timers: timer.New(), log: logger}

	sc := scene.New(md, func() bool { return g.logic != nil && g.logic.Menu().Open() }, r, logger)
	sc.SetSize(cfg.Window.Width, cfg.Window.Height)

	g.logic = game.New(game.Config{
		Model:  md,
		View:   sc,
		Rocket: r,
		Timers: g.timers,
		Sound:  sound.New(logger, rng),
		Logger: logger,
		Rand:   rng,
		Quit:   func() { g.quitting = true },
	})
	g.view = view.New(g.logic, sc, effects.New(rng), cellPx)
	g.mx, g.my = ebiten.CursorPosition()
	return g
}

func modifiers() input.Modifiers {
	return input.Modifiers{
		Alt:   ebiten.IsKeyPressed(ebiten.KeyAlt),
		Ctrl:  ebiten.IsKeyPressed(ebiten.KeyControl),
		Shift: ebiten.IsKeyPressed(ebiten.KeyShift),
		Meta:  ebiten.IsKeyPressed(ebiten.KeyMeta),
	}
}

func pressed(k ebiten.Key, repeat bool) bool {
	if inpututil.IsKeyJustPressed(k) {
		return true
	}
	if !repeat {
		return false
	}
	d := inpututil.KeyPressDuration(k)
	return d > repeatDelay && d%repeatEvery == 0
}

func (g *Game) Update() error {
	mod := modifiers()
	md := g.logic.Model()
	naming := g.logic.Menu().Open() && g.logic.Menu().Names().Enabled

	switch {
	case mod.Ctrl && inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.logic.Keypress(input.KeyQuit, mod)
	case mod.Ctrl && inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.logic.Keypress(input.KeyReset, mod)
	case mod.Ctrl && naming && inpututil.IsKeyJustPressed(ebiten.KeyV):
		g.paste(mod)
	}

	for _, k := range virtualKeys {
		if pressed(k.key, k.repeat) {
			g.logic.Keypress(k.vk, mod)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if naming {
			g.logic.Keypress(input.KeyRune(' '), mod)
		} else {
			g.logic.Keypress(input.KeyRotate, mod)
		}
	}
	if mod.Ctrl || mod.Alt {
		for _, k := range cameraKeys {
			if pressed(k.key, true) {
				g.logic.Keypress(input.KeyRune(k.r), mod)
			}
		}
	} else {
		for _, r := range ebiten.AppendInputChars(nil) {
			if r < 32 || r == ' ' {
				continue
			}
			if md.State == model.StateGameOver && !g.logic.Menu().Open() && (r == 'c' || r == 'C') {
				g.copyLog()
				continue
			}
			g.logic.Keypress(input.KeyRune(r), mod)
		}
	}

	g.updateMouse(mod)

	g.timers.Advance(time.Second / time.Duration(ebiten.TPS()))
	g.view.Update()

	if err := g.logic.Err(); err != nil {
		return err
	}
	if g.quitting {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) updateMouse(mod input.Modifiers) {
	x, y := ebiten.CursorPosition()
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.button) {
			g.logic.MouseDown(b.mb, mod, float64(x), float64(y))
		}
		if inpututil.IsMouseButtonJustReleased(b.button) {
			g.logic.MouseUp(b.mb, mod, float64(x), float64(y))
		}
	}
	if x != g.mx || y != g.my {
		g.logic.MouseMove(float64(x), float64(y))
		g.mx, g.my = x, y
	}
}

// paste types the clipboard into the name selector.
func (g *Game) paste(mod input.Modifiers) {
	text, err := clipboard.ReadAll()
	if err != nil {
		g.log.Warn("clipboard read failed", "err", err)
		return
	}
	for _, r := range config.CleanName(text) {
		g.logic.Keypress(input.KeyRune(r), mod)
	}
}

func (g *Game) copyLog() {
	if err := clipboard.WriteAll(g.logic.BattleLog().String()); err != nil {
		g.log.Warn("clipboard write failed", "err", err)
		return
	}
	g.log.Info("battle log copied to clipboard")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.view.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	var (
		configPath = flag.String("config", "", "path to a JSON settings file")
		logLevel   = flag.String("log-level", "", "log level (debug, info, warn, error)")
		lines      = flag.Bool("lines", false, "draw the camera axes")
		demo       = flag.Bool("demo", false, "start in demo mode")
		seed       = flag.Uint64("seed", 0, "random seed, 0 picks one")
		width      = flag.Int("width", 0, "window width in pixels")
		height     = flag.Int("height", 0, "window height in pixels")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "battleship",
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *lines {
		cfg.Lines = true
	}
	if *demo {
		cfg.Demo = true
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", "err", err)
	}
	logger.SetLevel(cfg.Level())

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	logger.Debug("starting", "seed", *seed, "config", *configPath)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(cfg, logger, *seed)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game stopped", "err", err)
	}
}
