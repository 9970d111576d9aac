// Package model holds the data of a Battleship game: both players' boards
// and fleets, the game state, the turn message and the option set.
// It has no behaviour beyond bookkeeping; the game package drives it.
package model

import "fmt"

const (
	Name    = "Battleship"
	Version = "v1.0"

	// MaxNameLen is the longest player name the name selector accepts.
	MaxNameLen = 9
)

// GameState is the active state of the game state machine.
type GameState uint8

const (
	StateInit       GameState = iota
	StateTransition           // board is moving between poses
	StatePlaceShips
	StatePlaying
	StateAIPlaying
	StateFireing // rocket in flight
	StateMessage // turn result popping in
	StateGameOver
)

var stateNames = [...]string{"init", "transition", "place_ships", "playing", "ai_playing", "fireing", "message", "game_over"}

func (s GameState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// AIType selects who controls a player. Human is the zero value.
type AIType uint8

const (
	Human AIType = iota
	EasyAI
	NormalAI
	HardAI

	NumAITypes = 4
)

var aiNames = [NumAITypes]string{"Human", "Easy AI", "Normal AI", "Hard AI"}

func (a AIType) String() string {
	if int(a) < NumAITypes {
		return aiNames[a]
	}
	return "Unknown"
}

// IsAI reports whether the computer plays this side.
func (a AIType) IsAI() bool { return a != Human }

// Player is one side of the game.
type Player struct {
	Name      string
	AI        AIType
	AutoPlace bool
	Fog       bool // hide this player's ships from view

	Grid   FiredGrid
	ShipAt ShipGrid
	Ships  [NumShips]Ship

	Hits   int // shots this player landed
	Misses int // shots this player missed
	Sunk   int // own ships lost

	SelX, SelY int // fire cursor
}

// resetBoard clears the board and fleet, keeping the player's settings.
func (p *Player) resetBoard() {
	p.Grid = FiredGrid{}
	p.ShipAt = NewShipGrid()
	for i := range p.Ships {
		t := ShipType(i)
		p.Ships[i] = Ship{Type: t, Length: t.Length(), State: ShipNotPlaced}
	}
	p.Hits, p.Misses, p.Sunk = 0, 0, 0
	p.SelX, p.SelY = 0, 0
}

// Placing returns the index of the ship currently being placed, or -1.
func (p *Player) Placing() int {
	for i := range p.Ships {
		if p.Ships[i].State == ShipPlacing {
			return i
		}
	}
	return -1
}

// Lost reports whether every ship of the fleet is sunk.
func (p *Player) Lost() bool { return p.Sunk == NumShips }

// Message animation bounds.
const (
	MinMsgSize   = 1
	MaxMsgSize   = 5
	MaxMsgDelay  = 35
	HitMsgDelay  = MaxMsgDelay - 6
	SunkMsgDelay = MaxMsgDelay - 10
	WinMsgDelay  = 0
)

// GameMessage is the result of the last shot. Kind is GridHit or GridMiss,
// or GridEmpty when the shot won the game.
type GameMessage struct {
	Kind    GridState
	Sunk    bool
	Ship    ShipType // valid when Sunk
	Shooter int
	Size    int
	Delay   int
}

// Win reports whether the message announces the end of the game.
func (m GameMessage) Win() bool { return m.Kind == GridEmpty }

// NameSelector is the name-entry sub-mode of the menu.
type NameSelector struct {
	Enabled bool
	X, Y    int
	Name    string
	Target  *string // receives Name when the selector closes
}

// Model is the whole game state shared by logic, menu and view.
type Model struct {
	State    GameState
	Players  [2]Player
	Curr     int
	Message  GameMessage
	GameOver bool

	Names   NameSelector
	Options Options

	Demo  bool
	Lines bool // draw axis lines
}

// New returns a model with the default players and options.
func New() *Model {
	m := &Model{Options: DefaultOptions()}
	m.Players[0].Name = "Player 1"
	m.Players[0].AI = Human
	m.Players[1].Name = "Player 2"
	m.Players[1].AI = HardAI
	m.Players[1].AutoPlace = true
	m.Players[1].Fog = true
	m.Reset()
	return m
}

// Reset clears both boards for a new game. Names, controller settings and
// options survive.
func (m *Model) Reset() {
	for i := range m.Players {
		m.Players[i].resetBoard()
	}
	m.Curr = 0
	m.State = StateInit
	m.GameOver = false
	m.Message = GameMessage{}
}

// Current returns the player whose turn it is.
func (m *Model) Current() *Player { return &m.Players[m.Curr] }

// Opponent returns the player being fired at.
func (m *Model) Opponent() *Player { return &m.Players[1-m.Curr] }

// Sound is a cue played when a shot resolves.
type Sound uint8

const (
	SoundMiss Sound = iota
	SoundHit
	SoundSunk
	SoundWin
)

var soundNames = [...]string{"miss", "hit", "sunk", "win"}

func (s Sound) String() string { return enumName(soundNames[:], int(s)) }

// Cue returns the sound that goes with the message.
func (m GameMessage) Cue() Sound {
	switch {
	case m.Win():
		return SoundWin
	case m.Sunk:
		return SoundSunk
	case m.Kind == GridHit:
		return SoundHit
	default:
		return SoundMiss
	}
}
