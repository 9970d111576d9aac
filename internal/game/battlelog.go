package game

import (
	"fmt"
	"strings"

	"github.com/seaboard/battleship/internal/model"
)

// ShotResult controls the colour of an entry in the battle log.
type ShotResult uint8

const (
	ShotMiss ShotResult = iota // blue
	ShotHit                    // yellow
	ShotSunk                   // red
	ShotWin                    // green
)

// Entry is a single shot in the battle log.
type Entry struct {
	Player int
	Text   string
	Result ShotResult
}

// BattleLog is a bounded FIFO of shots.
type BattleLog struct {
	Entries []Entry
	maxSize int
	shots   [2]int
}

// NewBattleLog creates a log that keeps the most recent maxSize shots.
func NewBattleLog(maxSize int) *BattleLog {
	return &BattleLog{
		Entries: make([]Entry, 0, maxSize),
		maxSize: maxSize,
	}
}

// Clear empties the log for a new game.
func (l *BattleLog) Clear() {
	l.Entries = l.Entries[:0]
	l.shots = [2]int{}
}

// Add appends an entry, evicting the oldest if full.
func (l *BattleLog) Add(e Entry) {
	if len(l.Entries) >= l.maxSize {
		copy(l.Entries, l.Entries[1:])
		l.Entries[len(l.Entries)-1] = e
		return
	}
	l.Entries = append(l.Entries, e)
}

// Record logs the outcome of one shot.
func (l *BattleLog) Record(player int, name string, x, y int, msg model.GameMessage) {
	if player >= 0 && player < len(l.shots) {
		l.shots[player]++
	}
	e := Entry{Player: player}
	target := CellName(x, y)
	switch {
	case msg.Win():
		e.Result = ShotWin
		e.Text = fmt.Sprintf("%s fires at %s: hit, fleet destroyed", name, target)
	case msg.Sunk:
		e.Result = ShotSunk
		e.Text = fmt.Sprintf("%s fires at %s: sunk %s", name, target, msg.Ship)
	case msg.Kind == model.GridHit:
		e.Result = ShotHit
		e.Text = fmt.Sprintf("%s fires at %s: hit", name, target)
	default:
		e.Result = ShotMiss
		e.Text = fmt.Sprintf("%s fires at %s: miss", name, target)
	}
	l.Add(e)
}

// Shots returns how many shots a player has taken this game.
func (l *BattleLog) Shots(player int) int {
	if player < 0 || player >= len(l.shots) {
		return 0
	}
	return l.shots[player]
}

// Recent returns the last n entries (or fewer if the log is shorter).
func (l *BattleLog) Recent(n int) []Entry {
	if n > len(l.Entries) {
		n = len(l.Entries)
	}
	return l.Entries[len(l.Entries)-n:]
}

// String renders the whole log, one shot per line.
func (l *BattleLog) String() string {
	var b strings.Builder
	for _, e := range l.Entries {
		b.WriteString(e.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// CellName returns the board coordinate label, column letter then row
// number, e.g. "C7".
func CellName(x, y int) string {
	return fmt.Sprintf("%c%d", 'A'+rune(x), y+1)
}
