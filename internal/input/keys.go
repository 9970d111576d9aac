package input

import "fmt"

// Key is either a printable rune or one of the virtual keys below.
// Virtual keys live above the Unicode range so they never collide with runes.
type Key rune

const (
	KeyQuit Key = 0x110000 + iota
	KeyReset
	KeyLeft
	KeyRight
	KeyDown
	KeyUp
	KeyRotate
	KeyEnter
	KeyEsc
	KeyBackspace
)

var keyNames = map[Key]string{
	KeyQuit:      "quit",
	KeyReset:     "reset",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyDown:      "down",
	KeyUp:        "up",
	KeyRotate:    "rotate",
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeyBackspace: "backspace",
}

// KeyRune wraps a printable character.
func KeyRune(r rune) Key { return Key(r) }

// Rune returns the character for printable keys.
func (k Key) Rune() (rune, bool) {
	if k < 0 || k > 0x10FFFF {
		return 0, false
	}
	return rune(k), true
}

// Is reports whether k is the rune r, ignoring ASCII case.
func (k Key) Is(r rune) bool {
	c, ok := k.Rune()
	if !ok {
		return false
	}
	return lower(c) == lower(r)
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	if r, ok := k.Rune(); ok {
		return string(r)
	}
	return fmt.Sprintf("key(%d)", int32(k))
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Modifiers holds the modifier state of a key or mouse event.
// AI marks keypresses synthesized by the computer player.
type Modifiers struct {
	Alt   bool
	Ctrl  bool
	Shift bool
	Meta  bool
	AI    bool
}

// MouseButton is a bit in the pressed-buttons mask.
type MouseButton uint8

const (
	MouseLeft   MouseButton = 1
	MouseMiddle MouseButton = 2
	MouseRight  MouseButton = 4
)
