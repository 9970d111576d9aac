package menu

import (
	"strconv"

	"github.com/seaboard/battleship/internal/model"
)

// Action is the binding of a leaf menu item. The set is closed: Toggle,
// Cycle, Range, Command, NameEntry and Label.
type Action interface {
	// apply changes the bound value. dir is -1 or 1 for left/right, 0 for
	// enter.
	apply(m *Menu, it *Item, dir int)
	display() string
}

// Toggle flips a bool on left/right.
type Toggle struct{ Value *bool }

func (a Toggle) apply(_ *Menu, _ *Item, dir int) {
	if dir != 0 {
		*a.Value = !*a.Value
	}
}

func (a Toggle) display() string {
	if *a.Value {
		return "On"
	}
	return "Off"
}

// Cycle steps an enum through Count values, wrapping at both ends.
type Cycle[T ~uint8] struct {
	Value *T
	Count int
	Names []string
}

func (a Cycle[T]) apply(_ *Menu, _ *Item, dir int) {
	v := (int(*a.Value) + a.Count + dir) % a.Count
	*a.Value = T(v)
}

func (a Cycle[T]) display() string {
	i := int(*a.Value)
	if i < len(a.Names) {
		return a.Names[i]
	}
	return strconv.Itoa(i)
}

// Range steps an int between Min and Max, clamping at both ends.
type Range struct {
	Value    *int
	Min, Max int
}

func (a Range) apply(_ *Menu, _ *Item, dir int) {
	*a.Value = min(max(*a.Value+dir, a.Min), a.Max)
}

func (a Range) display() string { return strconv.Itoa(*a.Value) }

// Command runs a function on enter.
type Command struct{ Run func() }

func (a Command) apply(_ *Menu, _ *Item, dir int) {
	if dir == 0 && a.Run != nil {
		a.Run()
	}
}

func (a Command) display() string { return "" }

// NameEntry opens the name selector for a player name.
type NameEntry struct{ Value *string }

func (a NameEntry) apply(m *Menu, it *Item, _ int) {
	m.names.Enabled = true
	m.names.X, m.names.Y = 0, 0
	m.names.Name = *a.Value
	m.names.Target = a.Value
	m.nameItem = it
}

func (a NameEntry) display() string { return *a.Value }

// Label is a line of help text with no effect.
type Label struct{}

func (Label) apply(*Menu, *Item, int) {}
func (Label) display() string         { return "" }

// Item is a menu node: a submenu when Items is set, a leaf otherwise.
// A nil entry in Items is a separator.
type Item struct {
	Name   string
	Action Action
	Items  []*Item

	parent *Item
	value  string
}

// Value returns the cached display value of a leaf.
func (it *Item) Value() string { return it.value }

// Submenu reports whether the item opens a child menu.
func (it *Item) Submenu() bool { return it.Action == nil && len(it.Items) > 0 }

// Parent returns the menu this one was opened from.
func (it *Item) Parent() *Item { return it.parent }

func (it *Item) refresh() {
	if it.Action != nil {
		it.value = it.Action.display()
	}
}

func leaf(name string, a Action) *Item { return &Item{Name: name, Action: a} }

func sub(name string, items ...*Item) *Item { return &Item{Name: name, Items: items} }

// Handler receives the commands the menu cannot carry out itself.
type Handler interface {
	NewGame()
	OnePlayer()
	TwoPlayer()
	Demo()
	Quit()
	Restart()
	// MenuClosed is called when ESC closes the last open menu.
	MenuClosed()
}

func build(md *model.Model, h Handler) (main, options *Item) {
	o := &md.Options
	p1, p2 := &md.Players[0], &md.Players[1]

	fire := sub("Fire",
		leaf("Enabled", Toggle{&o.Rocket.Fire}),
		leaf("Length", Range{&o.Rocket.FireLength, model.MinFireLength, model.MaxFireLength}),
		leaf("Width", Cycle[model.FireWidth]{&o.Rocket.FireWidth, model.NumFireWidths, model.FireWidthNames}),
		leaf("Colour", Cycle[model.FireColour]{&o.Rocket.FireColour, model.NumFireColours, model.FireColourNames}),
	)
	rocket := sub("Rocket",
		leaf("Path", Cycle[model.RocketType]{&o.Rocket.Path, model.NumRocketTypes, model.RocketNames}),
		leaf("Draw Path", Toggle{&o.Rocket.ShowPath}),
		leaf("Size", Range{&o.Rocket.Size, model.MinRocketSize, model.MaxRocketSize}),
		leaf("Speed", Range{&o.Rocket.Speed, model.MinRocketSpeed, model.MaxRocketSpeed}),
		fire,
	)
	animation := sub("Animation",
		leaf("Game Board", Toggle{&o.BoardAnimation}),
		leaf("AI", Toggle{&o.AIAnimation}),
		leaf("Message", Toggle{&o.MessageAnimation}),
		rocket,
	)
	players := sub("Player Options",
		leaf("P1 Name", NameEntry{&p1.Name}),
		leaf("P1 AI", Cycle[model.AIType]{&p1.AI, model.NumAITypes, model.AINames}),
		leaf("P1 Auto Place", Toggle{&p1.AutoPlace}),
		nil,
		leaf("P2 Name", NameEntry{&p2.Name}),
		leaf("P2 AI", Cycle[model.AIType]{&p2.AI, model.NumAITypes, model.AINames}),
		leaf("P2 Auto Place", Toggle{&p2.AutoPlace}),
	)
	fog := sub("Fog",
		leaf("Fog density", Cycle[model.FogType]{&o.Fog, model.NumFogTypes, model.FogNames}),
		leaf("Regenerate", Command{func() { o.FogSeed++ }}),
		leaf("P1 Hide Ships", Toggle{&p1.Fog}),
		leaf("P2 Hide Ships", Toggle{&p2.Fog}),
	)
	sound := leaf("Sound", Toggle{&o.Sound})

	keys := sub("Keys",
		leaf("Rotate View: Ctrl X/Y/Z", Label{}),
		leaf("Move View: Alt X/Y/Z", Label{}),
		leaf("Reset View: Ctrl R", Label{}),
		leaf("Place Ship: Enter", Label{}),
		leaf("Rotate Ship: Space/F", Label{}),
		leaf("Remove Ship: Backspace", Label{}),
		leaf("Menu: ESC", Label{}),
		leaf("Quit: Ctrl Q", Label{}),
	)

	main = sub(model.Name+" "+model.Version,
		leaf("New Game", Command{h.NewGame}),
		leaf("1 Player", Command{h.OnePlayer}),
		leaf("2 Player", Command{h.TwoPlayer}),
		leaf("Demo Mode", Command{h.Demo}),
		sub("Options", players, animation, fog, sound),
		keys,
		leaf("Quit", Command{h.Quit}),
	)
	options = sub("Options", players, animation, fog, sound,
		leaf("Main Menu", Command{h.Restart}),
	)
	return main, options
}
