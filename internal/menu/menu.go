// Package menu implements the main and in-game option menus and the
// name-entry grid.
package menu

import (
	"github.com/seaboard/battleship/internal/input"
	"github.com/seaboard/battleship/internal/model"
)

// Menu tracks the open menu and the selected item.
type Menu struct {
	Main    *Item
	Options *Item

	model    *model.Model
	handler  Handler
	curr     *Item
	sel      int
	names    *model.NameSelector
	nameItem *Item
}

// New builds the menu tree bound to md's players and options.
func New(md *model.Model, h Handler) *Menu {
	m := &Menu{model: md, handler: h, names: &md.Names}
	m.Main, m.Options = build(md, h)
	return m
}

// Open reports whether any menu is showing.
func (m *Menu) Open() bool { return m.curr != nil }

// Current returns the open menu, or nil.
func (m *Menu) Current() *Item { return m.curr }

// Selected returns the index of the highlighted item.
func (m *Menu) Selected() int { return m.sel }

// Names returns the name selector state.
func (m *Menu) Names() *model.NameSelector { return m.names }

// Load opens it as a child of the current menu.
func (m *Menu) Load(it *Item) {
	it.parent = m.curr
	m.curr = it
	m.sel = 0
	for _, c := range it.Items {
		if c != nil {
			c.refresh()
		}
	}
}

// Close drops every open menu without notifying the handler.
func (m *Menu) Close() {
	m.curr = nil
	m.sel = 0
	m.names.Enabled = false
}

// Cancel goes back to the parent menu.
func (m *Menu) Cancel() {
	m.curr = m.curr.parent
	m.sel = 0
}

// Help returns the hint line for the highlighted item.
func (m *Menu) Help() string {
	if it := m.selected(); it != nil && it.Action != nil && it.value != "" {
		return "(Left/Right to change)"
	}
	return "(Enter to select)"
}

func (m *Menu) selected() *Item {
	if m.curr == nil || m.sel >= len(m.curr.Items) {
		return nil
	}
	return m.curr.Items[m.sel]
}

// Keypress handles a key while a menu is open and reports whether the
// view needs redrawing.
func (m *Menu) Keypress(key input.Key) bool {
	if m.curr == nil {
		return false
	}
	if m.names.Enabled {
		return m.nameKeypress(key)
	}

	switch key {
	case input.KeyUp:
		m.up()
	case input.KeyDown:
		m.down()
	case input.KeyLeft:
		m.act(-1)
	case input.KeyRight:
		m.act(1)
	case input.KeyEnter:
		it := m.selected()
		if it == nil {
			return true
		}
		if it.Action != nil {
			m.act(0)
		} else if len(it.Items) > 0 {
			m.Load(it)
		}
	case input.KeyBackspace:
		// swallowed
	case input.KeyEsc:
		if m.model.State == model.StateInit && m.curr.parent == nil {
			return false
		}
		m.Cancel()
		if m.curr == nil {
			m.handler.MenuClosed()
		}
	default:
		return false
	}
	return true
}

func (m *Menu) up() {
	n := len(m.curr.Items)
	for range n {
		m.sel = (m.sel + n - 1) % n
		if m.curr.Items[m.sel] != nil {
			return
		}
	}
}

func (m *Menu) down() {
	n := len(m.curr.Items)
	for range n {
		m.sel = (m.sel + 1) % n
		if m.curr.Items[m.sel] != nil {
			return
		}
	}
}

func (m *Menu) act(dir int) {
	it := m.selected()
	if it == nil || it.Action == nil {
		return
	}
	curr := m.curr
	it.Action.apply(m, it, dir)
	it.refresh()
	// A command may have closed or replaced the menu.
	if m.curr == curr && curr != nil {
		for _, c := range curr.Items {
			if c != nil {
				c.refresh()
			}
		}
	}
}

func (m *Menu) nameKeypress(key input.Key) bool {
	ns := m.names
	switch key {
	case input.KeyUp:
		ns.Y = (ns.Y + model.GlyphRows - 1) % model.GlyphRows
	case input.KeyDown:
		ns.Y = (ns.Y + 1) % model.GlyphRows
	case input.KeyLeft:
		ns.X = (ns.X + model.GlyphCols - 1) % model.GlyphCols
	case input.KeyRight:
		ns.X = (ns.X + 1) % model.GlyphCols
	case input.KeyEnter:
		if len(ns.Name) >= model.MaxNameLen {
			return false
		}
		ns.Name += string(model.GlyphAt(ns.X, ns.Y))
	case input.KeyEsc:
		ns.Enabled = false
		if ns.Target != nil {
			*ns.Target = ns.Name
		}
		if m.nameItem != nil {
			m.nameItem.refresh()
			m.nameItem = nil
		}
	case input.KeyBackspace:
		if n := len(ns.Name); n > 0 {
			ns.Name = ns.Name[:n-1]
		}
	default:
		r, ok := key.Rune()
		if !ok || len(ns.Name) >= model.MaxNameLen {
			return false
		}
		x, y, found := model.FindGlyph(r)
		if !found {
			return false
		}
		ns.Name += string(model.GlyphAt(x, y))
		ns.X, ns.Y = x, y
	}
	return true
}
