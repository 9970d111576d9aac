package model

// GridDim is the width and height of each player's board.
const GridDim = 10

// GridState is the firing state of a single board cell.
type GridState uint8

const (
	GridEmpty GridState = iota // not fired at yet
	GridMiss                   // fired at, water
	GridHit                    // fired at, ship
)

// NoShip marks a ShipAt cell not owned by any ship.
const NoShip = -1

// Grid is a GridDim x GridDim board of cells.
type Grid[T any] struct {
	Cells [GridDim * GridDim]T
}

// InBounds reports whether (x, y) lies on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < GridDim && y >= 0 && y < GridDim
}

// Get returns the cell at (x, y). Out-of-bounds reads return the zero value.
func (g *Grid[T]) Get(x, y int) T {
	if !InBounds(x, y) {
		var zero T
		return zero
	}
	return g.Cells[y*GridDim+x]
}

// Set writes a cell at (x, y). Out-of-bounds writes are ignored.
func (g *Grid[T]) Set(x, y int, v T) {
	if InBounds(x, y) {
		g.Cells[y*GridDim+x] = v
	}
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.Cells {
		g.Cells[i] = v
	}
}

// Count returns the number of cells for which match returns true.
func (g *Grid[T]) Count(match func(T) bool) int {
	n := 0
	for _, c := range g.Cells {
		if match(c) {
			n++
		}
	}
	return n
}

// FiredGrid records shots taken at a player's board.
type FiredGrid = Grid[GridState]

// ShipGrid records which ship owns each cell, or NoShip.
type ShipGrid = Grid[int]

// NewShipGrid returns a ShipGrid with every cell set to NoShip.
func NewShipGrid() ShipGrid {
	var g ShipGrid
	g.Fill(NoShip)
	return g
}

// ShipAt returns the ship index at (x, y). Off-board cells report NoShip.
func ShipAt(g *ShipGrid, x, y int) int {
	if !InBounds(x, y) {
		return NoShip
	}
	return g.Get(x, y)
}
