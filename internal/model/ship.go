package model

// NumShips is the size of every fleet.
const NumShips = 5

// ShipType identifies one of the five ships in a fleet.
// The numeric value doubles as the ship's index in Player.Ships.
type ShipType uint8

const (
	Carrier ShipType = iota
	Battleship
	Destroyer
	Sub
	PTBoat
)

var shipNames = [NumShips]string{"Carrier", "Battleship", "Destroyer", "Sub", "PT Boat"}

var shipLengths = [NumShips]int{5, 4, 3, 3, 2}

func (t ShipType) String() string {
	if int(t) < NumShips {
		return shipNames[t]
	}
	return "Unknown"
}

// Length returns the number of cells the ship covers.
func (t ShipType) Length() int {
	if int(t) < NumShips {
		return shipLengths[t]
	}
	return 0
}

// MaxHits is the number of ship cells in a fleet.
func MaxHits() int {
	n := 0
	for _, l := range shipLengths {
		n += l
	}
	return n
}

// ShipState is the lifecycle of a single ship.
type ShipState uint8

const (
	ShipNotPlaced ShipState = iota
	ShipPlacing             // following the placement cursor
	ShipPlaced
	ShipSunk
)

// Ship is one vessel of a player's fleet.
type Ship struct {
	Type   ShipType
	X, Y   int  // origin (top-left cell)
	Down   bool // vertical when true
	Hits   int
	State  ShipState
	Length int
}

// Span returns the horizontal and vertical extent of the ship in cells.
func (s *Ship) Span() (w, h int) {
	if s.Down {
		return 1, s.Length
	}
	return s.Length, 1
}

// Cells visits every cell the ship covers from its current origin.
func (s *Ship) Cells(yield func(x, y int) bool) {
	w, h := s.Span()
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			if !yield(s.X+i, s.Y+j) {
				return
			}
		}
	}
}

// Sunk reports whether every cell of the ship has been hit.
func (s *Ship) Sunk() bool { return s.Hits >= s.Length }
