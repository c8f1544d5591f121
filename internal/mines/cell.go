package mines

import "strconv"

// Cell is either Bomb or the number of bombs in the cell's neighborhood.
type Cell int

const Bomb Cell = -1

func (c Cell) IsBomb() bool {
	return c == Bomb
}

func (c Cell) String() string {
	switch {
	case c.IsBomb():
		return "."
	case c >= 0:
		return strconv.Itoa(int(c))
	default:
		return "!"
	}
}

// Symbol is the display form of an uncovered cell: blank for zero.
func (c Cell) Symbol() string {
	if c == 0 {
		return " "
	}
	return c.String()
}

type Status int8

const (
	Ongoing Status = iota
	Defeat
	Victory
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Defeat:
		return "defeat"
	case Victory:
		return "victory"
	default:
		return "unknown"
	}
}

func (s Status) Over() bool {
	return s != Ongoing
}
