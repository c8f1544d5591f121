package mines

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"slices"

	"github.com/vancomm/ndmines/internal/ndarray"
)

var ErrStateMismatch = errors.New("state does not match shape")

// State is the plain form of a game. Board and Hidden are in row-major
// order, the last axis varying fastest.
type State struct {
	Shape  ndarray.Shape
	Board  []Cell
	Hidden []bool
	Status Status
}

func (g *Game) State() State {
	return State{
		Shape:  g.board.Shape(),
		Board:  g.board.Values(),
		Hidden: g.hidden.Values(),
		Status: g.status,
	}
}

// Restore rebuilds a game from s. The board is taken as is and not
// recounted.
func Restore(s State) (*Game, error) {
	if err := s.Shape.Validate(); err != nil {
		return nil, err
	}
	size := s.Shape.Size()
	if len(s.Board) != size || len(s.Hidden) != size {
		return nil, fmt.Errorf("%w: shape %v has %d cells, board has %d, hidden has %d",
			ErrStateMismatch, []int(s.Shape), size, len(s.Board), len(s.Hidden))
	}
	if s.Status < Ongoing || s.Status > Victory {
		return nil, fmt.Errorf("%w: unknown status %d", ErrStateMismatch, s.Status)
	}
	if i := slices.IndexFunc(s.Board, func(c Cell) bool { return c < Bomb }); i >= 0 {
		return nil, fmt.Errorf("%w: invalid cell %d at %d", ErrStateMismatch, s.Board[i], i)
	}

	board, err := ndarray.FromValues(s.Shape, s.Board)
	if err != nil {
		return nil, err
	}
	hidden, err := ndarray.FromValues(s.Shape, s.Hidden)
	if err != nil {
		return nil, err
	}
	g := &Game{
		shape:  board.Shape(),
		board:  board,
		hidden: hidden,
		status: s.Status,
	}
	g.safeHidden = g.countSafeHidden()
	return g, nil
}

func DecodeGame(buf []byte) (*Game, error) {
	var s State
	if err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&s); err != nil {
		return nil, err
	}
	return Restore(s)
}

func (g *Game) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(g.State()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
