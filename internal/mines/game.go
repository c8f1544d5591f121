// Package mines implements Minesweeper over boards of any dimension count.
package mines

import (
	"fmt"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/ndmines/internal/coords"
	"github.com/vancomm/ndmines/internal/ndarray"
)

var Log = logrus.New()

// Game is owned by a single caller. Dig mutates it in place and must not run
// concurrently with any other method.
type Game struct {
	shape  ndarray.Shape
	board  *ndarray.Array[Cell]
	hidden *ndarray.Array[bool] // true while the cell is covered
	status Status

	safeHidden int // covered cells that are not bombs
}

// Build lays out bombs on a fresh board of the given shape. Every cell starts
// covered and the game starts Ongoing.
func Build(shape ndarray.Shape, bombs []ndarray.Coord) (*Game, error) {
	board, err := ndarray.New(shape, Cell(0))
	if err != nil {
		return nil, fmt.Errorf("unable to create board: %w", err)
	}
	hidden, err := ndarray.New(shape, true)
	if err != nil {
		return nil, fmt.Errorf("unable to create hidden mask: %w", err)
	}
	shape = board.Shape()

	for _, b := range bombs {
		if err := board.Check(b); err != nil {
			return nil, fmt.Errorf("invalid bomb location: %w", err)
		}
		if board.Get(b).IsBomb() {
			continue
		}
		board.Set(b, Bomb)
		for n := range coords.Neighbors(b, shape) {
			if v := board.Get(n); !v.IsBomb() {
				board.Set(n, v+1)
			}
		}
	}

	g := &Game{
		shape:  shape,
		board:  board,
		hidden: hidden,
		status: Ongoing,
	}
	g.safeHidden = g.countSafeHidden()

	Log.WithFields(logrus.Fields{
		"shape": []int(shape),
		"bombs": len(bombs),
		"safe":  g.safeHidden,
	}).Debug("game built")

	return g, nil
}

func (g *Game) countSafeHidden() (n int) {
	for i := range g.board.Len() {
		if g.hidden.At(i) && !g.board.At(i).IsBomb() {
			n++
		}
	}
	return
}

// Dig uncovers c and returns how many cells became uncovered. Digging a zero
// cell floods outward through its neighborhood. Finished games and uncovered
// cells are left alone and yield 0.
//
// panics [*ndarray.IndexError] when c does not address a cell, see [Game.Validate]
func (g *Game) Dig(c ndarray.Coord) int {
	if g.status != Ongoing {
		return 0
	}
	i := g.hidden.Index(c)
	if !g.hidden.At(i) {
		return 0
	}
	g.hidden.SetAt(i, false)

	if g.board.At(i).IsBomb() {
		g.status = Defeat
		Log.WithField("coord", c).Debug("bomb dug")
		return 1
	}

	revealed := g.reveal(i)
	if g.safeHidden == 0 {
		g.status = Victory
	}

	Log.WithFields(logrus.Fields{
		"coord":    c,
		"revealed": revealed,
		"status":   g.status,
	}).Debug("dig")

	return revealed
}

// reveal accounts for the already uncovered safe cell at flat index i and,
// when it has no bombs around it, uncovers its neighborhood breadth first.
// Cells with a nonzero count are uncovered but not expanded. Bombs are never
// uncovered here.
func (g *Game) reveal(i int) int {
	g.safeHidden--
	revealed := 1
	if g.board.At(i) != 0 {
		return revealed
	}

	var todo deque.Deque[int]
	todo.PushBack(i)
	for todo.Len() > 0 {
		j := todo.PopFront()
		for n := range coords.Neighbors(g.board.Coord(j), g.shape) {
			k := g.board.Index(n)
			if !g.hidden.At(k) || g.board.At(k).IsBomb() {
				continue
			}
			g.hidden.SetAt(k, false)
			g.safeHidden--
			revealed++
			if g.board.At(k) == 0 {
				todo.PushBack(k)
			}
		}
	}
	return revealed
}

// Validate reports whether c addresses a cell of the board.
func (g *Game) Validate(c ndarray.Coord) error {
	return g.shape.Check(c)
}

func (g *Game) Shape() ndarray.Shape {
	return g.board.Shape()
}

func (g *Game) Status() Status {
	return g.status
}

// panics [*ndarray.IndexError]
func (g *Game) Cell(c ndarray.Coord) Cell {
	return g.board.Get(c)
}

// panics [*ndarray.IndexError]
func (g *Game) Hidden(c ndarray.Coord) bool {
	return g.hidden.Get(c)
}

// Board returns a copy of the board.
func (g *Game) Board() *ndarray.Array[Cell] {
	return g.board.Clone()
}

// HiddenMask returns a copy of the hidden mask.
func (g *Game) HiddenMask() *ndarray.Array[bool] {
	return g.hidden.Clone()
}

// SafeRemaining is the number of covered cells without a bomb.
func (g *Game) SafeRemaining() int {
	return g.safeHidden
}
