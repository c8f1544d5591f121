package mines

import (
	"fmt"
	"strings"

	"github.com/vancomm/ndmines/internal/ndarray"
)

// NewGame2D builds a rows x cols game with bombs given as (row, col) pairs.
func NewGame2D(rows, cols int, bombs [][2]int) (*Game, error) {
	cs := make([]ndarray.Coord, len(bombs))
	for i, b := range bombs {
		cs[i] = ndarray.Coord{b[0], b[1]}
	}
	return Build(ndarray.Shape{rows, cols}, cs)
}

func Dig2D(g *Game, row, col int) int {
	return g.Dig(ndarray.Coord{row, col})
}

func Render2DLocations(g *Game, xray bool) ([][]string, error) {
	if g.shape.Rank() != 2 {
		return nil, fmt.Errorf("%w: game has %d dimensions, want 2",
			ndarray.ErrRankMismatch, g.shape.Rank())
	}
	a := g.Render(xray)
	rows := make([][]string, g.shape[0])
	for r := range rows {
		rows[r] = a.Sub(r).Values()
	}
	return rows, nil
}

// Render2DBoard joins every rendered row into a line, without a trailing
// newline.
func Render2DBoard(g *Game, xray bool) (string, error) {
	rows, err := Render2DLocations(g, xray)
	if err != nil {
		return "", err
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n"), nil
}
